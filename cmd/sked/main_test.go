package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreVerifiesDatabase(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "sked.db")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("db_path: %s\n", dbPath)), 0644))

	configPath = cfgPath
	defer func() { configPath = "" }()

	cfg, s, err := openStore()
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, dbPath, cfg.DBPath)
}

func TestRootCommandDefaultsToTUI(t *testing.T) {
	// Running "sked" with no subcommand launches the interactive view
	// rather than printing help.
	require.NotNil(t, rootCmd.RunE)

	cmd, _, err := rootCmd.Find(nil)
	require.NoError(t, err)
	assert.Equal(t, rootCmd, cmd)
	assert.NotNil(t, cmd.RunE)
}
