package main

import (
	"fmt"
	"path/filepath"

	"github.com/fentz26/sked/internal/logging"
	"github.com/fentz26/sked/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive TUI",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Terminal output belongs to the TUI; errors go to a log file.
	logger, err := logging.New(filepath.Dir(cfg.DBPath))
	if err != nil {
		return err
	}
	defer logger.Close()

	app := tui.New(s, cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
