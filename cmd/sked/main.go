package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fentz26/sked/internal/config"
	"github.com/fentz26/sked/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sked",
	Short: "sked - deadline-aware task tracker",
	Long:  `sked is a personal task tracker that understands shorthand deadlines (t, tm, 2d, 1w, mon..sun) and orders tasks by urgency.`,
	// Bare "sked" drops straight into the TUI.
	RunE: runTUI,
}

var (
	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: user config dir)")

	// Add subcommands
	rootCmd.AddCommand(taskAddCmd)
	rootCmd.AddCommand(taskListCmd)
	rootCmd.AddCommand(taskDoneCmd)
	rootCmd.AddCommand(taskRemoveCmd)
	rootCmd.AddCommand(taskShowCmd)
	rootCmd.AddCommand(taskEditCmd)
	rootCmd.AddCommand(tuiCmd)
}

// openStore loads config and opens the database for a command run.
func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("database unavailable: %w", err)
	}
	return cfg, s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
