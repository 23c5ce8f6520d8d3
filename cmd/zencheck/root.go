package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zencheck/zencheck/internal/config"
	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/state"
	"github.com/zencheck/zencheck/internal/store"
	"github.com/zencheck/zencheck/internal/sweep"
	"github.com/zencheck/zencheck/internal/update"
)

var rootCmd = &cobra.Command{
	Use:   "zencheck",
	Short: "Checklist and habit tracker with AI-generated lists",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file next to the database.
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(cfg.DBPath), "zencheck.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	config.InitLogger(logFile)

	kv, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer kv.Close()

	snap, err := store.Load(cmd.Context(), kv)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	app := state.New(kv, snap)

	sweeper, err := sweep.NewSweeper(cfg.SweepInterval)
	if err != nil {
		return fmt.Errorf("init reminder sweep: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	var notifier sweep.Notifier = sweep.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = sweep.DesktopNotifier{}
	}

	gen := genai.NewClient(cfg.GeminiAPIKey)
	model := update.NewModelWithRuntime(app, gen, sweeper.C, cfg.DesktopNotifications, notifier)

	config.Logger.WithField("db", cfg.DBPath).Info("starting zencheck")
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
