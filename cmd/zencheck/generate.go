package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zencheck/zencheck/internal/config"
	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/state"
	"github.com/zencheck/zencheck/internal/store"
)

var generateSave bool

var generateCmd = &cobra.Command{
	Use:   "generate <goal>",
	Short: "Generate a checklist for a goal without opening the UI",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Store the generated checklist")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	cfg := config.Load()

	gen := genai.NewClient(cfg.GeminiAPIKey)
	goal := strings.Join(args, " ")
	res, err := gen.GenerateChecklist(cmd.Context(), goal)
	if err != nil {
		return err
	}

	fmt.Println(res.Title)
	for _, cat := range res.Categories {
		fmt.Println("  " + cat.CategoryName + ":")
		for _, item := range cat.Items {
			fmt.Println("    [ ] " + item)
		}
	}

	if !generateSave {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
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
	app.ImportGenerated(res)

	fmt.Println("saved.")
	return nil
}
