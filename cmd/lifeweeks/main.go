package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lifeweeks/lifeweeks/internal/autofill"
	"github.com/lifeweeks/lifeweeks/internal/config"
	"github.com/lifeweeks/lifeweeks/internal/model"
	"github.com/lifeweeks/lifeweeks/internal/notes"
	"github.com/lifeweeks/lifeweeks/internal/storage"
	"github.com/lifeweeks/lifeweeks/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lifeweeks failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "lifeweeks.yaml", "path to the config file")
	flag.Parse()

	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)

	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return err
	}

	settings, err := repo.LoadSettings(context.Background())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		settings = model.DefaultSettings()
		if err := repo.SaveSettings(context.Background(), settings); err != nil {
			return err
		}
	}

	runner, err := autofill.NewRunner(cfg.AutoFillCron)
	if err != nil {
		return err
	}
	runner.Start()
	defer runner.Stop()

	writer := notes.Writer{Folder: cfg.NotesFolder}
	m := update.NewModelWithRuntime(settings, repo, runner, writer, cfg.GlamourStyle)

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
