package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmarchuk/tasksphere/internal/cli"
	"github.com/dmarchuk/tasksphere/internal/kv"
	"github.com/dmarchuk/tasksphere/internal/service"
	"github.com/dmarchuk/tasksphere/internal/store"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.tasksphere/tasksphere.db
	dbPath := os.Getenv("TASKSPHERE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tasksphere", "tasksphere.db")
	}

	db, err := kv.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	tasks := store.NewTaskStore(db)
	if err := tasks.Load(ctx); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	projects := store.NewProjectStore(db)
	if err := projects.Load(ctx); err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	team := store.NewTeamStore(db)
	if err := team.Load(ctx); err != nil {
		return fmt.Errorf("loading team: %w", err)
	}

	var observers []service.UseCaseObserver
	if os.Getenv("TASKSPHERE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(tasks, observers...),
		Projects: service.NewProjectService(projects, tasks, observers...),
		Team:     service.NewTeamService(team, tasks, projects, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
