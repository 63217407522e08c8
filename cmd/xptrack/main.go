package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli"
	"github.com/alexvidal/xptrack/internal/db"
	"github.com/alexvidal/xptrack/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.xptrack/xptrack.db
	dbPath := os.Getenv("XPTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".xptrack", "xptrack.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	opts := []app.Option{}
	if os.Getenv("XPTRACK_LOG_EVENTS") != "" {
		opts = append(opts, app.WithObserver(app.NewLogObserver(os.Stderr)))
	}

	state := app.New(store.New(database), db.NewSQLiteUnitOfWork(database), opts...)
	if err := state.Init(context.Background()); err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	cliApp := &cli.App{
		State: state,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(cliApp).Execute()
}
