package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.taskdeck/taskdeck.db
	dbPath := os.Getenv("TASKDECK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".taskdeck", "taskdeck.db")
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	app := &cli.App{
		Stores: store.Stores{
			Users:         store.NewUserStore(db),
			Teams:         store.NewTeamStore(db),
			Projects:      store.NewProjectStore(db),
			Tasks:         store.NewTaskStore(db),
			Notifications: store.NewNotificationStore(db),
			Activities:    store.NewActivityStore(db),
		},
	}

	// Detect interactive terminal so forms only open when a human is there.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
