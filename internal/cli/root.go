package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/store"
)

// App holds the stores CLI commands read from and write to.
type App struct {
	Stores store.Stores

	// IsInteractive reports whether stdin is a terminal. Commands that can
	// open forms fall back to flag-only behavior when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskdeck" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Team task board and project tracker",
	}

	root.AddCommand(
		newTaskCmd(app),
		newBoardCmd(app),
		newProjectCmd(app),
		newUserCmd(app),
		newTeamCmd(app),
		newSeedCmd(app),
	)

	return root
}
