package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/store"
)

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with a demo workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			existing, err := app.Stores.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return fmt.Errorf("database is not empty; refusing to seed")
			}

			if err := store.Seed(ctx, app.Stores); err != nil {
				return err
			}
			fmt.Println(formatter.Bold("Seeded demo workspace."))
			fmt.Println(formatter.Dim("Try: taskdeck board, taskdeck task list --sort priority"))
			return nil
		},
	}

	return cmd
}
