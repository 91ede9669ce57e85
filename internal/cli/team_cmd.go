package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/assemble"
	"github.com/taskdeck/taskdeck/internal/cli/formatter"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	cmd.AddCommand(newTeamListCmd(app))

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			rawTeams, err := app.Stores.Teams.List(ctx)
			if err != nil {
				return err
			}
			memberRows, err := app.Stores.Teams.Members(ctx)
			if err != nil {
				return err
			}
			if len(rawTeams) == 0 {
				fmt.Println(formatter.Dim("No teams yet."))
				return nil
			}

			rows := make([][]string, 0, len(rawTeams))
			for _, raw := range rawTeams {
				team := assemble.Team(raw, memberRows[raw.ID])
				rows = append(rows, []string{
					formatter.Bold(team.Name),
					ws.userName(team.LeaderID),
					fmt.Sprintf("%d", len(team.MemberIDs)),
					team.Department,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"NAME", "LEADER", "MEMBERS", "DEPARTMENT"},
				rows,
			))
			return nil
		},
	}

	return cmd
}
