package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/workflow"
)

func newBoardCmd(app *App) *cobra.Command {
	var qf taskQueryFlags
	var project string
	var tui bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the Kanban board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			spec, err := qf.toSpec(ws)
			if err != nil {
				return err
			}
			spec.Group = query.GroupStatus
			if project != "" {
				projectID, err := ws.resolveProject(project)
				if err != nil {
					return err
				}
				spec.Filters["project"] = query.Filter{Equals: projectID}
			}

			if tui {
				model := newBoardModel(ws, spec)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			groups, err := ws.Engine.GroupTasks(ws.Tasks, spec)
			if err != nil {
				return err
			}
			fmt.Println(renderBoard(ws, groups, 28))
			return nil
		},
	}

	qf.register(cmd.Flags())
	cmd.Flags().StringVar(&project, "project", "", "Restrict to one project (name or id)")
	cmd.Flags().BoolVar(&tui, "tui", false, "Open the interactive board")

	return cmd
}

// renderBoard renders grouped tasks as side-by-side columns of fixed width.
func renderBoard(ws *workspace, groups []query.TaskGroup, colWidth int) string {
	columns := make([]string, 0, len(groups))
	for _, g := range groups {
		columns = append(columns, renderColumn(ws, g, colWidth, -1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderColumn renders one board column. cursor marks the highlighted task
// index in the interactive board; -1 disables highlighting.
func renderColumn(ws *workspace, g query.TaskGroup, width int, cursor int) string {
	col := workflow.Column(g.Key)

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("%s (%d)", col.Title(), len(g.Tasks))))
	b.WriteString("\n")

	// A column covering several statuses spells them out under the header.
	if statuses := workflow.StatusesFor(col); len(statuses) > 1 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, string(s))
		}
		b.WriteString(formatter.Dim(strings.Join(names, " · ")))
		b.WriteString("\n")
	}

	if len(g.Tasks) == 0 {
		b.WriteString(formatter.Dim("(empty)"))
		b.WriteString("\n")
	}
	for i, t := range g.Tasks {
		b.WriteString(renderCard(ws, t, width-2, i == cursor))
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingRight(2).
		Render(b.String())
}

func renderCard(ws *workspace, t domain.Task, width int, selected bool) string {
	titleStyle := formatter.StyleFg
	if selected {
		titleStyle = formatter.StyleHeader
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", formatter.PriorityStyle(t.Priority).Render("●"),
		titleStyle.Render(formatter.Truncate(t.Title, width-2)))

	meta := make([]string, 0, 2)
	if id := t.PrimaryAssignee(); id != "" {
		meta = append(meta, ws.userName(id))
	}
	if t.DueDate != nil {
		meta = append(meta, formatter.RelativeDate(*t.DueDate))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim(formatter.Truncate(strings.Join(meta, " · "), width-2)))
	}
	return b.String()
}
