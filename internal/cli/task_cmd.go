package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/assemble"
	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskInspectCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var qf taskQueryFlags
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
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
			if project != "" {
				projectID, err := ws.resolveProject(project)
				if err != nil {
					return err
				}
				spec.Filters["project"] = query.Filter{Equals: projectID}
			}

			tasks, err := ws.Engine.Tasks(ws.Tasks, spec)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No tasks match."))
				return nil
			}

			fmt.Print(formatter.RenderTable(
				[]string{"", "TITLE", "PRIORITY", "ASSIGNEE", "DUE", "PROJECT"},
				taskRows(ws, tasks),
			))
			return nil
		},
	}

	qf.register(cmd.Flags())
	cmd.Flags().StringVar(&project, "project", "", "Restrict to one project (name or id)")

	return cmd
}

func taskRows(ws *workspace, tasks []domain.Task) [][]string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		assignee := formatter.Dim("unassigned")
		if id := t.PrimaryAssignee(); id != "" {
			assignee = ws.userName(id)
		}
		rows = append(rows, []string{
			formatter.StatusIcon(t.Status),
			formatter.Truncate(t.Title, 40),
			formatter.PriorityBadge(t.Priority),
			assignee,
			formatter.DueDateStyled(t.DueDate),
			formatter.Dim(formatter.Truncate(ws.projectName(t.ProjectID), 24)),
		})
	}
	return rows
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description, project, priority, status, assignee, due string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			draft := taskDraft{
				Title:       title,
				Description: description,
				Project:     project,
				Priority:    priority,
				Status:      status,
				Assignee:    assignee,
				Due:         due,
			}
			// Open the form when asked for, or when no title was given and a
			// human is at the terminal.
			if interactive || (draft.Title == "" && app.IsInteractive != nil && app.IsInteractive()) {
				draft, err = runTaskWizard(ws, draft)
				if err != nil {
					return err
				}
			}
			if draft.Title == "" {
				return fmt.Errorf("task title is required")
			}

			projectID, err := ws.resolveProject(draft.Project)
			if err != nil {
				return err
			}

			now := time.Now().UTC().Format(time.RFC3339)
			raw := assemble.RawTask{
				ID:          uuid.New().String(),
				Title:       draft.Title,
				Description: draft.Description,
				Status:      storageCode(string(domain.NormalizeTaskStatus(draft.Status))),
				Priority:    storageCode(string(domain.NormalizePriority(draft.Priority))),
				ProjectID:   projectID,
				CreatedAt:   now,
				UpdatedAt:   now,
				Position:    len(ws.Tasks),
			}
			if draft.Due != "" {
				dueDate, err := time.Parse("2006-01-02", draft.Due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", draft.Due, err)
				}
				formatted := dueDate.UTC().Format(time.RFC3339)
				raw.DueDate = &formatted
			}

			rel := assemble.TaskRelations{}
			if draft.Assignee != "" {
				userID, err := ws.resolveUser(draft.Assignee)
				if err != nil {
					return err
				}
				rel.Assignees = []assemble.RawTaskAssignee{{TaskID: raw.ID, UserID: userID}}
			}

			if err := app.Stores.Tasks.Create(ctx, raw, rel); err != nil {
				return err
			}

			fmt.Printf("Created task %s\n", formatter.Bold(draft.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&project, "project", "", "Project (name or id)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (urgent|high|medium|low)")
	cmd.Flags().StringVar(&status, "status", "todo", "Status (backlog|todo|in_progress|review|done)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee (name, email, or id)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the task via an interactive form")

	return cmd
}

// storageCode converts a canonical enum value to the upper-snake form the
// store keeps, matching what upstream imports look like.
func storageCode(value string) string {
	return strings.ToUpper(value)
}

func newTaskInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <task-id>",
		Short: "Show one task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			var task *domain.Task
			for i := range ws.Tasks {
				if ws.Tasks[i].ID == args[0] || strings.HasPrefix(ws.Tasks[i].ID, args[0]) {
					if task != nil {
						return fmt.Errorf("task id %q is ambiguous", args[0])
					}
					task = &ws.Tasks[i]
				}
			}
			if task == nil {
				return fmt.Errorf("task not found: %q", args[0])
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", formatter.StatusIcon(task.Status), formatter.Bold(task.Title))
			if task.Description != "" {
				fmt.Fprintf(&b, "%s\n", task.Description)
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "Status:    %s\n", string(task.Status))
			fmt.Fprintf(&b, "Priority:  %s\n", formatter.PriorityBadge(task.Priority))
			fmt.Fprintf(&b, "Project:   %s\n", ws.projectName(task.ProjectID))
			if task.DueDate != nil {
				fmt.Fprintf(&b, "Due:       %s\n", formatter.DueDateStyled(task.DueDate))
			}
			if len(task.AssigneeIDs) > 0 {
				names := make([]string, 0, len(task.AssigneeIDs))
				for _, id := range task.AssigneeIDs {
					names = append(names, ws.userName(id))
				}
				fmt.Fprintf(&b, "Assignees: %s\n", strings.Join(names, ", "))
			}
			if len(task.Dependencies) > 0 {
				fmt.Fprintf(&b, "Depends on %d task(s)\n", len(task.Dependencies))
			}
			if len(task.Subtasks) > 0 {
				done := 0
				for _, st := range task.Subtasks {
					if st.Completed {
						done++
					}
				}
				fmt.Fprintf(&b, "Subtasks:  %d/%d done\n", done, len(task.Subtasks))
			}
			if len(task.Comments) > 0 {
				fmt.Fprintf(&b, "Comments:  %d\n", len(task.Comments))
			}

			fmt.Println(formatter.RenderBox("task", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	return cmd
}
