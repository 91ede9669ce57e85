package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/workflow"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectInspectCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var status, priority, member, tag, search, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			spec := query.Spec{
				Search:  search,
				Filters: map[string]query.Filter{},
				Sort:    query.SortKey(sortKey),
			}
			if status != "" {
				spec.Filters["status"] = query.Filter{Equals: string(domain.NormalizeProjectStatus(status))}
			}
			if priority != "" {
				spec.Filters["priority"] = query.Filter{Equals: string(domain.NormalizePriority(priority))}
			}
			if tag != "" {
				spec.Filters["tag"] = query.Filter{Has: tag}
			}
			if member != "" {
				userID, err := ws.resolveUser(member)
				if err != nil {
					return err
				}
				spec.Filters["member"] = query.Filter{Has: userID}
			}

			projects, err := ws.Engine.Projects(ws.Projects, spec)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println(formatter.Dim("No projects match."))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					formatter.Bold(formatter.Truncate(p.Name, 30)),
					string(p.Status),
					formatter.PriorityBadge(p.Priority),
					fmt.Sprintf("%d%%", p.Progress),
					ws.userName(p.OwnerID),
					formatter.DueDateStyled(p.DueDate),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"NAME", "STATUS", "PRIORITY", "PROGRESS", "OWNER", "DUE"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active|paused|completed|archived)")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority (urgent|high|medium|low)")
	cmd.Flags().StringVar(&member, "member", "", "Filter by member (name, email, or id)")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&search, "search", "", "Search names and descriptions")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key (priority|due_date|created|updated)")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show one project with its board summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			projectID, err := ws.resolveProject(args[0])
			if err != nil {
				return err
			}
			var project domain.Project
			for _, p := range ws.Projects {
				if p.ID == projectID {
					project = p
					break
				}
			}

			groups, err := ws.Engine.GroupTasks(ws.Tasks, query.Spec{
				Filters: map[string]query.Filter{"project": {Equals: projectID}},
				Group:   query.GroupStatus,
			})
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", formatter.Bold(project.Name))
			if project.Description != "" {
				fmt.Fprintf(&b, "%s\n", project.Description)
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "Status:     %s\n", string(project.Status))
			fmt.Fprintf(&b, "Priority:   %s\n", formatter.PriorityBadge(project.Priority))
			fmt.Fprintf(&b, "Visibility: %s\n", string(project.Visibility))
			fmt.Fprintf(&b, "Owner:      %s\n", ws.userName(project.OwnerID))
			fmt.Fprintf(&b, "Progress:   %d%%\n", project.Progress)
			if project.DueDate != nil {
				fmt.Fprintf(&b, "Due:        %s\n", formatter.DueDateStyled(project.DueDate))
			}
			fmt.Fprintf(&b, "Members:    %d\n", len(project.MemberIDs))
			if len(project.Tags) > 0 {
				fmt.Fprintf(&b, "Tags:       %s\n", strings.Join(project.Tags, ", "))
			}
			b.WriteString("\n")
			for _, g := range groups {
				title := workflow.Column(g.Key).Title()
				fmt.Fprintf(&b, "%-12s %d task(s)\n", title, len(g.Tasks))
			}

			fmt.Println(formatter.RenderBox("project", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	return cmd
}
