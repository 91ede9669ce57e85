package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/assemble"
	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserInspectCmd(app),
	)

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var role, status, department, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			spec := query.Spec{
				Search:  search,
				Filters: map[string]query.Filter{},
			}
			if role != "" {
				spec.Filters["role"] = query.Filter{Equals: string(domain.NormalizeRole(role))}
			}
			if status != "" {
				spec.Filters["status"] = query.Filter{Equals: string(domain.NormalizeUserStatus(status))}
			}
			if department != "" {
				spec.Filters["department"] = query.Filter{Equals: department}
			}

			users, err := ws.Engine.Users(ws.Users, spec)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println(formatter.Dim("No users match."))
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				lastActive := formatter.Dim("never")
				if u.LastActive != nil {
					lastActive = formatter.RelativeDate(*u.LastActive)
				}
				rows = append(rows, []string{
					formatter.Bold(u.Name),
					u.Email,
					string(u.Role),
					string(u.Status),
					u.Department,
					lastActive,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"NAME", "EMAIL", "ROLE", "STATUS", "DEPARTMENT", "LAST ACTIVE"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Filter by role (admin|manager|member)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active|inactive)")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().StringVar(&search, "search", "", "Search names, emails, and departments")

	return cmd
}

func newUserInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <user>",
		Short: "Show one user with notifications and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := loadWorkspace(ctx, app, "")
			if err != nil {
				return err
			}

			userID, err := ws.resolveUser(args[0])
			if err != nil {
				return err
			}
			user := ws.usersByID[userID]

			unread, err := app.Stores.Notifications.UnreadCount(ctx, userID)
			if err != nil {
				return err
			}
			rawNotifications, err := app.Stores.Notifications.ListForUser(ctx, userID)
			if err != nil {
				return err
			}
			rawActivities, err := app.Stores.Activities.List(ctx, 10)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s  %s\n", formatter.Bold(user.Name), formatter.Dim(user.Email))
			if user.Position != "" || user.Department != "" {
				fmt.Fprintf(&b, "%s\n", formatter.Dim(strings.TrimSpace(user.Position+" · "+user.Department)))
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "Role:   %s\n", string(user.Role))
			fmt.Fprintf(&b, "Status: %s\n", string(user.Status))
			fmt.Fprintf(&b, "Unread: %d notification(s)\n", unread)

			if len(rawNotifications) > 0 {
				b.WriteString("\n" + formatter.Header("notifications") + "\n")
				for _, raw := range rawNotifications {
					n, err := assemble.Notification(raw)
					if err != nil {
						return err
					}
					marker := formatter.Dim("·")
					if !n.Read {
						marker = formatter.StyleYellow.Render("●")
					}
					fmt.Fprintf(&b, "%s %s %s\n", marker, n.Title,
						formatter.Dim(formatter.RelativeDate(n.CreatedAt)))
				}
			}

			var activities []domain.Activity
			for _, raw := range rawActivities {
				a, err := assemble.Activity(raw)
				if err != nil {
					return err
				}
				if a.UserID == userID {
					activities = append(activities, a)
				}
			}
			if len(activities) > 0 {
				b.WriteString("\n" + formatter.Header("recent activity") + "\n")
				for _, a := range activities {
					fmt.Fprintf(&b, "%s %s\n", formatter.Dim(formatter.RelativeDate(a.CreatedAt)), a.Description)
				}
			}

			fmt.Println(formatter.RenderBox("user", strings.TrimRight(b.String(), "\n")))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	return cmd
}
