package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

// Stores bundles the per-entity stores over one database.
type Stores struct {
	Users         *UserStore
	Teams         *TeamStore
	Projects      *ProjectStore
	Tasks         *TaskStore
	Notifications *NotificationStore
	Activities    *ActivityStore
}

// Seed populates an empty database with a small demo workspace: a team,
// two projects, and a board's worth of tasks. Rows are written in
// storage-native shape (upper-snake enum codes), exactly as an upstream
// backend would supply them.
func Seed(ctx context.Context, s Stores) error {
	now := time.Now().UTC()
	ts := func(d time.Duration) string { return now.Add(d).Format(time.RFC3339) }

	type seedUser struct {
		name, email, role, position, department string
	}
	seedUsers := []seedUser{
		{"Ada Moreno", "ada@example.com", "ADMIN", "Engineering Lead", "Engineering"},
		{"Ben Ito", "ben@example.com", "MANAGER", "Product Manager", "Product"},
		{"Chloe Park", "chloe@example.com", "MEMBER", "Backend Engineer", "Engineering"},
		{"Dmitri Volkov", "dmitri@example.com", "MEMBER", "Frontend Engineer", "Engineering"},
	}

	userIDs := make([]string, 0, len(seedUsers))
	for i, u := range seedUsers {
		id := uuid.New().String()
		userIDs = append(userIDs, id)
		lastActive := ts(-time.Duration(i) * time.Hour)
		err := s.Users.Create(ctx, assemble.RawUser{
			ID:         id,
			Name:       u.name,
			Email:      u.email,
			Role:       u.role,
			Status:     "ACTIVE",
			CreatedAt:  ts(-30 * 24 * time.Hour),
			LastActive: &lastActive,
			Timezone:   "UTC",
			Position:   u.position,
			Department: u.department,
		})
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.email, err)
		}
	}

	teamID := uuid.New().String()
	teamMembers := make([]assemble.RawTeamMember, 0, len(userIDs))
	for _, uid := range userIDs {
		teamMembers = append(teamMembers, assemble.RawTeamMember{TeamID: teamID, UserID: uid})
	}
	err := s.Teams.Create(ctx, assemble.RawTeam{
		ID:         teamID,
		Name:       "Core Platform",
		LeaderID:   userIDs[0],
		CreatedAt:  ts(-30 * 24 * time.Hour),
		Color:      "#83a598",
		Department: "Engineering",
	}, teamMembers)
	if err != nil {
		return fmt.Errorf("seeding team: %w", err)
	}

	type seedProject struct {
		name, desc, status, priority string
		dueIn                        time.Duration
	}
	seedProjects := []seedProject{
		{"Website Relaunch", "Rebuild the marketing site", "ACTIVE", "HIGH", 21 * 24 * time.Hour},
		{"Mobile App", "Companion app for the board", "ACTIVE", "MEDIUM", 60 * 24 * time.Hour},
	}

	projectIDs := make([]string, 0, len(seedProjects))
	for _, p := range seedProjects {
		id := uuid.New().String()
		projectIDs = append(projectIDs, id)
		due := ts(p.dueIn)
		members := make([]assemble.RawProjectMember, 0, len(userIDs))
		for _, uid := range userIDs {
			members = append(members, assemble.RawProjectMember{ProjectID: id, UserID: uid})
		}
		err := s.Projects.Create(ctx, assemble.RawProject{
			ID:          id,
			Name:        p.name,
			Description: p.desc,
			Color:       "#fabd2f",
			Icon:        "rocket",
			Status:      p.status,
			Visibility:  "TEAM",
			OwnerID:     userIDs[0],
			CreatedAt:   ts(-20 * 24 * time.Hour),
			UpdatedAt:   ts(-24 * time.Hour),
			DueDate:     &due,
			Progress:    35,
			Priority:    p.priority,
			Tags:        []string{strings.ToLower(strings.Fields(p.name)[0])},
		}, members, []assemble.RawProjectTeam{{ProjectID: id, TeamID: teamID}})
		if err != nil {
			return fmt.Errorf("seeding project %s: %w", p.name, err)
		}
	}

	type seedTask struct {
		title, status, priority string
		project, assignee       int
		dueIn                   time.Duration
		hasDue                  bool
	}
	seedTasks := []seedTask{
		{"Design landing page", "BACKLOG", "MEDIUM", 0, 3, 0, false},
		{"Set up CI pipeline", "TODO", "HIGH", 0, 2, 5 * 24 * time.Hour, true},
		{"Migrate blog posts", "TODO", "LOW", 0, 2, 14 * 24 * time.Hour, true},
		{"Implement auth flow", "IN_PROGRESS", "URGENT", 0, 2, 2 * 24 * time.Hour, true},
		{"Navigation redesign", "REVIEW", "HIGH", 0, 3, 4 * 24 * time.Hour, true},
		{"Fix footer links", "DONE", "LOW", 0, 3, 0, false},
		{"Draft app wireframes", "BACKLOG", "MEDIUM", 1, 1, 0, false},
		{"Choose push provider", "TODO", "MEDIUM", 1, 1, 30 * 24 * time.Hour, true},
		{"Prototype offline sync", "IN_PROGRESS", "HIGH", 1, 2, 10 * 24 * time.Hour, true},
	}

	taskIDs := make([]string, 0, len(seedTasks))
	for i, t := range seedTasks {
		id := uuid.New().String()
		taskIDs = append(taskIDs, id)
		raw := assemble.RawTask{
			ID:         id,
			Title:      t.title,
			Status:     t.status,
			Priority:   t.priority,
			ProjectID:  projectIDs[t.project],
			ReporterID: userIDs[1],
			CreatedAt:  ts(-time.Duration(10-i) * 24 * time.Hour),
			UpdatedAt:  ts(-time.Duration(i) * time.Hour),
			Position:   i,
		}
		if t.hasDue {
			due := ts(t.dueIn)
			raw.DueDate = &due
		}
		rel := assemble.TaskRelations{
			Assignees: []assemble.RawTaskAssignee{{TaskID: id, UserID: userIDs[t.assignee]}},
		}
		// "Implement auth flow" depends on the CI pipeline being in place.
		if t.title == "Implement auth flow" {
			rel.Dependencies = []assemble.RawTaskDependency{{TaskID: id, DependsOnID: taskIDs[1]}}
		}
		if err := s.Tasks.Create(ctx, raw, rel); err != nil {
			return fmt.Errorf("seeding task %s: %w", t.title, err)
		}
	}

	err = s.Notifications.Create(ctx, assemble.RawNotification{
		ID:          uuid.New().String(),
		Type:        "TASK_ASSIGNED",
		Title:       "You were assigned a task",
		Message:     "Implement auth flow",
		UserID:      userIDs[2],
		CreatedAt:   ts(-2 * time.Hour),
		RelatedID:   taskIDs[3],
		RelatedType: "TASK",
	})
	if err != nil {
		return fmt.Errorf("seeding notification: %w", err)
	}

	err = s.Activities.Append(ctx, assemble.RawActivity{
		ID:          uuid.New().String(),
		Type:        "PROJECT_CREATED",
		UserID:      userIDs[0],
		ProjectID:   projectIDs[0],
		Description: "created project Website Relaunch",
		CreatedAt:   ts(-20 * 24 * time.Hour),
	})
	if err != nil {
		return fmt.Errorf("seeding activity: %w", err)
	}

	return nil
}
