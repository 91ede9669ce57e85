package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/assemble"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
)

// workspace is the fully assembled state CLI commands operate on.
type workspace struct {
	Users    []domain.User
	Projects []domain.Project
	Tasks    []domain.Task
	Engine   *query.Engine

	usersByID    map[string]domain.User
	projectsByID map[string]domain.Project
}

// loadWorkspace reads every raw record from the store and assembles the
// domain entities. projectID, when non-empty, restricts tasks to one project.
func loadWorkspace(ctx context.Context, app *App, projectID string) (*workspace, error) {
	rawUsers, err := app.Stores.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rawUsers))
	usersByID := make(map[string]domain.User, len(rawUsers))
	for _, raw := range rawUsers {
		u := assemble.User(raw)
		users = append(users, u)
		usersByID[u.ID] = u
	}

	rawProjects, err := app.Stores.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	memberRows, err := app.Stores.Projects.Members(ctx)
	if err != nil {
		return nil, err
	}
	teamRows, err := app.Stores.Projects.Teams(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(rawProjects))
	projectsByID := make(map[string]domain.Project, len(rawProjects))
	for _, raw := range rawProjects {
		p, err := assemble.Project(raw, memberRows[raw.ID], teamRows[raw.ID])
		if err != nil {
			return nil, fmt.Errorf("assembling project %q: %w", raw.Name, err)
		}
		projects = append(projects, p)
		projectsByID[p.ID] = p
	}

	rawTasks, err := app.Stores.Tasks.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	rels, err := app.Stores.Tasks.Relations(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(rawTasks))
	for _, raw := range rawTasks {
		t, err := assemble.Task(raw, rels[raw.ID])
		if err != nil {
			return nil, fmt.Errorf("assembling task %q: %w", raw.Title, err)
		}
		tasks = append(tasks, t)
	}

	// Graph checks need the full snapshot: a partial load cannot tell a
	// missing prerequisite from one that was filtered out.
	if projectID == "" {
		if errs := domain.ValidateTaskGraph(tasks); len(errs) > 0 {
			return nil, fmt.Errorf("task dependency data: %w", errors.Join(errs...))
		}
	}

	return &workspace{
		Users:        users,
		Projects:     projects,
		Tasks:        tasks,
		Engine:       query.NewEngine(users),
		usersByID:    usersByID,
		projectsByID: projectsByID,
	}, nil
}

func (ws *workspace) userName(id string) string {
	if u, ok := ws.usersByID[id]; ok {
		return u.Name
	}
	return id
}

func (ws *workspace) projectName(id string) string {
	if p, ok := ws.projectsByID[id]; ok {
		return p.Name
	}
	return id
}

// resolveUser maps a name, email, id, or id prefix to a user id.
func (ws *workspace) resolveUser(input string) (string, error) {
	for _, u := range ws.Users {
		if strings.EqualFold(u.Name, input) || strings.EqualFold(u.Email, input) || u.ID == input {
			return u.ID, nil
		}
	}
	var matches []string
	for _, u := range ws.Users {
		if strings.HasPrefix(u.ID, input) {
			matches = append(matches, u.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("user not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("user %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProject maps a name, id, or id prefix to a project id.
func (ws *workspace) resolveProject(input string) (string, error) {
	for _, p := range ws.Projects {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p.ID, nil
		}
	}
	var matches []string
	for _, p := range ws.Projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}
