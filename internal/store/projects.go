package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const projectColumns = `id, name, description, color, icon, status, visibility, owner_id,
		created_at, updated_at, due_date, progress, priority, tags,
		allow_comments, allow_attachments, require_approval, time_tracking`

// ProjectStore persists and retrieves raw project rows and their member and
// team join rows.
type ProjectStore struct {
	db *sql.DB
}

func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(ctx context.Context, p assemble.RawProject,
	members []assemble.RawProjectMember, teams []assemble.RawProjectTeam) error {

	var ac, aa, ra, tt *bool
	if p.Settings != nil {
		ac, aa = p.Settings.AllowComments, p.Settings.AllowAttachments
		ra, tt = p.Settings.RequireApproval, p.Settings.TimeTracking
	}

	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Color, p.Icon, p.Status, p.Visibility, p.OwnerID,
		p.CreatedAt, p.UpdatedAt, nullableToValue(p.DueDate), p.Progress, p.Priority,
		encodeJSON(p.Tags, "[]"),
		nullableBoolToValue(ac), nullableBoolToValue(aa),
		nullableBoolToValue(ra), nullableBoolToValue(tt),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	for rank, m := range members {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO project_members (project_id, user_id, rank) VALUES (?, ?, ?)`,
			m.ProjectID, m.UserID, rank,
		)
		if err != nil {
			return fmt.Errorf("inserting project member: %w", err)
		}
	}
	for rank, t := range teams {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO project_teams (project_id, team_id, rank) VALUES (?, ?, ?)`,
			t.ProjectID, t.TeamID, rank,
		)
		if err != nil {
			return fmt.Errorf("inserting project team: %w", err)
		}
	}
	return nil
}

func (s *ProjectStore) Get(ctx context.Context, id string) (assemble.RawProject, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return assemble.RawProject{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return assemble.RawProject{}, fmt.Errorf("scanning project: %w", err)
	}
	return p, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]assemble.RawProject, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []assemble.RawProject
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// Members returns all membership join rows grouped by project, in rank
// order as supplied at creation.
func (s *ProjectStore) Members(ctx context.Context) (map[string][]assemble.RawProjectMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, user_id FROM project_members ORDER BY project_id, rank`)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}
	defer rows.Close()

	members := make(map[string][]assemble.RawProjectMember)
	for rows.Next() {
		var m assemble.RawProjectMember
		if err := rows.Scan(&m.ProjectID, &m.UserID); err != nil {
			return nil, fmt.Errorf("scanning project member row: %w", err)
		}
		members[m.ProjectID] = append(members[m.ProjectID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project members: %w", err)
	}
	return members, nil
}

// Teams returns all project-team join rows grouped by project, in rank
// order.
func (s *ProjectStore) Teams(ctx context.Context) (map[string][]assemble.RawProjectTeam, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, team_id FROM project_teams ORDER BY project_id, rank`)
	if err != nil {
		return nil, fmt.Errorf("listing project teams: %w", err)
	}
	defer rows.Close()

	teams := make(map[string][]assemble.RawProjectTeam)
	for rows.Next() {
		var t assemble.RawProjectTeam
		if err := rows.Scan(&t.ProjectID, &t.TeamID); err != nil {
			return nil, fmt.Errorf("scanning project team row: %w", err)
		}
		teams[t.ProjectID] = append(teams[t.ProjectID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project teams: %w", err)
	}
	return teams, nil
}

func scanProject(row rowScanner) (assemble.RawProject, error) {
	var p assemble.RawProject
	var dueDate sql.NullString
	var tags string
	var ac, aa, ra, tt sql.NullInt64
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Color, &p.Icon, &p.Status, &p.Visibility, &p.OwnerID,
		&p.CreatedAt, &p.UpdatedAt, &dueDate, &p.Progress, &p.Priority, &tags,
		&ac, &aa, &ra, &tt,
	)
	if err != nil {
		return assemble.RawProject{}, err
	}
	p.DueDate = nullableString(dueDate)
	p.Tags = decodeStrings(tags)
	if ac.Valid || aa.Valid || ra.Valid || tt.Valid {
		p.Settings = &assemble.RawProjectSettings{
			AllowComments:    nullableBool(ac),
			AllowAttachments: nullableBool(aa),
			RequireApproval:  nullableBool(ra),
			TimeTracking:     nullableBool(tt),
		}
	}
	return p, nil
}
