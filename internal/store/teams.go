package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const teamColumns = `id, name, description, leader_id, created_at, color, department`

// TeamStore persists and retrieves raw team rows and their membership join
// rows.
type TeamStore struct {
	db *sql.DB
}

func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) Create(ctx context.Context, t assemble.RawTeam, members []assemble.RawTeamMember) error {
	query := `INSERT INTO teams (` + teamColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Description, t.LeaderID, t.CreatedAt, t.Color, t.Department,
	)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	for rank, m := range members {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO team_members (team_id, user_id, rank) VALUES (?, ?, ?)`,
			m.TeamID, m.UserID, rank,
		)
		if err != nil {
			return fmt.Errorf("inserting team member: %w", err)
		}
	}
	return nil
}

func (s *TeamStore) List(ctx context.Context) ([]assemble.RawTeam, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []assemble.RawTeam
	for rows.Next() {
		var t assemble.RawTeam
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID, &t.CreatedAt, &t.Color, &t.Department); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	return teams, nil
}

// Members returns all membership join rows grouped by team, in rank order.
func (s *TeamStore) Members(ctx context.Context) (map[string][]assemble.RawTeamMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id, user_id FROM team_members ORDER BY team_id, rank`)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	members := make(map[string][]assemble.RawTeamMember)
	for rows.Next() {
		var m assemble.RawTeamMember
		if err := rows.Scan(&m.TeamID, &m.UserID); err != nil {
			return nil, fmt.Errorf("scanning team member row: %w", err)
		}
		members[m.TeamID] = append(members[m.TeamID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	return members, nil
}
