package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const activityColumns = `id, type, user_id, project_id, task_id, description, created_at, metadata`

// ActivityStore appends and reads the raw activity trail. Activities are
// append-only: there is no update or delete path.
type ActivityStore struct {
	db *sql.DB
}

func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Append(ctx context.Context, a assemble.RawActivity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Type, a.UserID, a.ProjectID, a.TaskID, a.Description, a.CreatedAt,
		encodeJSON(a.Metadata, "{}"),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

// List returns activities newest first, up to limit (0 = no limit).
func (s *ActivityStore) List(ctx context.Context, limit int) ([]assemble.RawActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []assemble.RawActivity
	for rows.Next() {
		var a assemble.RawActivity
		var metadata string
		err := rows.Scan(&a.ID, &a.Type, &a.UserID, &a.ProjectID, &a.TaskID, &a.Description, &a.CreatedAt, &metadata)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		a.Metadata = decodeStringMap(metadata)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}
