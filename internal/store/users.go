package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const userColumns = `id, name, email, avatar, role, status, created_at, last_active,
		timezone, position, department`

// UserStore persists and retrieves raw user rows.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, u assemble.RawUser) error {
	query := `INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.Avatar, u.Role, u.Status,
		u.CreatedAt, nullableToValue(u.LastActive),
		u.Timezone, u.Position, u.Department,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (s *UserStore) Get(ctx context.Context, id string) (assemble.RawUser, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return assemble.RawUser{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return assemble.RawUser{}, fmt.Errorf("scanning user: %w", err)
	}
	return u, nil
}

func (s *UserStore) List(ctx context.Context) ([]assemble.RawUser, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []assemble.RawUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (assemble.RawUser, error) {
	var u assemble.RawUser
	var lastActive sql.NullString
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Avatar, &u.Role, &u.Status,
		&u.CreatedAt, &lastActive,
		&u.Timezone, &u.Position, &u.Department,
	)
	if err != nil {
		return assemble.RawUser{}, err
	}
	u.LastActive = nullableString(lastActive)
	return u, nil
}
