package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const notificationColumns = `id, type, title, message, user_id, is_read, created_at,
		updated_at, related_id, related_type, action_url`

// NotificationStore persists and retrieves raw notification rows.
type NotificationStore struct {
	db *sql.DB
}

func NewNotificationStore(db *sql.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) Create(ctx context.Context, n assemble.RawNotification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		n.ID, n.Type, n.Title, n.Message, n.UserID, boolToInt(n.Read),
		n.CreatedAt, nullableToValue(n.UpdatedAt),
		n.RelatedID, n.RelatedType, n.ActionURL,
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationStore) ListForUser(ctx context.Context, userID string) ([]assemble.RawNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = ? ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []assemble.RawNotification
	for rows.Next() {
		var n assemble.RawNotification
		var isRead int
		var updatedAt sql.NullString
		err := rows.Scan(
			&n.ID, &n.Type, &n.Title, &n.Message, &n.UserID, &isRead,
			&n.CreatedAt, &updatedAt, &n.RelatedID, &n.RelatedType, &n.ActionURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		n.Read = intToBool(isRead)
		n.UpdatedAt = nullableString(updatedAt)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}
