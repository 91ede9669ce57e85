package domain

import "time"

// Activity is an append-only audit record. The core never mutates or
// deletes activities once assembled.
type Activity struct {
	ID          string
	Type        ActivityType
	UserID      string
	ProjectID   string
	TaskID      string
	Description string
	CreatedAt   time.Time
	Metadata    map[string]string
}
