package domain

import "time"

type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	UserID    string
	Read      bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	// RelatedID/RelatedType point at the entity the notification is about,
	// when there is one.
	RelatedID   string
	RelatedType RelatedType
	ActionURL   string
}
