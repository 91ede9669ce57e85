package domain

import "time"

type Team struct {
	ID          string
	Name        string
	Description string
	MemberIDs   []string
	// LeaderID should be a member of MemberIDs by convention; the core does
	// not enforce it.
	LeaderID   string
	CreatedAt  time.Time
	Color      string
	Department string
}
