package domain

import "time"

type User struct {
	ID         string
	Name       string
	Email      string
	Avatar     string
	Role       Role
	Status     UserStatus
	CreatedAt  time.Time
	LastActive *time.Time
	Timezone   string
	Position   string
	Department string
}
