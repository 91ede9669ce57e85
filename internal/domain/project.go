package domain

import "time"

type Project struct {
	ID          string
	Name        string
	Description string
	Color       string
	Icon        string
	Status      ProjectStatus
	Visibility  Visibility
	OwnerID     string
	TeamIDs     []string
	MemberIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DueDate     *time.Time
	Progress    int
	Priority    Priority
	Tags        []string
	Settings    ProjectSettings
}

// ProjectSettings carries per-project feature toggles.
type ProjectSettings struct {
	AllowComments    bool
	AllowAttachments bool
	RequireApproval  bool
	TimeTracking     bool
}

// HasMember reports whether the given user id is in the project's member set.
func (p *Project) HasMember(userID string) bool {
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
