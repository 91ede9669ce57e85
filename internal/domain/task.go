package domain

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	ProjectID   string
	// AssigneeIDs is ordered; the first entry is the primary assignee
	// shown in list views.
	AssigneeIDs []string
	ReporterID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DueDate     *time.Time
	StartDate   *time.Time
	CompletedAt *time.Time

	EstimatedHours *float64
	ActualHours    *float64

	Tags        []string
	Attachments []Attachment
	Comments    []Comment

	// Dependencies lists prerequisite task ids. A prerequisite must exist
	// and, by convention, belong to the same project.
	Dependencies []string

	Subtasks     []Subtask
	CustomFields map[string]any

	// Position orders the task manually within its status column.
	Position int
}

// PrimaryAssignee returns the first assignee id, or "" when unassigned.
func (t *Task) PrimaryAssignee() string {
	if len(t.AssigneeIDs) == 0 {
		return ""
	}
	return t.AssigneeIDs[0]
}

type Subtask struct {
	ID         string
	Title      string
	Completed  bool
	AssigneeID string
	DueDate    *time.Time
	CreatedAt  time.Time
}

type Comment struct {
	ID          string
	Content     string
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Mentions    []string
	Attachments []Attachment
	Reactions   []Reaction
}

type Reaction struct {
	Emoji   string
	UserIDs []string
}

type Attachment struct {
	ID         string
	Name       string
	URL        string
	Type       string
	Size       int64
	UploadedBy string
	UploadedAt time.Time
}
