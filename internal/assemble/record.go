package assemble

// Raw records mirror the persistence layer's native shape: upper-snake enum
// codes, string timestamps, and foreign keys broken out into join rows.
// Assembly is the only place these shapes cross into the domain model.

// RawUser is a users row.
type RawUser struct {
	ID         string
	Name       string
	Email      string
	Avatar     string
	Role       string
	Status     string
	CreatedAt  string
	LastActive *string
	Timezone   string
	Position   string
	Department string
}

// RawProject is a projects row. Member and team relations arrive as
// separate join rows.
type RawProject struct {
	ID          string
	Name        string
	Description string
	Color       string
	Icon        string
	Status      string
	Visibility  string
	OwnerID     string
	CreatedAt   string
	UpdatedAt   string
	DueDate     *string
	Progress    int
	Priority    string
	Tags        []string
	Settings    *RawProjectSettings
}

// RawProjectSettings holds the optional settings sub-record. Absent flags
// take documented defaults at assembly time.
type RawProjectSettings struct {
	AllowComments    *bool
	AllowAttachments *bool
	RequireApproval  *bool
	TimeTracking     *bool
}

// RawProjectMember is a project_members join row.
type RawProjectMember struct {
	ProjectID string
	UserID    string
}

// RawProjectTeam is a project_teams join row.
type RawProjectTeam struct {
	ProjectID string
	TeamID    string
}

// RawTask is a tasks row.
type RawTask struct {
	ID             string
	Title          string
	Description    string
	Status         string
	Priority       string
	ProjectID      string
	ReporterID     string
	CreatedAt      string
	UpdatedAt      string
	DueDate        *string
	StartDate      *string
	CompletedAt    *string
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
	CustomFields   map[string]any
	Position       int
}

// RawTaskAssignee is a task_assignees join row. Rows arrive in rank order;
// the first one is the primary assignee.
type RawTaskAssignee struct {
	TaskID string
	UserID string
}

// RawTaskDependency is a task_dependencies join row.
type RawTaskDependency struct {
	TaskID      string
	DependsOnID string
}

// RawSubtask is a subtasks row owned by one task.
type RawSubtask struct {
	ID         string
	TaskID     string
	Title      string
	Completed  bool
	AssigneeID string
	DueDate    *string
	CreatedAt  string
}

// RawComment is a comments row owned by one task.
type RawComment struct {
	ID          string
	TaskID      string
	Content     string
	AuthorID    string
	CreatedAt   string
	UpdatedAt   *string
	Mentions    []string
	Attachments []RawAttachment
	Reactions   []RawReaction
}

// RawReaction is an emoji reaction sub-record on a comment.
type RawReaction struct {
	Emoji   string
	UserIDs []string
}

// RawAttachment is an attachments row owned by a task or a comment.
type RawAttachment struct {
	ID         string
	Name       string
	URL        string
	Type       string
	Size       int64
	UploadedBy string
	UploadedAt string
}

// TaskRelations bundles the sub-records belonging to one task.
type TaskRelations struct {
	Assignees    []RawTaskAssignee
	Dependencies []RawTaskDependency
	Subtasks     []RawSubtask
	Comments     []RawComment
	Attachments  []RawAttachment
}

// RawTeam is a teams row.
type RawTeam struct {
	ID          string
	Name        string
	Description string
	LeaderID    string
	CreatedAt   string
	Color       string
	Department  string
}

// RawTeamMember is a team_members join row.
type RawTeamMember struct {
	TeamID string
	UserID string
}

// RawNotification is a notifications row.
type RawNotification struct {
	ID          string
	Type        string
	Title       string
	Message     string
	UserID      string
	Read        bool
	CreatedAt   string
	UpdatedAt   *string
	RelatedID   string
	RelatedType string
	ActionURL   string
}

// RawActivity is an activities row.
type RawActivity struct {
	ID          string
	Type        string
	UserID      string
	ProjectID   string
	TaskID      string
	Description string
	CreatedAt   string
	Metadata    map[string]string
}
