package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserInvited  UserStatus = "invited"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityTeam    Visibility = "team"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

type NotificationType string

const (
	NotifyTaskAssigned      NotificationType = "task_assigned"
	NotifyTaskCompleted     NotificationType = "task_completed"
	NotifyCommentAdded      NotificationType = "comment_added"
	NotifyDueDateReminder   NotificationType = "due_date_reminder"
	NotifyProjectInvitation NotificationType = "project_invitation"
	NotifyMention           NotificationType = "mention"
)

type RelatedType string

const (
	RelatedTask    RelatedType = "task"
	RelatedProject RelatedType = "project"
	RelatedComment RelatedType = "comment"
)

type ActivityType string

const (
	ActivityTaskCreated    ActivityType = "task_created"
	ActivityTaskUpdated    ActivityType = "task_updated"
	ActivityTaskCompleted  ActivityType = "task_completed"
	ActivityProjectCreated ActivityType = "project_created"
	ActivityUserJoined     ActivityType = "user_joined"
	ActivityCommentAdded   ActivityType = "comment_added"
)
