package domain

import "strings"

// Storage rows carry enum codes in upper-snake form (e.g. "IN_PROGRESS").
// Each Normalize* function maps a raw code to its canonical lowercase value
// and is total: a code outside the known set falls back to the most
// conservative member of the family instead of failing, so malformed rows
// never abort assembly.

func canonCode(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, "-", "_")
}

// NormalizeRole maps a raw role code to a canonical Role.
// Unknown codes degrade to the least-privileged role, member.
func NormalizeRole(raw string) Role {
	switch canonCode(raw) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "member":
		return RoleMember
	default:
		return RoleMember
	}
}

// NormalizeUserStatus maps a raw user status code to a canonical UserStatus.
// Unknown codes degrade to inactive.
func NormalizeUserStatus(raw string) UserStatus {
	switch canonCode(raw) {
	case "active":
		return UserActive
	case "inactive":
		return UserInactive
	case "invited":
		return UserInvited
	default:
		return UserInactive
	}
}

// NormalizeProjectStatus maps a raw project status code to a canonical
// ProjectStatus. Unknown codes degrade to archived.
func NormalizeProjectStatus(raw string) ProjectStatus {
	switch canonCode(raw) {
	case "active":
		return ProjectActive
	case "paused":
		return ProjectPaused
	case "completed":
		return ProjectCompleted
	case "archived":
		return ProjectArchived
	default:
		return ProjectArchived
	}
}

// NormalizeVisibility maps a raw visibility code to a canonical Visibility.
// Unknown codes degrade to private.
func NormalizeVisibility(raw string) Visibility {
	switch canonCode(raw) {
	case "public":
		return VisibilityPublic
	case "private":
		return VisibilityPrivate
	case "team":
		return VisibilityTeam
	default:
		return VisibilityPrivate
	}
}

// NormalizePriority maps a raw priority code to a canonical Priority.
// Unknown codes degrade to low.
func NormalizePriority(raw string) Priority {
	switch canonCode(raw) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "urgent":
		return PriorityUrgent
	default:
		return PriorityLow
	}
}

// NormalizeTaskStatus maps a raw task status code to a canonical TaskStatus.
// Unknown codes degrade to done.
func NormalizeTaskStatus(raw string) TaskStatus {
	switch canonCode(raw) {
	case "backlog":
		return TaskBacklog
	case "todo":
		return TaskTodo
	case "in_progress":
		return TaskInProgress
	case "review":
		return TaskReview
	case "done":
		return TaskDone
	default:
		return TaskDone
	}
}

// NormalizeNotificationType maps a raw notification type code to a canonical
// NotificationType. Unknown codes degrade to mention.
func NormalizeNotificationType(raw string) NotificationType {
	switch canonCode(raw) {
	case "task_assigned":
		return NotifyTaskAssigned
	case "task_completed":
		return NotifyTaskCompleted
	case "comment_added":
		return NotifyCommentAdded
	case "due_date_reminder":
		return NotifyDueDateReminder
	case "project_invitation":
		return NotifyProjectInvitation
	case "mention":
		return NotifyMention
	default:
		return NotifyMention
	}
}

// NormalizeRelatedType maps a raw related-entity type code to a canonical
// RelatedType. Unknown codes degrade to task.
func NormalizeRelatedType(raw string) RelatedType {
	switch canonCode(raw) {
	case "task":
		return RelatedTask
	case "project":
		return RelatedProject
	case "comment":
		return RelatedComment
	default:
		return RelatedTask
	}
}

// NormalizeActivityType maps a raw activity type code to a canonical
// ActivityType. Unknown codes degrade to task_updated.
func NormalizeActivityType(raw string) ActivityType {
	switch canonCode(raw) {
	case "task_created":
		return ActivityTaskCreated
	case "task_updated":
		return ActivityTaskUpdated
	case "task_completed":
		return ActivityTaskCompleted
	case "project_created":
		return ActivityProjectCreated
	case "user_joined":
		return ActivityUserJoined
	case "comment_added":
		return ActivityCommentAdded
	default:
		return ActivityTaskUpdated
	}
}
