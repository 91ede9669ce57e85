package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskStatus_Codes(t *testing.T) {
	assert.Equal(t, TaskInProgress, NormalizeTaskStatus("IN_PROGRESS"))
	assert.Equal(t, TaskInProgress, NormalizeTaskStatus("in-progress"))
	assert.Equal(t, TaskInProgress, NormalizeTaskStatus("  In_Progress  "))
	assert.Equal(t, TaskBacklog, NormalizeTaskStatus("BACKLOG"))
}

func TestNormalizeTaskStatus_UnknownFallsBackToDone(t *testing.T) {
	assert.Equal(t, TaskDone, NormalizeTaskStatus("CANCELLED"))
	assert.Equal(t, TaskDone, NormalizeTaskStatus(""))
}

func TestNormalizePriority_UnknownFallsBackToLow(t *testing.T) {
	assert.Equal(t, PriorityUrgent, NormalizePriority("URGENT"))
	assert.Equal(t, PriorityLow, NormalizePriority("critical"))
	assert.Equal(t, PriorityLow, NormalizePriority(""))
}

func TestNormalizeRole_UnknownFallsBackToMember(t *testing.T) {
	assert.Equal(t, RoleAdmin, NormalizeRole("ADMIN"))
	assert.Equal(t, RoleMember, NormalizeRole("superuser"))
}

func TestNormalizeUserStatus_UnknownFallsBackToInactive(t *testing.T) {
	assert.Equal(t, UserInvited, NormalizeUserStatus("INVITED"))
	assert.Equal(t, UserInactive, NormalizeUserStatus("banned"))
}

func TestNormalizeProjectStatus_UnknownFallsBackToArchived(t *testing.T) {
	assert.Equal(t, ProjectPaused, NormalizeProjectStatus("PAUSED"))
	assert.Equal(t, ProjectArchived, NormalizeProjectStatus("deleted"))
}

func TestNormalizeVisibility_UnknownFallsBackToPrivate(t *testing.T) {
	assert.Equal(t, VisibilityTeam, NormalizeVisibility("TEAM"))
	assert.Equal(t, VisibilityPrivate, NormalizeVisibility("everyone"))
}

func TestNormalizeNotificationType_UnknownFallsBackToMention(t *testing.T) {
	assert.Equal(t, NotifyDueDateReminder, NormalizeNotificationType("DUE_DATE_REMINDER"))
	assert.Equal(t, NotifyMention, NormalizeNotificationType("digest"))
}

func TestNormalizeRelatedType_UnknownFallsBackToTask(t *testing.T) {
	assert.Equal(t, RelatedProject, NormalizeRelatedType("PROJECT"))
	assert.Equal(t, RelatedTask, NormalizeRelatedType("attachment"))
}

func TestNormalizeActivityType_UnknownFallsBackToTaskUpdated(t *testing.T) {
	assert.Equal(t, ActivityUserJoined, NormalizeActivityType("USER_JOINED"))
	assert.Equal(t, ActivityTaskUpdated, NormalizeActivityType("login"))
}
