// Package assemble builds canonical domain entities from raw persisted
// records and their related sub-records. It normalizes enum codes, parses
// timestamps to UTC, flattens join rows into id lists, and applies defaults
// for optional nested structures. It performs no I/O: everything it touches
// is already resident in memory.
package assemble

import (
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// User assembles a canonical User from a raw row.
func User(raw RawUser) domain.User {
	return domain.User{
		ID:         raw.ID,
		Name:       raw.Name,
		Email:      raw.Email,
		Avatar:     raw.Avatar,
		Role:       domain.NormalizeRole(raw.Role),
		Status:     domain.NormalizeUserStatus(raw.Status),
		CreatedAt:  parseTime(raw.CreatedAt),
		LastActive: parseOptionalTime(raw.LastActive),
		Timezone:   raw.Timezone,
		Position:   raw.Position,
		Department: raw.Department,
	}
}

// Project assembles a canonical Project from a raw row plus its membership
// join rows. Join order is preserved, never re-sorted. A project without an
// owner fails with ErrMissingRelation.
func Project(raw RawProject, members []RawProjectMember, teams []RawProjectTeam) (domain.Project, error) {
	if raw.OwnerID == "" {
		return domain.Project{}, fmt.Errorf("project %q has no owner: %w", raw.ID, ErrMissingRelation)
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.UserID)
	}
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.TeamID)
	}

	return domain.Project{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Color:       raw.Color,
		Icon:        raw.Icon,
		Status:      domain.NormalizeProjectStatus(raw.Status),
		Visibility:  domain.NormalizeVisibility(raw.Visibility),
		OwnerID:     raw.OwnerID,
		TeamIDs:     teamIDs,
		MemberIDs:   memberIDs,
		CreatedAt:   parseTime(raw.CreatedAt),
		UpdatedAt:   parseTime(raw.UpdatedAt),
		DueDate:     parseOptionalTime(raw.DueDate),
		Progress:    clampProgress(raw.Progress),
		Priority:    domain.NormalizePriority(raw.Priority),
		Tags:        copyStrings(raw.Tags),
		Settings:    projectSettings(raw.Settings),
	}, nil
}

// projectSettings applies the documented defaults: comments and attachments
// are allowed unless disabled, approval and time tracking are off unless
// enabled.
func projectSettings(raw *RawProjectSettings) domain.ProjectSettings {
	s := domain.ProjectSettings{
		AllowComments:    true,
		AllowAttachments: true,
		RequireApproval:  false,
		TimeTracking:     false,
	}
	if raw == nil {
		return s
	}
	if raw.AllowComments != nil {
		s.AllowComments = *raw.AllowComments
	}
	if raw.AllowAttachments != nil {
		s.AllowAttachments = *raw.AllowAttachments
	}
	if raw.RequireApproval != nil {
		s.RequireApproval = *raw.RequireApproval
	}
	if raw.TimeTracking != nil {
		s.TimeTracking = *raw.TimeTracking
	}
	return s
}

// Task assembles a canonical Task from a raw row and its related
// sub-records. A task without a project fails with ErrMissingRelation; a
// task listing itself as a prerequisite fails with ErrSelfDependency.
// Cross-task checks (cycles, project membership of prerequisites) belong to
// domain.ValidateTaskGraph, which sees the whole batch.
func Task(raw RawTask, rel TaskRelations) (domain.Task, error) {
	if raw.ProjectID == "" {
		return domain.Task{}, fmt.Errorf("task %q has no project: %w", raw.ID, ErrMissingRelation)
	}

	assigneeIDs := make([]string, 0, len(rel.Assignees))
	for _, a := range rel.Assignees {
		assigneeIDs = append(assigneeIDs, a.UserID)
	}

	deps := make([]string, 0, len(rel.Dependencies))
	for _, d := range rel.Dependencies {
		if d.DependsOnID == raw.ID {
			return domain.Task{}, fmt.Errorf("task %q: %w", raw.ID, ErrSelfDependency)
		}
		deps = append(deps, d.DependsOnID)
	}

	subtasks := make([]domain.Subtask, 0, len(rel.Subtasks))
	for _, s := range rel.Subtasks {
		subtasks = append(subtasks, Subtask(s))
	}

	comments := make([]domain.Comment, 0, len(rel.Comments))
	for _, c := range rel.Comments {
		dc, err := Comment(c)
		if err != nil {
			return domain.Task{}, err
		}
		comments = append(comments, dc)
	}

	attachments := make([]domain.Attachment, 0, len(rel.Attachments))
	for _, a := range rel.Attachments {
		attachments = append(attachments, Attachment(a))
	}

	return domain.Task{
		ID:             raw.ID,
		Title:          raw.Title,
		Description:    raw.Description,
		Status:         domain.NormalizeTaskStatus(raw.Status),
		Priority:       domain.NormalizePriority(raw.Priority),
		ProjectID:      raw.ProjectID,
		AssigneeIDs:    assigneeIDs,
		ReporterID:     raw.ReporterID,
		CreatedAt:      parseTime(raw.CreatedAt),
		UpdatedAt:      parseTime(raw.UpdatedAt),
		DueDate:        parseOptionalTime(raw.DueDate),
		StartDate:      parseOptionalTime(raw.StartDate),
		CompletedAt:    parseOptionalTime(raw.CompletedAt),
		EstimatedHours: copyFloat(raw.EstimatedHours),
		ActualHours:    copyFloat(raw.ActualHours),
		Tags:           copyStrings(raw.Tags),
		Attachments:    attachments,
		Comments:       comments,
		Dependencies:   deps,
		Subtasks:       subtasks,
		CustomFields:   copyFields(raw.CustomFields),
		Position:       raw.Position,
	}, nil
}

// Subtask assembles a canonical Subtask.
func Subtask(raw RawSubtask) domain.Subtask {
	return domain.Subtask{
		ID:         raw.ID,
		Title:      raw.Title,
		Completed:  raw.Completed,
		AssigneeID: raw.AssigneeID,
		DueDate:    parseOptionalTime(raw.DueDate),
		CreatedAt:  parseTime(raw.CreatedAt),
	}
}

// Comment assembles a canonical Comment. A comment without an author fails
// with ErrMissingRelation.
func Comment(raw RawComment) (domain.Comment, error) {
	if raw.AuthorID == "" {
		return domain.Comment{}, fmt.Errorf("comment %q has no author: %w", raw.ID, ErrMissingRelation)
	}

	attachments := make([]domain.Attachment, 0, len(raw.Attachments))
	for _, a := range raw.Attachments {
		attachments = append(attachments, Attachment(a))
	}
	reactions := make([]domain.Reaction, 0, len(raw.Reactions))
	for _, r := range raw.Reactions {
		reactions = append(reactions, domain.Reaction{Emoji: r.Emoji, UserIDs: copyStrings(r.UserIDs)})
	}

	return domain.Comment{
		ID:          raw.ID,
		Content:     raw.Content,
		AuthorID:    raw.AuthorID,
		CreatedAt:   parseTime(raw.CreatedAt),
		UpdatedAt:   parseOptionalTime(raw.UpdatedAt),
		Mentions:    copyStrings(raw.Mentions),
		Attachments: attachments,
		Reactions:   reactions,
	}, nil
}

// Attachment assembles a canonical Attachment.
func Attachment(raw RawAttachment) domain.Attachment {
	return domain.Attachment{
		ID:         raw.ID,
		Name:       raw.Name,
		URL:        raw.URL,
		Type:       raw.Type,
		Size:       raw.Size,
		UploadedBy: raw.UploadedBy,
		UploadedAt: parseTime(raw.UploadedAt),
	}
}

// Team assembles a canonical Team from a raw row plus its membership join
// rows, preserving join order.
func Team(raw RawTeam, members []RawTeamMember) domain.Team {
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.UserID)
	}
	return domain.Team{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		MemberIDs:   memberIDs,
		LeaderID:    raw.LeaderID,
		CreatedAt:   parseTime(raw.CreatedAt),
		Color:       raw.Color,
		Department:  raw.Department,
	}
}

// Notification assembles a canonical Notification. A notification without a
// recipient fails with ErrMissingRelation.
func Notification(raw RawNotification) (domain.Notification, error) {
	if raw.UserID == "" {
		return domain.Notification{}, fmt.Errorf("notification %q has no recipient: %w", raw.ID, ErrMissingRelation)
	}

	n := domain.Notification{
		ID:        raw.ID,
		Type:      domain.NormalizeNotificationType(raw.Type),
		Title:     raw.Title,
		Message:   raw.Message,
		UserID:    raw.UserID,
		Read:      raw.Read,
		CreatedAt: parseTime(raw.CreatedAt),
		UpdatedAt: parseOptionalTime(raw.UpdatedAt),
		RelatedID: raw.RelatedID,
		ActionURL: raw.ActionURL,
	}
	if raw.RelatedID != "" {
		n.RelatedType = domain.NormalizeRelatedType(raw.RelatedType)
	}
	return n, nil
}

// Activity assembles a canonical Activity. An activity without an actor
// fails with ErrMissingRelation.
func Activity(raw RawActivity) (domain.Activity, error) {
	if raw.UserID == "" {
		return domain.Activity{}, fmt.Errorf("activity %q has no actor: %w", raw.ID, ErrMissingRelation)
	}

	var metadata map[string]string
	if len(raw.Metadata) > 0 {
		metadata = make(map[string]string, len(raw.Metadata))
		for k, v := range raw.Metadata {
			metadata[k] = v
		}
	}

	return domain.Activity{
		ID:          raw.ID,
		Type:        domain.NormalizeActivityType(raw.Type),
		UserID:      raw.UserID,
		ProjectID:   raw.ProjectID,
		TaskID:      raw.TaskID,
		Description: raw.Description,
		CreatedAt:   parseTime(raw.CreatedAt),
		Metadata:    metadata,
	}, nil
}

// parseTime parses a required storage timestamp (RFC3339 or bare date) into
// UTC. An unparsable value yields the zero time rather than an error: a
// garbled timestamp on an otherwise sound row should not abort assembly.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// parseOptionalTime parses an optional storage timestamp. Absent, empty, or
// unparsable values map to nil — never a sentinel date.
func parseOptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func copyFields(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
