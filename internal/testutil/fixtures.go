package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithAssignees(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeIDs = ids
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

func WithProjectID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = id
	}
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = ids
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

func WithUpdatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.UpdatedAt = at
	}
}

func WithEstimatedHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &h
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	now := time.Now().UTC()
	t := domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		ProjectID: "project-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// User options
type UserOption func(*domain.User)

func WithUserID(id string) UserOption {
	return func(u *domain.User) {
		u.ID = id
	}
}

func WithRole(r domain.Role) UserOption {
	return func(u *domain.User) {
		u.Role = r
	}
}

func WithDepartment(d string) UserOption {
	return func(u *domain.User) {
		u.Department = d
	}
}

func NewTestUser(name string, opts ...UserOption) domain.User {
	u := domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      domain.RoleMember,
		Status:    domain.UserActive,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = pr
	}
}

func WithProjectDueDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DueDate = &d
	}
}

func WithMembers(ids ...string) ProjectOption {
	return func(p *domain.Project) {
		p.MemberIDs = ids
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	now := time.Now().UTC()
	p := domain.Project{
		ID:         uuid.New().String(),
		Name:       name,
		Status:     domain.ProjectActive,
		Visibility: domain.VisibilityTeam,
		OwnerID:    "user-1",
		Priority:   domain.PriorityMedium,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
