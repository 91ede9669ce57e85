// Package workflow defines the task lifecycle states and the board-column
// grouping layered on top of them. The board shows four columns while the
// domain keeps five literal statuses: backlog and todo collapse into one
// visual column but stay distinct in storage. Status (persistence, sorting)
// and column (presentation grouping) are separate concepts throughout.
package workflow

import "github.com/taskdeck/taskdeck/internal/domain"

// Column identifies a board column.
type Column string

const (
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "in_progress"
	ColumnReview     Column = "review"
	ColumnDone       Column = "done"
)

// Statuses returns the task lifecycle states in canonical order.
// No state is terminal: a done task may be reopened to any earlier state,
// and no transition is forbidden here. Transition policy, if any, belongs
// to the caller.
func Statuses() []domain.TaskStatus {
	return []domain.TaskStatus{
		domain.TaskBacklog,
		domain.TaskTodo,
		domain.TaskInProgress,
		domain.TaskReview,
		domain.TaskDone,
	}
}

// Columns returns the board columns in display order.
func Columns() []Column {
	return []Column{ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone}
}

// ColumnFor maps a task status to its board column. backlog and todo share
// the todo column. An unrecognized status lands in done, matching the
// normalizer's fallback for unknown task statuses.
func ColumnFor(s domain.TaskStatus) Column {
	switch s {
	case domain.TaskBacklog, domain.TaskTodo:
		return ColumnTodo
	case domain.TaskInProgress:
		return ColumnInProgress
	case domain.TaskReview:
		return ColumnReview
	case domain.TaskDone:
		return ColumnDone
	default:
		return ColumnDone
	}
}

// StatusesFor returns the literal statuses grouped under a column.
func StatusesFor(c Column) []domain.TaskStatus {
	switch c {
	case ColumnTodo:
		return []domain.TaskStatus{domain.TaskBacklog, domain.TaskTodo}
	case ColumnInProgress:
		return []domain.TaskStatus{domain.TaskInProgress}
	case ColumnReview:
		return []domain.TaskStatus{domain.TaskReview}
	case ColumnDone:
		return []domain.TaskStatus{domain.TaskDone}
	default:
		return nil
	}
}

// Title returns a human-readable column label.
func (c Column) Title() string {
	switch c {
	case ColumnTodo:
		return "To Do"
	case ColumnInProgress:
		return "In Progress"
	case ColumnReview:
		return "Review"
	case ColumnDone:
		return "Done"
	default:
		return string(c)
	}
}
