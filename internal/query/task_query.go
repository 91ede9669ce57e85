package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/workflow"
)

// TaskGroup is one partition of a grouped task query: the group key (a
// workflow column id or a priority value) and its tasks in query order.
type TaskGroup struct {
	Key   string
	Tasks []domain.Task
}

// Tasks runs a spec over a task list and returns a freshly built, filtered,
// searched, and sorted result. Spec.Group must be unset; use GroupTasks for
// partitioned output. An empty input is not an error.
func (e *Engine) Tasks(tasks []domain.Task, spec Spec) ([]domain.Task, error) {
	if spec.Group != GroupNone {
		return nil, fmt.Errorf("%w: use GroupTasks for group key %q", ErrInvalidSpec, spec.Group)
	}
	return e.reduceTasks(tasks, spec)
}

// GroupTasks runs a spec over a task list and partitions the result by the
// spec's group key, preserving intra-group order. Every expected group is
// present in output order even when empty, so a board can render empty
// columns.
func (e *Engine) GroupTasks(tasks []domain.Task, spec Spec) ([]TaskGroup, error) {
	switch spec.Group {
	case GroupStatus, GroupPriority:
	case GroupNone:
		return nil, fmt.Errorf("%w: group key required", ErrInvalidSpec)
	default:
		return nil, fmt.Errorf("%w: unknown group key %q", ErrInvalidSpec, spec.Group)
	}

	reduced, err := e.reduceTasks(tasks, spec)
	if err != nil {
		return nil, err
	}

	if spec.Group == GroupStatus {
		groups := make([]TaskGroup, 0, len(workflow.Columns()))
		byColumn := make(map[workflow.Column][]domain.Task)
		for _, t := range reduced {
			col := workflow.ColumnFor(t.Status)
			byColumn[col] = append(byColumn[col], t)
		}
		for _, col := range workflow.Columns() {
			groups = append(groups, TaskGroup{Key: string(col), Tasks: byColumn[col]})
		}
		return groups, nil
	}

	order := []domain.Priority{
		domain.PriorityUrgent,
		domain.PriorityHigh,
		domain.PriorityMedium,
		domain.PriorityLow,
	}
	byPriority := make(map[domain.Priority][]domain.Task)
	for _, t := range reduced {
		p := t.Priority
		// Priorities outside the canonical four land in the low bucket so
		// grouped output always covers the reduced input.
		if weight(p) == 0 {
			p = domain.PriorityLow
		}
		byPriority[p] = append(byPriority[p], t)
	}
	groups := make([]TaskGroup, 0, len(order))
	for _, p := range order {
		groups = append(groups, TaskGroup{Key: string(p), Tasks: byPriority[p]})
	}
	return groups, nil
}

// reduceTasks applies the filter → search → sort stages.
func (e *Engine) reduceTasks(tasks []domain.Task, spec Spec) ([]domain.Task, error) {
	// Validate the whole spec up front so a bad key surfaces even when the
	// entity list is empty.
	if err := validateTaskSpec(spec); err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := taskMatches(&t, spec.Filters)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if spec.Search != "" &&
			!containsFold(t.Title, spec.Search) &&
			!containsFold(t.Description, spec.Search) {
			continue
		}
		out = append(out, t)
	}

	e.sortTasks(out, spec.Sort)
	return out, nil
}

var taskFilterFields = map[string]string{
	"status":          "equals",
	"priority":        "equals",
	"project":         "equals",
	"reporter":        "equals",
	"assignee":        "has",
	"tag":             "has",
	"dependency":      "has",
	"due_date":        "time",
	"created":         "time",
	"updated":         "time",
	"completed":       "time",
	"estimated_hours": "number",
	"actual_hours":    "number",
}

func validateTaskSpec(spec Spec) error {
	switch spec.Sort {
	case SortNone, SortPriority, SortDueDate, SortCreated, SortUpdated, SortAssignee:
	default:
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidSpec, spec.Sort)
	}
	for field, f := range spec.Filters {
		want, ok := taskFilterFields[field]
		if !ok {
			return fmt.Errorf("%w: unknown task filter field %q", ErrInvalidSpec, field)
		}
		if err := checkFilterKind(field, f, want); err != nil {
			return err
		}
	}
	return nil
}

// checkFilterKind verifies the filter form matches the field kind: scalar
// fields take Equals, list fields take Has, date/numeric fields take Range.
func checkFilterKind(field string, f Filter, want string) error {
	kind := f.kind()
	if kind == "" {
		return fmt.Errorf("%w: filter on %q must set exactly one of equals, has, or range", ErrInvalidSpec, field)
	}
	if want == "time" || want == "number" {
		if kind != "range" {
			return fmt.Errorf("%w: field %q takes a range filter", ErrInvalidSpec, field)
		}
		return nil
	}
	if kind != want {
		return fmt.Errorf("%w: field %q takes a %s filter", ErrInvalidSpec, field, want)
	}
	return nil
}

func taskMatches(t *domain.Task, filters map[string]Filter) (bool, error) {
	for field, f := range filters {
		var ok bool
		switch field {
		case "status":
			ok = string(t.Status) == f.Equals
		case "priority":
			ok = string(t.Priority) == f.Equals
		case "project":
			ok = t.ProjectID == f.Equals
		case "reporter":
			ok = t.ReporterID == f.Equals
		case "assignee":
			ok = hasString(t.AssigneeIDs, f.Has)
		case "tag":
			ok = hasString(t.Tags, f.Has)
		case "dependency":
			ok = hasString(t.Dependencies, f.Has)
		case "due_date":
			ok = t.DueDate != nil && f.Range.matchTime(*t.DueDate)
		case "created":
			ok = f.Range.matchTime(t.CreatedAt)
		case "updated":
			ok = f.Range.matchTime(t.UpdatedAt)
		case "completed":
			ok = t.CompletedAt != nil && f.Range.matchTime(*t.CompletedAt)
		case "estimated_hours":
			ok = t.EstimatedHours != nil && f.Range.matchFloat(*t.EstimatedHours)
		case "actual_hours":
			ok = t.ActualHours != nil && f.Range.matchFloat(*t.ActualHours)
		default:
			return false, fmt.Errorf("%w: unknown task filter field %q", ErrInvalidSpec, field)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// sortTasks orders tasks by the given key with the canonical tie-break:
// equal keys fall back to entity id ascending, so output is deterministic.
func (e *Engine) sortTasks(tasks []domain.Task, key SortKey) {
	switch key {
	case SortNone:
		return
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			wi, wj := weight(tasks[i].Priority), weight(tasks[j].Priority)
			if wi != wj {
				return wi > wj
			}
			return tasks[i].ID < tasks[j].ID
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return lessByDate(tasks[i].DueDate, tasks[j].DueDate, tasks[i].ID, tasks[j].ID)
		})
	case SortCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
				return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
			}
			return tasks[i].ID < tasks[j].ID
		})
	case SortUpdated:
		sort.SliceStable(tasks, func(i, j int) bool {
			if !tasks[i].UpdatedAt.Equal(tasks[j].UpdatedAt) {
				return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
			}
			return tasks[i].ID < tasks[j].ID
		})
	case SortAssignee:
		sort.SliceStable(tasks, func(i, j int) bool {
			ni := e.displayName(tasks[i].PrimaryAssignee())
			nj := e.displayName(tasks[j].PrimaryAssignee())
			if (ni == "") != (nj == "") {
				return ni != "" // named before unassigned
			}
			if ni != nj {
				return ni < nj
			}
			return tasks[i].ID < tasks[j].ID
		})
	}
}

// lessByDate orders ascending by date with nil dates last and id tie-break.
func lessByDate(a, b *time.Time, idA, idB string) bool {
	if (a == nil) != (b == nil) {
		return a != nil // non-nil before nil
	}
	if a != nil && b != nil && !a.Equal(*b) {
		return a.Before(*b)
	}
	return idA < idB
}
