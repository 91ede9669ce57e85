package query

import (
	"fmt"
	"sort"

	"github.com/taskdeck/taskdeck/internal/domain"
)

var projectFilterFields = map[string]string{
	"status":     "equals",
	"priority":   "equals",
	"visibility": "equals",
	"owner":      "equals",
	"member":     "has",
	"team":       "has",
	"tag":        "has",
	"due_date":   "time",
	"created":    "time",
	"updated":    "time",
	"progress":   "number",
}

// Projects runs a spec over a project list. Grouping is not defined for
// projects; a group key fails with ErrInvalidSpec.
func (e *Engine) Projects(projects []domain.Project, spec Spec) ([]domain.Project, error) {
	if spec.Group != GroupNone {
		return nil, fmt.Errorf("%w: projects cannot be grouped by %q", ErrInvalidSpec, spec.Group)
	}
	switch spec.Sort {
	case SortNone, SortPriority, SortDueDate, SortCreated, SortUpdated:
	default:
		return nil, fmt.Errorf("%w: unknown project sort key %q", ErrInvalidSpec, spec.Sort)
	}
	for field, f := range spec.Filters {
		want, ok := projectFilterFields[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown project filter field %q", ErrInvalidSpec, field)
		}
		if err := checkFilterKind(field, f, want); err != nil {
			return nil, err
		}
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if !projectMatches(&p, spec.Filters) {
			continue
		}
		if spec.Search != "" &&
			!containsFold(p.Name, spec.Search) &&
			!containsFold(p.Description, spec.Search) {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, spec.Sort)
	return out, nil
}

func projectMatches(p *domain.Project, filters map[string]Filter) bool {
	for field, f := range filters {
		var ok bool
		switch field {
		case "status":
			ok = string(p.Status) == f.Equals
		case "priority":
			ok = string(p.Priority) == f.Equals
		case "visibility":
			ok = string(p.Visibility) == f.Equals
		case "owner":
			ok = p.OwnerID == f.Equals
		case "member":
			ok = hasString(p.MemberIDs, f.Has)
		case "team":
			ok = hasString(p.TeamIDs, f.Has)
		case "tag":
			ok = hasString(p.Tags, f.Has)
		case "due_date":
			ok = p.DueDate != nil && f.Range.matchTime(*p.DueDate)
		case "created":
			ok = f.Range.matchTime(p.CreatedAt)
		case "updated":
			ok = f.Range.matchTime(p.UpdatedAt)
		case "progress":
			ok = f.Range.matchFloat(float64(p.Progress))
		}
		if !ok {
			return false
		}
	}
	return true
}

func sortProjects(projects []domain.Project, key SortKey) {
	switch key {
	case SortNone:
		return
	case SortPriority:
		sort.SliceStable(projects, func(i, j int) bool {
			wi, wj := weight(projects[i].Priority), weight(projects[j].Priority)
			if wi != wj {
				return wi > wj
			}
			return projects[i].ID < projects[j].ID
		})
	case SortDueDate:
		sort.SliceStable(projects, func(i, j int) bool {
			return lessByDate(projects[i].DueDate, projects[j].DueDate, projects[i].ID, projects[j].ID)
		})
	case SortCreated:
		sort.SliceStable(projects, func(i, j int) bool {
			if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
				return projects[i].CreatedAt.After(projects[j].CreatedAt)
			}
			return projects[i].ID < projects[j].ID
		})
	case SortUpdated:
		sort.SliceStable(projects, func(i, j int) bool {
			if !projects[i].UpdatedAt.Equal(projects[j].UpdatedAt) {
				return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
			}
			return projects[i].ID < projects[j].ID
		})
	}
}
