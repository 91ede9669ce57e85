package query

import (
	"fmt"
	"sort"

	"github.com/taskdeck/taskdeck/internal/domain"
)

var userFilterFields = map[string]string{
	"role":        "equals",
	"status":      "equals",
	"department":  "equals",
	"created":     "time",
	"last_active": "time",
}

// Users runs a spec over a user list. Users sort by created time only;
// grouping is not defined for users.
func (e *Engine) Users(users []domain.User, spec Spec) ([]domain.User, error) {
	if spec.Group != GroupNone {
		return nil, fmt.Errorf("%w: users cannot be grouped by %q", ErrInvalidSpec, spec.Group)
	}
	switch spec.Sort {
	case SortNone, SortCreated:
	default:
		return nil, fmt.Errorf("%w: unknown user sort key %q", ErrInvalidSpec, spec.Sort)
	}
	for field, f := range spec.Filters {
		want, ok := userFilterFields[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown user filter field %q", ErrInvalidSpec, field)
		}
		if err := checkFilterKind(field, f, want); err != nil {
			return nil, err
		}
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if !userMatches(&u, spec.Filters) {
			continue
		}
		if spec.Search != "" &&
			!containsFold(u.Name, spec.Search) &&
			!containsFold(u.Email, spec.Search) &&
			!containsFold(u.Department, spec.Search) {
			continue
		}
		out = append(out, u)
	}

	if spec.Sort == SortCreated {
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID < out[j].ID
		})
	}
	return out, nil
}

func userMatches(u *domain.User, filters map[string]Filter) bool {
	for field, f := range filters {
		var ok bool
		switch field {
		case "role":
			ok = string(u.Role) == f.Equals
		case "status":
			ok = string(u.Status) == f.Equals
		case "department":
			ok = u.Department == f.Equals
		case "created":
			ok = f.Range.matchTime(u.CreatedAt)
		case "last_active":
			ok = u.LastActive != nil && f.Range.matchTime(*u.LastActive)
		}
		if !ok {
			return false
		}
	}
	return true
}
