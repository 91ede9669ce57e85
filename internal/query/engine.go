package query

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Engine runs query specs over in-memory entity snapshots. The only state
// it carries is a user display-name index for assignee sorting; everything
// else is pure computation per call, safe for concurrent use.
type Engine struct {
	userName map[string]string
}

// NewEngine builds an engine with the given users as the display-name index
// for assignee ordering.
func NewEngine(users []domain.User) *Engine {
	idx := make(map[string]string, len(users))
	for _, u := range users {
		idx[u.ID] = u.Name
	}
	return &Engine{userName: idx}
}

// displayName resolves a user id to a display name, or "" when unknown.
func (e *Engine) displayName(id string) string {
	if e == nil || e.userName == nil {
		return ""
	}
	return e.userName[id]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func hasString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// weight returns the sort weight of a priority. Values outside the known
// set weigh 0 and therefore sort below low.
func weight(p domain.Priority) int {
	switch p {
	case domain.PriorityUrgent:
		return 4
	case domain.PriorityHigh:
		return 3
	case domain.PriorityMedium:
		return 2
	case domain.PriorityLow:
		return 1
	default:
		return 0
	}
}
