// Package query filters, searches, sorts, and groups canonical entities for
// list and board views. The pipeline order is fixed: filter, then search,
// then sort, then group. All stages compose with AND semantics, every sort
// has an explicit id tie-break, and the engine never mutates its input.
package query

import (
	"errors"
	"time"
)

// ErrInvalidSpec indicates an unrecognized sort, group, or filter key.
// Unlike enum normalization, which degrades unknown *data* to a safe
// default, an unknown key is unknown *caller intent* and must surface
// immediately.
var ErrInvalidSpec = errors.New("invalid query spec")

// SortKey selects the ordering applied after filtering and search.
type SortKey string

const (
	// SortNone preserves the input order.
	SortNone SortKey = ""
	// SortPriority orders urgent > high > medium > low, then id.
	SortPriority SortKey = "priority"
	// SortDueDate orders ascending by due date; entities without one sort
	// after all entities that have one.
	SortDueDate SortKey = "due_date"
	// SortCreated orders most recently created first.
	SortCreated SortKey = "created"
	// SortUpdated orders most recently updated first.
	SortUpdated SortKey = "updated"
	// SortAssignee orders ascending by the primary assignee's display
	// name; unassigned entities sort last.
	SortAssignee SortKey = "assignee"
)

// GroupKey selects the partitioning applied after sorting.
type GroupKey string

const (
	GroupNone GroupKey = ""
	// GroupStatus partitions tasks into board columns (workflow column
	// ids, not literal statuses).
	GroupStatus GroupKey = "status"
	// GroupPriority partitions tasks by priority, urgent first.
	GroupPriority GroupKey = "priority"
)

// Spec describes one query: free-text search, field filters, a sort key,
// and a group key. Every field is optional; the zero Spec is a no-op that
// returns its input in order. Build a fresh Spec per call rather than
// mutating a shared one.
type Spec struct {
	// Search is matched case-insensitively as a substring against a fixed
	// set of text fields per entity kind: task title+description, project
	// name+description, user name+email+department.
	Search  string
	Filters map[string]Filter
	Sort    SortKey
	Group   GroupKey
}

// Filter is one predicate on a named field. Exactly one of Equals, Has, or
// Range must be set: Equals matches a scalar field, Has matches membership
// in a list field, Range matches a date or numeric field.
type Filter struct {
	Equals string
	Has    string
	Range  *Range
}

// Range bounds a date or numeric field. Either bound may be omitted; a
// present bound is inclusive. Start/End apply to date fields, Min/Max to
// numeric fields.
type Range struct {
	Start *time.Time
	End   *time.Time
	Min   *float64
	Max   *float64
}

// kind reports which of the three filter forms is populated, or "" when the
// filter is empty or over-populated.
func (f Filter) kind() string {
	set := 0
	kind := ""
	if f.Equals != "" {
		set++
		kind = "equals"
	}
	if f.Has != "" {
		set++
		kind = "has"
	}
	if f.Range != nil {
		set++
		kind = "range"
	}
	if set != 1 {
		return ""
	}
	return kind
}

// matchTime reports whether t satisfies the range's date bounds.
func (r *Range) matchTime(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// matchFloat reports whether v satisfies the range's numeric bounds.
func (r *Range) matchFloat(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}
