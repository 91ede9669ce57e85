package assemble

import "errors"

var (
	// ErrMissingRelation indicates a required relation (such as a task's
	// project) was absent from the raw record. The caller decides whether
	// to skip the record or abort the batch.
	ErrMissingRelation = errors.New("missing required relation")

	// ErrSelfDependency indicates a raw task lists itself as a
	// prerequisite.
	ErrSelfDependency = errors.New("task depends on itself")
)
