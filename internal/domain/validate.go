package domain

import "fmt"

// ValidateTaskDependencies checks a single task's dependency list for local
// problems. Returns a slice of all errors found.
func ValidateTaskDependencies(t *Task) []error {
	var errs []error

	seen := make(map[string]bool)
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			errs = append(errs, fmt.Errorf("task %q: self-dependency", t.ID))
		}
		if seen[dep] {
			errs = append(errs, fmt.Errorf("task %q: duplicate dependency %q", t.ID, dep))
		}
		seen[dep] = true
	}

	return errs
}

// ValidateTaskGraph checks a batch of tasks for cross-task dependency
// problems: references to tasks outside the batch, dependencies crossing
// project boundaries, and cycles. A cycle is a data-integrity error, never
// silently resolved.
func ValidateTaskGraph(tasks []Task) []error {
	var errs []error

	byID := make(map[string]*Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	for i := range tasks {
		t := &tasks[i]
		errs = append(errs, ValidateTaskDependencies(t)...)
		for _, dep := range t.Dependencies {
			pre, ok := byID[dep]
			if !ok {
				errs = append(errs, fmt.Errorf("task %q: dependency %q not found", t.ID, dep))
				continue
			}
			if pre.ProjectID != t.ProjectID {
				errs = append(errs, fmt.Errorf("task %q: dependency %q belongs to project %q, not %q",
					t.ID, dep, pre.ProjectID, t.ProjectID))
			}
		}
	}

	errs = append(errs, detectDependencyCycles(tasks)...)
	return errs
}

func detectDependencyCycles(tasks []Task) []error {
	graph := make(map[string][]string)
	nodes := make(map[string]bool)
	for i := range tasks {
		t := &tasks[i]
		for _, dep := range t.Dependencies {
			if dep == t.ID {
				continue
			}
			graph[dep] = append(graph[dep], t.ID)
			nodes[dep] = true
			nodes[t.ID] = true
		}
	}

	// DFS cycle detection
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q and %q", node, neighbor))
				return true
			}
			if color[neighbor] == white {
				if visit(neighbor) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for node := range nodes {
		if color[node] == white {
			visit(node)
		}
	}

	return errs
}
