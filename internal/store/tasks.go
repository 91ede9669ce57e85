package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/assemble"
)

const taskColumns = `id, title, description, status, priority, project_id, reporter_id,
		created_at, updated_at, due_date, start_date, completed_at,
		estimated_hours, actual_hours, tags, custom_fields, position`

// TaskStore persists and retrieves raw task rows together with their
// assignee, dependency, subtask, and comment sub-records.
type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) Create(ctx context.Context, t assemble.RawTask, rel assemble.TaskRelations) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.Status, t.Priority, t.ProjectID, t.ReporterID,
		t.CreatedAt, t.UpdatedAt,
		nullableToValue(t.DueDate), nullableToValue(t.StartDate), nullableToValue(t.CompletedAt),
		nullableFloatToValue(t.EstimatedHours), nullableFloatToValue(t.ActualHours),
		encodeJSON(t.Tags, "[]"), encodeJSON(t.CustomFields, "{}"), t.Position,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	for rank, a := range rel.Assignees {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO task_assignees (task_id, user_id, rank) VALUES (?, ?, ?)`,
			a.TaskID, a.UserID, rank,
		)
		if err != nil {
			return fmt.Errorf("inserting task assignee: %w", err)
		}
	}
	for _, d := range rel.Dependencies {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO task_dependencies (task_id, depends_on_id) VALUES (?, ?)`,
			d.TaskID, d.DependsOnID,
		)
		if err != nil {
			return fmt.Errorf("inserting task dependency: %w", err)
		}
	}
	for _, st := range rel.Subtasks {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO subtasks (id, task_id, title, completed, assignee_id, due_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.ID, st.TaskID, st.Title, boolToInt(st.Completed), st.AssigneeID,
			nullableToValue(st.DueDate), st.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting subtask: %w", err)
		}
	}
	for _, c := range rel.Comments {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO comments (id, task_id, content, author_id, created_at, updated_at, mentions)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.TaskID, c.Content, c.AuthorID, c.CreatedAt,
			nullableToValue(c.UpdatedAt), encodeJSON(c.Mentions, "[]"),
		)
		if err != nil {
			return fmt.Errorf("inserting comment: %w", err)
		}
	}
	return nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (assemble.RawTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return assemble.RawTask{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return assemble.RawTask{}, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

// List returns all task rows, optionally restricted to one project.
func (s *TaskStore) List(ctx context.Context, projectID string) ([]assemble.RawTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position, created_at, id`
	args := []any{}
	if projectID != "" {
		query = `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?
			ORDER BY position, created_at, id`
		args = append(args, projectID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []assemble.RawTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// Relations bulk-loads the sub-records of every task, keyed by task id.
// Assignees come back in rank order, which assembly preserves as the
// primary-assignee ordering.
func (s *TaskStore) Relations(ctx context.Context) (map[string]assemble.TaskRelations, error) {
	rels := make(map[string]assemble.TaskRelations)

	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, user_id FROM task_assignees ORDER BY task_id, rank`)
	if err != nil {
		return nil, fmt.Errorf("listing task assignees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a assemble.RawTaskAssignee
		if err := rows.Scan(&a.TaskID, &a.UserID); err != nil {
			return nil, fmt.Errorf("scanning task assignee: %w", err)
		}
		r := rels[a.TaskID]
		r.Assignees = append(r.Assignees, a)
		rels[a.TaskID] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task assignees: %w", err)
	}

	depRows, err := s.db.QueryContext(ctx,
		`SELECT task_id, depends_on_id FROM task_dependencies ORDER BY task_id, depends_on_id`)
	if err != nil {
		return nil, fmt.Errorf("listing task dependencies: %w", err)
	}
	defer depRows.Close()
	for depRows.Next() {
		var d assemble.RawTaskDependency
		if err := depRows.Scan(&d.TaskID, &d.DependsOnID); err != nil {
			return nil, fmt.Errorf("scanning task dependency: %w", err)
		}
		r := rels[d.TaskID]
		r.Dependencies = append(r.Dependencies, d)
		rels[d.TaskID] = r
	}
	if err := depRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task dependencies: %w", err)
	}

	subRows, err := s.db.QueryContext(ctx,
		`SELECT id, task_id, title, completed, assignee_id, due_date, created_at
		FROM subtasks ORDER BY task_id, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing subtasks: %w", err)
	}
	defer subRows.Close()
	for subRows.Next() {
		var st assemble.RawSubtask
		var completed int
		var dueDate sql.NullString
		if err := subRows.Scan(&st.ID, &st.TaskID, &st.Title, &completed, &st.AssigneeID, &dueDate, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning subtask: %w", err)
		}
		st.Completed = intToBool(completed)
		st.DueDate = nullableString(dueDate)
		r := rels[st.TaskID]
		r.Subtasks = append(r.Subtasks, st)
		rels[st.TaskID] = r
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subtasks: %w", err)
	}

	commentRows, err := s.db.QueryContext(ctx,
		`SELECT id, task_id, content, author_id, created_at, updated_at, mentions
		FROM comments ORDER BY task_id, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer commentRows.Close()
	for commentRows.Next() {
		var c assemble.RawComment
		var updatedAt sql.NullString
		var mentions string
		if err := commentRows.Scan(&c.ID, &c.TaskID, &c.Content, &c.AuthorID, &c.CreatedAt, &updatedAt, &mentions); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		c.UpdatedAt = nullableString(updatedAt)
		c.Mentions = decodeStrings(mentions)
		r := rels[c.TaskID]
		r.Comments = append(r.Comments, c)
		rels[c.TaskID] = r
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return rels, nil
}

func scanTask(row rowScanner) (assemble.RawTask, error) {
	var t assemble.RawTask
	var dueDate, startDate, completedAt sql.NullString
	var estimated, actual sql.NullFloat64
	var tags, customFields string
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.ProjectID, &t.ReporterID,
		&t.CreatedAt, &t.UpdatedAt, &dueDate, &startDate, &completedAt,
		&estimated, &actual, &tags, &customFields, &t.Position,
	)
	if err != nil {
		return assemble.RawTask{}, err
	}
	t.DueDate = nullableString(dueDate)
	t.StartDate = nullableString(startDate)
	t.CompletedAt = nullableString(completedAt)
	t.EstimatedHours = nullableFloat(estimated)
	t.ActualHours = nullableFloat(actual)
	t.Tags = decodeStrings(tags)
	t.CustomFields = decodeFields(customFields)
	return t, nil
}
