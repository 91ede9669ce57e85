package store

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent CREATE statements run on every open.
// Enum-valued columns hold storage-native upper-snake codes; the
// normalization boundary lives in the assemble package, not here.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		avatar      TEXT NOT NULL DEFAULT '',
		role        TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		last_active TEXT,
		timezone    TEXT NOT NULL DEFAULT '',
		position    TEXT NOT NULL DEFAULT '',
		department  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		leader_id   TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		color       TEXT NOT NULL DEFAULT '',
		department  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rank    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (team_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		icon              TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL,
		visibility        TEXT NOT NULL,
		owner_id          TEXT NOT NULL,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL,
		due_date          TEXT,
		progress          INTEGER NOT NULL DEFAULT 0,
		priority          TEXT NOT NULL,
		tags              TEXT NOT NULL DEFAULT '[]',
		allow_comments    INTEGER,
		allow_attachments INTEGER,
		require_approval  INTEGER,
		time_tracking     INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS project_members (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rank       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS project_teams (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		team_id    TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		rank       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL,
		priority        TEXT NOT NULL,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		reporter_id     TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		due_date        TEXT,
		start_date      TEXT,
		completed_at    TEXT,
		estimated_hours REAL,
		actual_hours    REAL,
		tags            TEXT NOT NULL DEFAULT '[]',
		custom_fields   TEXT NOT NULL DEFAULT '{}',
		position        INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS task_assignees (
		task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rank    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (task_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL,
		PRIMARY KEY (task_id, depends_on_id)
	)`,
	`CREATE TABLE IF NOT EXISTS subtasks (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		assignee_id TEXT NOT NULL DEFAULT '',
		due_date    TEXT,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id         TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		author_id  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT,
		mentions   TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id           TEXT PRIMARY KEY,
		type         TEXT NOT NULL,
		title        TEXT NOT NULL,
		message      TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_read      INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT,
		related_id   TEXT NOT NULL DEFAULT '',
		related_type TEXT NOT NULL DEFAULT '',
		action_url   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		project_id  TEXT NOT NULL DEFAULT '',
		task_id     TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		metadata    TEXT NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, is_read)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
