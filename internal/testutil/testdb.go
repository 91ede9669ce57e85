package testutil

import (
	"database/sql"
	"testing"

	"github.com/taskdeck/taskdeck/internal/store"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// NewTestStores wires every entity store over a fresh in-memory database.
func NewTestStores(t *testing.T) store.Stores {
	t.Helper()
	db := NewTestDB(t)
	return store.Stores{
		Users:         store.NewUserStore(db),
		Teams:         store.NewTeamStore(db),
		Projects:      store.NewProjectStore(db),
		Tasks:         store.NewTaskStore(db),
		Notifications: store.NewNotificationStore(db),
		Activities:    store.NewActivityStore(db),
	}
}
