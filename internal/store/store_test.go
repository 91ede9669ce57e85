package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/assemble"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUserStore_RoundTrip(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	lastActive := "2026-08-30T12:00:00Z"
	in := assemble.RawUser{
		ID:         "u1",
		Name:       "Ada Moreno",
		Email:      "ada@example.com",
		Role:       "ADMIN",
		Status:     "ACTIVE",
		CreatedAt:  "2026-01-15T08:00:00Z",
		LastActive: &lastActive,
		Timezone:   "UTC",
		Position:   "Engineering Lead",
		Department: "Engineering",
	}
	require.NoError(t, stores.Users.Create(ctx, in))

	out, err := stores.Users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, in, out, "codes are stored verbatim, not normalized")
}

func TestUserStore_GetMissing(t *testing.T) {
	stores := testutil.NewTestStores(t)

	_, err := stores.Users.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectStore_SettingsAbsentVsFalse(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Projects.Create(ctx, assemble.RawProject{
		ID: "p1", Name: "NoSettings", OwnerID: "u1",
		CreatedAt: "2026-08-01T10:00:00Z", UpdatedAt: "2026-08-01T10:00:00Z",
	}, nil, nil))
	require.NoError(t, stores.Projects.Create(ctx, assemble.RawProject{
		ID: "p2", Name: "Disabled", OwnerID: "u1",
		CreatedAt: "2026-08-01T10:00:00Z", UpdatedAt: "2026-08-01T10:00:00Z",
		Settings: &assemble.RawProjectSettings{AllowComments: boolPtr(false)},
	}, nil, nil))

	noSettings, err := stores.Projects.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, noSettings.Settings, "absent settings must come back absent")

	disabled, err := stores.Projects.Get(ctx, "p2")
	require.NoError(t, err)
	require.NotNil(t, disabled.Settings)
	require.NotNil(t, disabled.Settings.AllowComments)
	assert.False(t, *disabled.Settings.AllowComments)
	assert.Nil(t, disabled.Settings.TimeTracking)
}

func TestProjectStore_MemberOrderPreserved(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	members := []assemble.RawProjectMember{
		{ProjectID: "p1", UserID: "u3"},
		{ProjectID: "p1", UserID: "u1"},
		{ProjectID: "p1", UserID: "u2"},
	}
	require.NoError(t, stores.Projects.Create(ctx, assemble.RawProject{
		ID: "p1", Name: "x", OwnerID: "u1",
		CreatedAt: "2026-08-01T10:00:00Z", UpdatedAt: "2026-08-01T10:00:00Z",
	}, members, nil))

	byProject, err := stores.Projects.Members(ctx)
	require.NoError(t, err)
	got := make([]string, 0, 3)
	for _, m := range byProject["p1"] {
		got = append(got, m.UserID)
	}
	assert.Equal(t, []string{"u3", "u1", "u2"}, got)
}

func TestTaskStore_RoundTripWithRelations(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	hours := 4.5
	in := assemble.RawTask{
		ID:             "t1",
		Title:          "Implement auth flow",
		Description:    "OAuth login",
		Status:         "IN_PROGRESS",
		Priority:       "URGENT",
		ProjectID:      "p1",
		ReporterID:     "u1",
		CreatedAt:      "2026-08-01T10:00:00Z",
		UpdatedAt:      "2026-08-02T10:00:00Z",
		DueDate:        strPtr("2026-09-01T00:00:00Z"),
		EstimatedHours: &hours,
		Tags:           []string{"auth", "backend"},
		Position:       3,
	}
	rel := assemble.TaskRelations{
		Assignees: []assemble.RawTaskAssignee{
			{TaskID: "t1", UserID: "u2"},
			{TaskID: "t1", UserID: "u1"},
		},
		Dependencies: []assemble.RawTaskDependency{{TaskID: "t1", DependsOnID: "t0"}},
		Subtasks: []assemble.RawSubtask{
			{ID: "s1", TaskID: "t1", Title: "Pick provider", Completed: true, CreatedAt: "2026-08-01T10:00:00Z"},
		},
		Comments: []assemble.RawComment{
			{ID: "c1", TaskID: "t1", Content: "started", AuthorID: "u1", CreatedAt: "2026-08-01T11:00:00Z",
				Mentions: []string{"u2"}},
		},
	}
	require.NoError(t, stores.Tasks.Create(ctx, in, rel))

	out, err := stores.Tasks.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Status, out.Status)
	assert.Equal(t, in.Tags, out.Tags)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, *in.DueDate, *out.DueDate)
	require.NotNil(t, out.EstimatedHours)
	assert.Equal(t, hours, *out.EstimatedHours)

	rels, err := stores.Tasks.Relations(ctx)
	require.NoError(t, err)
	got := rels["t1"]
	require.Len(t, got.Assignees, 2)
	assert.Equal(t, "u2", got.Assignees[0].UserID, "assignee rank order must survive")
	require.Len(t, got.Dependencies, 1)
	assert.Equal(t, "t0", got.Dependencies[0].DependsOnID)
	require.Len(t, got.Subtasks, 1)
	assert.True(t, got.Subtasks[0].Completed)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, []string{"u2"}, got.Comments[0].Mentions)
}

func TestTaskStore_ListByProject(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	for i, id := range []string{"t1", "t2", "t3"} {
		projectID := "p1"
		if id == "t3" {
			projectID = "p2"
		}
		require.NoError(t, stores.Tasks.Create(ctx, assemble.RawTask{
			ID: id, Title: id, Status: "TODO", Priority: "LOW", ProjectID: projectID,
			CreatedAt: "2026-08-01T10:00:00Z", UpdatedAt: "2026-08-01T10:00:00Z", Position: i,
		}, assemble.TaskRelations{}))
	}

	all, err := stores.Tasks.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	p1Only, err := stores.Tasks.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p1Only, 2)
	assert.Equal(t, "t1", p1Only[0].ID)
}

func TestNotificationStore_UnreadCount(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	notifications := []assemble.RawNotification{
		{ID: "n1", Type: "MENTION", UserID: "u1", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: "n2", Type: "TASK_ASSIGNED", UserID: "u1", Read: true, CreatedAt: "2026-08-02T10:00:00Z"},
		{ID: "n3", Type: "MENTION", UserID: "u2", CreatedAt: "2026-08-03T10:00:00Z"},
	}
	for _, n := range notifications {
		require.NoError(t, stores.Notifications.Create(ctx, n))
	}

	count, err := stores.Notifications.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	forUser, err := stores.Notifications.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, forUser, 2)
	assert.Equal(t, "n2", forUser[0].ID, "newest first")
}

func TestActivityStore_AppendAndList(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Activities.Append(ctx, assemble.RawActivity{
		ID: "a1", Type: "PROJECT_CREATED", UserID: "u1", ProjectID: "p1",
		Description: "created project", CreatedAt: "2026-08-01T10:00:00Z",
		Metadata: map[string]string{"source": "cli"},
	}))
	require.NoError(t, stores.Activities.Append(ctx, assemble.RawActivity{
		ID: "a2", Type: "TASK_CREATED", UserID: "u1", ProjectID: "p1",
		Description: "created task", CreatedAt: "2026-08-02T10:00:00Z",
	}))

	all, err := stores.Activities.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a2", all[0].ID, "newest first")
	assert.Equal(t, map[string]string{"source": "cli"}, all[1].Metadata)

	limited, err := stores.Activities.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSeed_PopulatesWorkspace(t *testing.T) {
	stores := testutil.NewTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, stores))

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	projects, err := stores.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	tasks, err := stores.Tasks.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, tasks, 9)

	rels, err := stores.Tasks.Relations(ctx)
	require.NoError(t, err)
	deps := 0
	for _, r := range rels {
		deps += len(r.Dependencies)
	}
	assert.Equal(t, 1, deps)
}
