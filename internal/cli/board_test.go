package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func testWorkspace() *workspace {
	users := []domain.User{
		testutil.NewTestUser("Ada", testutil.WithUserID("u-ada")),
		testutil.NewTestUser("Ben", testutil.WithUserID("u-ben")),
	}
	project := testutil.NewTestProject("Website Relaunch")
	project.ID = "p1"

	tasks := []domain.Task{
		testutil.NewTestTask("Set up CI", testutil.WithID("t1"),
			testutil.WithStatus(domain.TaskTodo), testutil.WithAssignees("u-ada")),
		testutil.NewTestTask("Auth flow", testutil.WithID("t2"),
			testutil.WithStatus(domain.TaskInProgress), testutil.WithPriority(domain.PriorityUrgent)),
		testutil.NewTestTask("Footer links", testutil.WithID("t3"),
			testutil.WithStatus(domain.TaskDone)),
	}

	ws := &workspace{
		Users:        users,
		Projects:     []domain.Project{project},
		Tasks:        tasks,
		Engine:       query.NewEngine(users),
		usersByID:    map[string]domain.User{},
		projectsByID: map[string]domain.Project{project.ID: project},
	}
	for _, u := range users {
		ws.usersByID[u.ID] = u
	}
	return ws
}

func TestRenderBoard_ShowsEveryColumn(t *testing.T) {
	ws := testWorkspace()
	groups, err := ws.Engine.GroupTasks(ws.Tasks, query.Spec{Group: query.GroupStatus})
	require.NoError(t, err)

	out := renderBoard(ws, groups, 28)
	assert.Contains(t, out, "TO DO (1)")
	assert.Contains(t, out, "IN PROGRESS (1)")
	assert.Contains(t, out, "REVIEW (0)")
	assert.Contains(t, out, "DONE (1)")
	assert.Contains(t, out, "backlog · todo", "collapsed statuses listed under the column header")
	assert.Contains(t, out, "Set up CI")
	assert.Contains(t, out, "Ada")
}

func TestBoardModel_SearchRequeries(t *testing.T) {
	ws := testWorkspace()
	m := newBoardModel(ws, query.Spec{Group: query.GroupStatus})

	require.Len(t, m.groups, 4)
	total := 0
	for _, g := range m.groups {
		total += len(g.Tasks)
	}
	assert.Equal(t, 3, total)

	m.search.SetValue("auth")
	m.requery()

	total = 0
	for _, g := range m.groups {
		total += len(g.Tasks)
	}
	assert.Equal(t, 1, total)
	assert.Len(t, m.groups, 4, "empty columns stay visible while filtering")
}

func TestWorkspace_ResolveUser(t *testing.T) {
	ws := testWorkspace()

	id, err := ws.resolveUser("Ada")
	require.NoError(t, err)
	assert.Equal(t, "u-ada", id)

	id, err = ws.resolveUser("ben@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-ben", id)

	_, err = ws.resolveUser("nobody")
	assert.Error(t, err)
}

func TestWorkspace_ResolveProject(t *testing.T) {
	ws := testWorkspace()

	id, err := ws.resolveProject("website relaunch")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	id, err = ws.resolveProject("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
}

func TestTaskQueryFlags_ToSpec(t *testing.T) {
	ws := testWorkspace()
	qf := taskQueryFlags{
		status:   "IN-PROGRESS",
		priority: "URGENT",
		assignee: "Ada",
		sortKey:  "due_date",
	}

	spec, err := qf.toSpec(ws)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", spec.Filters["status"].Equals)
	assert.Equal(t, "urgent", spec.Filters["priority"].Equals)
	assert.Equal(t, "u-ada", spec.Filters["assignee"].Has)
	assert.Equal(t, query.SortDueDate, spec.Sort)
}

func TestTaskQueryFlags_DueRange(t *testing.T) {
	ws := testWorkspace()
	qf := taskQueryFlags{dueAfter: "2026-09-01", dueBefore: "2026-09-30"}

	spec, err := qf.toSpec(ws)
	require.NoError(t, err)
	r := spec.Filters["due_date"].Range
	require.NotNil(t, r)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.True(t, r.End.After(time.Date(2026, 9, 30, 23, 59, 0, 0, time.UTC)))
}

func TestTaskQueryFlags_BadDate(t *testing.T) {
	ws := testWorkspace()
	qf := taskQueryFlags{dueBefore: "soon"}

	_, err := qf.toSpec(ws)
	assert.Error(t, err)
}
