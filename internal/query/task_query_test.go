package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func testEngine() *Engine {
	return NewEngine([]domain.User{
		testutil.NewTestUser("Ada", testutil.WithUserID("u-ada")),
		testutil.NewTestUser("Ben", testutil.WithUserID("u-ben")),
		testutil.NewTestUser("Chloe", testutil.WithUserID("u-chloe")),
	})
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestTasks_ZeroSpecPreservesOrder(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("b", testutil.WithID("t2")),
		testutil.NewTestTask("a", testutil.WithID("t1")),
	}

	out, err := testEngine().Tasks(tasks, Spec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, taskIDs(out))
}

func TestTasks_FilterByStatus(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithStatus(domain.TaskInProgress)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithStatus(domain.TaskDone)),
		testutil.NewTestTask("c", testutil.WithID("t3"), testutil.WithStatus(domain.TaskInProgress)),
	}

	out, err := testEngine().Tasks(tasks, Spec{
		Filters: map[string]Filter{"status": {Equals: "in_progress"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, taskIDs(out))
}

func TestTasks_FiltersCompose(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"),
			testutil.WithStatus(domain.TaskTodo), testutil.WithAssignees("u-ada")),
		testutil.NewTestTask("b", testutil.WithID("t2"),
			testutil.WithStatus(domain.TaskTodo), testutil.WithAssignees("u-ben")),
		testutil.NewTestTask("c", testutil.WithID("t3"),
			testutil.WithStatus(domain.TaskDone), testutil.WithAssignees("u-ada")),
	}

	out, err := testEngine().Tasks(tasks, Spec{
		Filters: map[string]Filter{
			"status":   {Equals: "todo"},
			"assignee": {Has: "u-ada"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, taskIDs(out))
}

func TestTasks_SearchIsCaseInsensitive(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("Fix LOGIN flow", testutil.WithID("t1")),
		testutil.NewTestTask("Write docs", testutil.WithID("t2")),
	}

	out, err := testEngine().Tasks(tasks, Spec{Search: "login"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, taskIDs(out))
}

func TestTasks_SearchMatchesDescription(t *testing.T) {
	task := testutil.NewTestTask("Opaque title", testutil.WithID("t1"))
	task.Description = "covers the onboarding e-mail"

	out, err := testEngine().Tasks([]domain.Task{task}, Spec{Search: "onboarding"})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestTasks_SortPriority(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithPriority(domain.PriorityUrgent)),
		testutil.NewTestTask("c", testutil.WithID("t3"), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("d", testutil.WithID("t4"), testutil.WithPriority(domain.Priority("unknown"))),
	}

	out, err := testEngine().Tasks(tasks, Spec{Sort: SortPriority})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t3", "t1", "t4"}, taskIDs(out),
		"urgent first, unknown priority below low")
}

func TestTasks_SortPriorityTieBreaksOnID(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t9"), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("b", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityHigh)),
	}

	out, err := testEngine().Tasks(tasks, Spec{Sort: SortPriority})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t9"}, taskIDs(out))
}

func TestTasks_SortDueDateNilLast(t *testing.T) {
	early := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		testutil.NewTestTask("none", testutil.WithID("t1")),
		testutil.NewTestTask("late", testutil.WithID("t2"), testutil.WithDueDate(late)),
		testutil.NewTestTask("early", testutil.WithID("t3"), testutil.WithDueDate(early)),
	}

	out, err := testEngine().Tasks(tasks, Spec{Sort: SortDueDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, taskIDs(out))
}

func TestTasks_SortCreatedNewestFirst(t *testing.T) {
	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		testutil.NewTestTask("old", testutil.WithID("t1"), testutil.WithCreatedAt(older)),
		testutil.NewTestTask("new", testutil.WithID("t2"), testutil.WithCreatedAt(newer)),
	}

	out, err := testEngine().Tasks(tasks, Spec{Sort: SortCreated})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, taskIDs(out))
}

func TestTasks_SortAssigneeByDisplayNameUnassignedLast(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("unassigned", testutil.WithID("t1")),
		testutil.NewTestTask("chloe's", testutil.WithID("t2"), testutil.WithAssignees("u-chloe")),
		testutil.NewTestTask("ada's", testutil.WithID("t3"), testutil.WithAssignees("u-ada")),
	}

	out, err := testEngine().Tasks(tasks, Spec{Sort: SortAssignee})
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, taskIDs(out))
}

func TestTasks_DueDateRangeFilter(t *testing.T) {
	inside := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		testutil.NewTestTask("in", testutil.WithID("t1"), testutil.WithDueDate(inside)),
		testutil.NewTestTask("out", testutil.WithID("t2"), testutil.WithDueDate(outside)),
		testutil.NewTestTask("none", testutil.WithID("t3")),
	}

	out, err := testEngine().Tasks(tasks, Spec{
		Filters: map[string]Filter{"due_date": {Range: &Range{Start: &start, End: &end}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, taskIDs(out), "tasks without a due date never match a range")
}

func TestTasks_RangeBoundsInclusive(t *testing.T) {
	bound := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		testutil.NewTestTask("exact", testutil.WithID("t1"), testutil.WithDueDate(bound)),
	}

	out, err := testEngine().Tasks(tasks, Spec{
		Filters: map[string]Filter{"due_date": {Range: &Range{Start: &bound, End: &bound}}},
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestTasks_NumericRangeFilter(t *testing.T) {
	min := 2.0
	tasks := []domain.Task{
		testutil.NewTestTask("small", testutil.WithID("t1"), testutil.WithEstimatedHours(1)),
		testutil.NewTestTask("big", testutil.WithID("t2"), testutil.WithEstimatedHours(8)),
	}

	out, err := testEngine().Tasks(tasks, Spec{
		Filters: map[string]Filter{"estimated_hours": {Range: &Range{Min: &min}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, taskIDs(out))
}

func TestTasks_UnknownFilterField(t *testing.T) {
	_, err := testEngine().Tasks(nil, Spec{
		Filters: map[string]Filter{"flavor": {Equals: "vanilla"}},
	})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestTasks_UnknownSortKey(t *testing.T) {
	_, err := testEngine().Tasks(nil, Spec{Sort: SortKey("alphabetical")})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestTasks_BadSpecSurfacesOnEmptyInput(t *testing.T) {
	_, err := testEngine().Tasks([]domain.Task{}, Spec{
		Filters: map[string]Filter{"flavor": {Equals: "x"}},
	})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestTasks_FilterFormMismatch(t *testing.T) {
	_, err := testEngine().Tasks(nil, Spec{
		Filters: map[string]Filter{"status": {Has: "todo"}},
	})
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = testEngine().Tasks(nil, Spec{
		Filters: map[string]Filter{"due_date": {Equals: "2026-09-01"}},
	})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestTasks_GroupKeyRejected(t *testing.T) {
	_, err := testEngine().Tasks(nil, Spec{Group: GroupStatus})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestTasks_InputNeverMutated(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("z", testutil.WithID("t2"), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityUrgent)),
	}

	_, err := testEngine().Tasks(tasks, Spec{Sort: SortPriority})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, taskIDs(tasks), "caller's slice must keep its order")
}

func TestGroupTasks_StatusColumnsAlwaysPresent(t *testing.T) {
	groups, err := testEngine().GroupTasks(nil, Spec{Group: GroupStatus})
	require.NoError(t, err)

	require.Len(t, groups, 4)
	assert.Equal(t, "todo", groups[0].Key)
	assert.Equal(t, "in_progress", groups[1].Key)
	assert.Equal(t, "review", groups[2].Key)
	assert.Equal(t, "done", groups[3].Key)
	for _, g := range groups {
		assert.Empty(t, g.Tasks)
	}
}

func TestGroupTasks_BacklogAndTodoShareColumn(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithStatus(domain.TaskBacklog)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithStatus(domain.TaskTodo)),
		testutil.NewTestTask("c", testutil.WithID("t3"), testutil.WithStatus(domain.TaskReview)),
	}

	groups, err := testEngine().GroupTasks(tasks, Spec{Group: GroupStatus})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, taskIDs(groups[0].Tasks))
	assert.Equal(t, []string{"t3"}, taskIDs(groups[2].Tasks))
}

func TestGroupTasks_PriorityGroupsUrgentFirst(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithPriority(domain.PriorityUrgent)),
	}

	groups, err := testEngine().GroupTasks(tasks, Spec{Group: GroupPriority})
	require.NoError(t, err)

	require.Len(t, groups, 4)
	assert.Equal(t, "urgent", groups[0].Key)
	assert.Equal(t, []string{"t2"}, taskIDs(groups[0].Tasks))
	assert.Equal(t, "low", groups[3].Key)
	assert.Empty(t, groups[1].Tasks)
	assert.Empty(t, groups[2].Tasks)
}

func TestGroupTasks_SortAppliesWithinGroups(t *testing.T) {
	early := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		testutil.NewTestTask("late", testutil.WithID("t1"),
			testutil.WithStatus(domain.TaskTodo), testutil.WithDueDate(late)),
		testutil.NewTestTask("early", testutil.WithID("t2"),
			testutil.WithStatus(domain.TaskTodo), testutil.WithDueDate(early)),
	}

	groups, err := testEngine().GroupTasks(tasks, Spec{Group: GroupStatus, Sort: SortDueDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, taskIDs(groups[0].Tasks))
}

func TestGroupTasks_MissingGroupKey(t *testing.T) {
	_, err := testEngine().GroupTasks(nil, Spec{})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestGroupTasks_UnknownGroupKey(t *testing.T) {
	_, err := testEngine().GroupTasks(nil, Spec{Group: GroupKey("assignee")})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestGroupTasks_UnionEqualsReducedInput(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithStatus(domain.TaskBacklog)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithStatus(domain.TaskInProgress)),
		testutil.NewTestTask("c", testutil.WithID("t3"), testutil.WithStatus(domain.TaskReview)),
		testutil.NewTestTask("d", testutil.WithID("t4"), testutil.WithStatus(domain.TaskDone)),
		testutil.NewTestTask("e", testutil.WithID("t5"), testutil.WithStatus(domain.TaskTodo)),
	}

	flat, err := testEngine().Tasks(tasks, Spec{})
	require.NoError(t, err)
	groups, err := testEngine().GroupTasks(tasks, Spec{Group: GroupStatus})
	require.NoError(t, err)

	var union []string
	for _, g := range groups {
		union = append(union, taskIDs(g.Tasks)...)
	}
	assert.ElementsMatch(t, taskIDs(flat), union, "no task dropped or duplicated by grouping")
}

func TestGroupTasks_UnknownPriorityLandsInLowGroup(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityUrgent)),
		testutil.NewTestTask("b", testutil.WithID("t2"), testutil.WithPriority(domain.Priority("blocker"))),
	}

	flat, err := testEngine().Tasks(tasks, Spec{})
	require.NoError(t, err)
	groups, err := testEngine().GroupTasks(tasks, Spec{Group: GroupPriority})
	require.NoError(t, err)

	require.Len(t, groups, 4)
	assert.Equal(t, "low", groups[3].Key)
	assert.Equal(t, []string{"t2"}, taskIDs(groups[3].Tasks))

	var union []string
	for _, g := range groups {
		union = append(union, taskIDs(g.Tasks)...)
	}
	assert.ElementsMatch(t, taskIDs(flat), union, "no task dropped or duplicated by grouping")
}

func TestTasks_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", testutil.WithID("t3"), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("b", testutil.WithID("t1"), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("c", testutil.WithID("t2"), testutil.WithPriority(domain.PriorityHigh)),
	}

	first, err := testEngine().Tasks(tasks, Spec{Sort: SortPriority})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := testEngine().Tasks(tasks, Spec{Sort: SortPriority})
		require.NoError(t, err)
		assert.Equal(t, taskIDs(first), taskIDs(again))
	}
}
