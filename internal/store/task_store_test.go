package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTaskStore(t *testing.T) (*TaskStore, context.Context) {
	t.Helper()
	kvs := testutil.NewTestKV(t)
	s := NewTaskStore(kvs)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	return s, ctx
}

func TestTaskStore_AddAndGet(t *testing.T) {
	s, ctx := newTaskStore(t)

	task := testutil.NewTestTask("Write report")
	require.NoError(t, s.Add(ctx, task))

	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, 1, s.Count())
}

func TestTaskStore_Update(t *testing.T) {
	s, ctx := newTaskStore(t)

	task := testutil.NewTestTask("Draft")
	require.NoError(t, s.Add(ctx, task))

	task.Title = "Final"
	task.Status = domain.TaskInProgress
	require.NoError(t, s.Update(ctx, task))

	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestTaskStore_Update_UnknownIDIsNoop(t *testing.T) {
	s, ctx := newTaskStore(t)

	require.NoError(t, s.Add(ctx, testutil.NewTestTask("Existing")))

	ghost := testutil.NewTestTask("Ghost")
	require.NoError(t, s.Update(ctx, ghost))

	assert.Equal(t, 1, s.Count())
	_, ok := s.Get(ghost.ID)
	assert.False(t, ok)
}

func TestTaskStore_Delete(t *testing.T) {
	s, ctx := newTaskStore(t)

	task := testutil.NewTestTask("Doomed")
	require.NoError(t, s.Add(ctx, task))
	require.NoError(t, s.Delete(ctx, task))

	assert.Equal(t, 0, s.Count())

	// Deleting a missing id is not an error.
	require.NoError(t, s.DeleteByID(ctx, "missing"))
}

func TestTaskStore_RoundTrip(t *testing.T) {
	kvs := testutil.NewTestKV(t)
	ctx := context.Background()

	s := NewTaskStore(kvs)
	require.NoError(t, s.Load(ctx))

	due := testNow.AddDate(0, 0, 5)
	tasks := []domain.Task{
		testutil.NewTestTask("Full",
			testutil.WithPriority(domain.PriorityUrgent),
			testutil.WithDueDate(due),
			testutil.WithProjectID("proj-1"),
			testutil.WithAssignees("m1", "m2"),
			testutil.WithTags("alpha", "beta"),
		),
		testutil.NewTestTask("Done", testutil.WithTaskStatus(domain.TaskCompleted)),
		testutil.NewTestTask("Bare"),
	}
	for _, task := range tasks {
		require.NoError(t, s.Add(ctx, task))
	}

	// A fresh store over the same backend decodes an equal collection.
	reloaded := NewTaskStore(kvs)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, s.All(), reloaded.All())
}

func TestTaskStore_Load_MissingKey(t *testing.T) {
	s, _ := newTaskStore(t)
	assert.Empty(t, s.All())
}

func TestTaskStore_Load_MalformedBlobResetsToEmpty(t *testing.T) {
	kvs := testutil.NewTestKV(t)
	ctx := context.Background()
	require.NoError(t, kvs.Put(ctx, tasksKey, []byte("{not json")))

	s := NewTaskStore(kvs)
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.All())
}

func TestTaskStore_Load_WrongShapeResetsToEmpty(t *testing.T) {
	kvs := testutil.NewTestKV(t)
	ctx := context.Background()
	require.NoError(t, kvs.Put(ctx, tasksKey, []byte(`{"unexpected":"object"}`)))

	s := NewTaskStore(kvs)
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.All())
}

func TestTaskStore_Filters(t *testing.T) {
	s, ctx := newTaskStore(t)

	inProject := testutil.NewTestTask("In project", testutil.WithProjectID("p1"))
	assigned := testutil.NewTestTask("Assigned", testutil.WithAssignees("m1"))
	overdue := testutil.NewTestTask("Overdue", testutil.WithDueDate(testNow.AddDate(0, 0, -2)))
	done := testutil.NewTestTask("Done", testutil.WithTaskStatus(domain.TaskCompleted))

	for _, task := range []domain.Task{inProject, assigned, overdue, done} {
		require.NoError(t, s.Add(ctx, task))
	}

	require.Len(t, s.ForProject("p1"), 1)
	assert.Equal(t, inProject.ID, s.ForProject("p1")[0].ID)

	require.Len(t, s.AssignedTo("m1"), 1)
	assert.Equal(t, assigned.ID, s.AssignedTo("m1")[0].ID)

	require.Len(t, s.WithStatus(domain.TaskCompleted), 1)
	assert.Equal(t, done.ID, s.WithStatus(domain.TaskCompleted)[0].ID)

	require.Len(t, s.Overdue(testNow), 1)
	assert.Equal(t, overdue.ID, s.Overdue(testNow)[0].ID)
}

func TestTaskStore_Upcoming(t *testing.T) {
	s, ctx := newTaskStore(t)

	soon := testutil.NewTestTask("Soon", testutil.WithDueDate(testNow.AddDate(0, 0, 2)))
	far := testutil.NewTestTask("Far", testutil.WithDueDate(testNow.AddDate(0, 0, 30)))
	past := testutil.NewTestTask("Past", testutil.WithDueDate(testNow.AddDate(0, 0, -1)))
	doneSoon := testutil.NewTestTask("Done soon",
		testutil.WithDueDate(testNow.AddDate(0, 0, 2)),
		testutil.WithTaskStatus(domain.TaskCompleted))

	for _, task := range []domain.Task{soon, far, past, doneSoon} {
		require.NoError(t, s.Add(ctx, task))
	}

	upcoming := s.Upcoming(testNow, 7)
	require.Len(t, upcoming, 1)
	assert.Equal(t, soon.ID, upcoming[0].ID)
}

func TestTaskStore_SortedByUrgency(t *testing.T) {
	s, ctx := newTaskStore(t)

	low := testutil.NewTestTask("Low", testutil.WithPriority(domain.PriorityLow))
	urgent := testutil.NewTestTask("Urgent", testutil.WithPriority(domain.PriorityUrgent))
	medium := testutil.NewTestTask("Medium", testutil.WithPriority(domain.PriorityMedium))

	for _, task := range []domain.Task{low, urgent, medium} {
		require.NoError(t, s.Add(ctx, task))
	}

	sorted := s.SortedByUrgency(testNow)
	require.Len(t, sorted, 3)
	assert.Equal(t, urgent.ID, sorted[0].ID)
	assert.Equal(t, medium.ID, sorted[1].ID)
	assert.Equal(t, low.ID, sorted[2].ID)
}

func TestTaskStore_SubscribeNotifiesOnMutation(t *testing.T) {
	s, ctx := newTaskStore(t)

	var calls int
	s.Subscribe(func() { calls++ })

	task := testutil.NewTestTask("Watched")
	require.NoError(t, s.Add(ctx, task))
	require.NoError(t, s.Update(ctx, task))
	require.NoError(t, s.Delete(ctx, task))

	assert.Equal(t, 3, calls)
}

func TestTaskStore_Reset(t *testing.T) {
	s, ctx := newTaskStore(t)

	require.NoError(t, s.Add(ctx, testutil.NewTestTask("A")))
	require.NoError(t, s.Add(ctx, testutil.NewTestTask("B")))
	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, 0, s.Count())

	// Reset state survives a reload.
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, 0, s.Count())
}
