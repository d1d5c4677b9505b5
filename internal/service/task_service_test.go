package service

import (
	"testing"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	due := testNow.AddDate(0, 0, 7)
	task, err := svc.Create(ctx, CreateTaskInput{
		Title:       "Ship release",
		Description: "cut and tag",
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
		ProjectID:   "p1",
		Tags:        []string{"release"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskTodo, task.Status)
	assert.Nil(t, task.CompletedDate)
	assert.False(t, task.CreatedDate.IsZero())

	got, err := svc.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ship release", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestTaskService_SetStatus_CompletedDateInvariant(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	task, err := svc.Create(ctx, CreateTaskInput{Title: "Invariant"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, task.ID, domain.TaskCompleted))
	got, err := svc.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, got.Status)
	require.NotNil(t, got.CompletedDate)

	require.NoError(t, svc.SetStatus(ctx, task.ID, domain.TaskInProgress))
	got, err = svc.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
	assert.Nil(t, got.CompletedDate, "leaving Completed clears the completion date")
}

func TestTaskService_SetStatus_NotFound(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	err := svc.SetStatus(ctx, "nope", domain.TaskCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTaskService_Assign(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	task, err := svc.Create(ctx, CreateTaskInput{Title: "Shared"})
	require.NoError(t, err)

	require.NoError(t, svc.Assign(ctx, task.ID, []string{"m1", "m2"}))
	got, err := svc.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, got.AssignedMemberIDs)
}

func TestTaskService_Delete(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	task, err := svc.Create(ctx, CreateTaskInput{Title: "Short-lived"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, task.ID))

	_, err = svc.Get(task.ID)
	assert.Error(t, err)
}

func TestTaskService_QueryPassthroughs(t *testing.T) {
	stores, ctx := newTestStores(t)
	svc := NewTaskService(stores.tasks)

	require.NoError(t, stores.tasks.Add(ctx, testutil.NewTestTask("Overdue",
		testutil.WithDueDate(testNow.AddDate(0, 0, -1)))))
	require.NoError(t, stores.tasks.Add(ctx, testutil.NewTestTask("High",
		testutil.WithPriority(domain.PriorityHigh))))

	assert.Len(t, svc.List(), 2)
	assert.Len(t, svc.Overdue(testNow), 1)

	sorted := svc.SortedByUrgency(testNow)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Overdue", sorted[0].Title, "medium overdue (1.0) outranks high without due date (0.75)")
}
