package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestHeatmapValue_IncreasesWithPriority(t *testing.T) {
	var prev float64
	for _, p := range AllPriorities() {
		v := p.HeatmapValue()
		assert.Greater(t, v, prev, "priority=%s", p.Title())
		prev = v
	}
	assert.Equal(t, 0.25, PriorityLow.HeatmapValue())
	assert.Equal(t, 0.5, PriorityMedium.HeatmapValue())
	assert.Equal(t, 0.75, PriorityHigh.HeatmapValue())
	assert.Equal(t, 1.0, PriorityUrgent.HeatmapValue())
}

func TestUrgencyScore_NoDueDate(t *testing.T) {
	task := &Task{Priority: PriorityMedium, Status: TaskTodo}
	assert.Equal(t, 0.5, task.UrgencyScore(testNow))
}

func TestUrgencyScore_OverdueClampsToOne(t *testing.T) {
	task := &Task{
		Priority: PriorityUrgent,
		Status:   TaskTodo,
		DueDate:  datePtr(testNow.AddDate(0, 0, -10)),
	}
	assert.Equal(t, 1.0, task.UrgencyScore(testNow))
}

func TestUrgencyScore_DueSoonBonus(t *testing.T) {
	task := &Task{
		Priority: PriorityLow,
		Status:   TaskTodo,
		DueDate:  datePtr(testNow.AddDate(0, 0, 3)),
	}
	assert.InDelta(t, 0.55, task.UrgencyScore(testNow), 1e-9, "low + due in exactly 3 days")
}

func TestUrgencyScore_DueBeyondThreeDays(t *testing.T) {
	task := &Task{
		Priority: PriorityLow,
		Status:   TaskTodo,
		DueDate:  datePtr(testNow.AddDate(0, 0, 10)),
	}
	assert.Equal(t, 0.25, task.UrgencyScore(testNow))
}

func TestUrgencyScore_CompletedGetsNoOverdueBonus(t *testing.T) {
	task := &Task{
		Priority: PriorityLow,
		Status:   TaskCompleted,
		DueDate:  datePtr(testNow.AddDate(0, 0, -5)),
	}
	assert.Equal(t, 0.25, task.UrgencyScore(testNow))
}

func TestUrgencyScore_OverdueBonus(t *testing.T) {
	task := &Task{
		Priority: PriorityLow,
		Status:   TaskInProgress,
		DueDate:  datePtr(testNow.Add(-time.Hour)),
	}
	assert.InDelta(t, 0.75, task.UrgencyScore(testNow), 1e-9)
}

func TestIsOverdue(t *testing.T) {
	cases := []struct {
		name    string
		due     *time.Time
		status  TaskStatus
		overdue bool
	}{
		{"no due date", nil, TaskTodo, false},
		{"future due", datePtr(testNow.AddDate(0, 0, 2)), TaskTodo, false},
		{"past due, open", datePtr(testNow.AddDate(0, 0, -2)), TaskInProgress, true},
		{"past due, completed", datePtr(testNow.AddDate(0, 0, -2)), TaskCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &Task{DueDate: tc.due, Status: tc.status}
			assert.Equal(t, tc.overdue, task.IsOverdue(testNow))
		})
	}
}

func TestSetStatus_CompletedSetsCompletedDate(t *testing.T) {
	task := &Task{Status: TaskInProgress}
	task.SetStatus(TaskCompleted, testNow)
	assert.Equal(t, TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedDate)
	assert.Equal(t, testNow, *task.CompletedDate)
}

func TestSetStatus_LeavingCompletedClearsCompletedDate(t *testing.T) {
	task := &Task{Status: TaskTodo}
	task.SetStatus(TaskCompleted, testNow)
	task.SetStatus(TaskReview, testNow.Add(time.Hour))
	assert.Equal(t, TaskReview, task.Status)
	assert.Nil(t, task.CompletedDate)
}

func TestReopen(t *testing.T) {
	task := &Task{Status: TaskCompleted, CompletedDate: datePtr(testNow)}
	require.NoError(t, task.Reopen())
	assert.Equal(t, TaskTodo, task.Status)
	assert.Nil(t, task.CompletedDate)
}

func TestReopen_NotCompleted(t *testing.T) {
	task := &Task{Status: TaskTodo}
	err := task.Reopen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not completed")
}

func TestIsAssignedTo(t *testing.T) {
	task := &Task{AssignedMemberIDs: []string{"a", "b"}}
	assert.True(t, task.IsAssignedTo("b"))
	assert.False(t, task.IsAssignedTo("c"))
}
