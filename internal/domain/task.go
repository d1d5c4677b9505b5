package domain

import (
	"fmt"
	"time"
)

// Task is a single unit of work. ProjectID and AssignedMemberIDs are plain
// identifier links with no referential integrity at this level; cleanup on
// delete is the service layer's job.
type Task struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Priority          TaskPriority `json:"priority"`
	Status            TaskStatus   `json:"status"`
	DueDate           *time.Time   `json:"due_date,omitempty"`
	ProjectID         string       `json:"project_id,omitempty"`
	AssignedMemberIDs []string     `json:"assigned_member_ids"`
	CreatedDate       time.Time    `json:"created_date"`
	CompletedDate     *time.Time   `json:"completed_date,omitempty"`
	Tags              []string     `json:"tags"`
}

// IsOverdue reports whether the task's due date has passed and the task is
// not yet completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != TaskCompleted
}

// UrgencyScore derives a [0,1] urgency from priority and due-date proximity:
// the priority heatmap value, plus 0.5 when overdue, or 0.3 when due within
// three days (inclusive). Clamped to 1.0.
func (t *Task) UrgencyScore(now time.Time) float64 {
	score := t.Priority.HeatmapValue()

	if t.DueDate != nil {
		if t.DueDate.Before(now) && t.Status != TaskCompleted {
			score += 0.5
		} else if days := DaysBetween(now, *t.DueDate); days >= 0 && days <= 3 {
			score += 0.3
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// IsAssignedTo reports whether memberID appears in the assignee list.
func (t *Task) IsAssignedTo(memberID string) bool {
	for _, id := range t.AssignedMemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// SetStatus moves the task to the given status, keeping CompletedDate in sync:
// it is set exactly when the task enters Completed and cleared when it leaves.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskCompleted {
		done := now
		t.CompletedDate = &done
	} else {
		t.CompletedDate = nil
	}
}

// Reopen returns a completed task to the todo column.
func (t *Task) Reopen() error {
	if t.Status != TaskCompleted {
		return fmt.Errorf("task is not completed (status %q)", t.Status)
	}
	t.Status = TaskTodo
	t.CompletedDate = nil
	return nil
}
