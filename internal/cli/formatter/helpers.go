package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
)

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueDateStyled renders a due date with urgency coloring relative to now.
func DueDateStyled(due *time.Time, now time.Time) string {
	if due == nil {
		return StyleDim.Render("--")
	}
	text := RelativeDateFrom(*due, now)
	days := domain.DaysBetween(now, *due)
	switch {
	case due.Before(now):
		return StyleRed.Render(text)
	case days <= 3:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// PriorityBadge returns a colored priority label such as "▲ Urgent".
func PriorityBadge(p domain.TaskPriority) string {
	marker := "·"
	if p >= domain.PriorityHigh {
		marker = "▲"
	}
	return PriorityStyle(p).Render(marker + " " + p.Title())
}

// TaskStatusPill returns a colored status indicator for task status.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskTodo:
		return StyleBlue.Render("○ To Do")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskReview:
		return StyleYellow.Render("◐ Review")
	case domain.TaskCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ProjectStatusPill returns a colored status indicator for project status.
func ProjectStatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectPlanning:
		return StyleBlue.Render("◌ Planning")
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectOnHold:
		return StyleYellow.Render("○ On Hold")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// RoleBadge returns a purple-styled role label.
func RoleBadge(role domain.MemberRole) string {
	return StylePurple.Render(string(role))
}

// WellnessPill returns a colored wellness indicator, or a dim placeholder
// when there is no wellness data yet.
func WellnessPill(w *domain.WellnessData) string {
	if w == nil {
		return StyleDim.Render("no data")
	}
	status := w.Status()
	return WellnessStyle(status).Render(fmt.Sprintf("%s (%.0f%%)", status, w.Score()*100))
}
