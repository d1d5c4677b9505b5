package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/stats"
)

// FormatTaskList renders a task table: id, title, status, priority, due date.
func FormatTaskList(tasks []domain.Task, now time.Time) string {
	headers := []string{"ID", "Title", "Status", "Priority", "Due"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Title,
			TaskStatusPill(t.Status),
			PriorityBadge(t.Priority),
			DueDateStyled(t.DueDate, now),
		})
	}
	return RenderTable(headers, rows)
}

// FormatHeatmap renders the urgency-ranked task list with score bars.
func FormatHeatmap(entries []stats.TaskUrgency) string {
	var b strings.Builder
	b.WriteString(Header("Urgency Heatmap"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No open tasks."))
		return b.String()
	}
	for _, e := range entries {
		score := UrgencyStyle(e.Urgency).Render(fmt.Sprintf("%.2f", e.Urgency))
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", score, TruncID(e.Task.ID), e.Task.Title))
	}
	return strings.TrimRight(b.String(), "\n")
}
