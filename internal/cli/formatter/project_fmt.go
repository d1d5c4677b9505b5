package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/service"
)

// FormatProjectList renders a project table: id, name, status, progress, dates.
func FormatProjectList(projects []domain.Project) string {
	headers := []string{"ID", "Name", "Status", "Progress", "Start", "End"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		end := StyleDim.Render("--")
		if p.EndDate != nil {
			end = HumanDate(*p.EndDate)
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Name,
			ProjectStatusPill(p.Status),
			RenderProgress(p.Progress, 10),
			HumanDate(p.StartDate),
			end,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTimeline renders all date-bounded projects as aligned span bars.
func FormatTimeline(entries []service.TimelineEntry, barWidth int) string {
	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No projects with an end date."))
		return b.String()
	}

	nameWidth := 0
	for _, e := range entries {
		if len(e.Project.Name) > nameWidth {
			nameWidth = len(e.Project.Name)
		}
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-*s  %s\n", nameWidth, e.Project.Name,
			RenderSpan(e.Position, e.Width, barWidth)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatMilestones renders a project's milestones with completion markers.
func FormatMilestones(p *domain.Project, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Milestones"))
	b.WriteString("\n")
	if len(p.Milestones) == 0 {
		b.WriteString(Dim("No milestones."))
		return b.String()
	}
	for _, m := range p.Milestones {
		marker := StyleDim.Render("○")
		if m.IsCompleted {
			marker = StyleGreen.Render("✔")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			marker, TruncID(m.ID), m.Title, DueDateStyled(&m.DueDate, now)))
	}
	return strings.TrimRight(b.String(), "\n")
}
