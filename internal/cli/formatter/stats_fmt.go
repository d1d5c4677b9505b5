package formatter

import (
	"fmt"
	"strings"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/stats"
)

// OverviewData bundles everything the stats overview renders.
type OverviewData struct {
	Tasks    []domain.Task
	Projects []domain.Project
	Members  []domain.TeamMember
}

// FormatOverview renders the dashboard: completion rate, status and priority
// breakdowns, average project progress, and the team wellness distribution.
func FormatOverview(d OverviewData) string {
	var b strings.Builder

	b.WriteString(Header("Tasks"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completion  %s\n", RenderProgress(stats.CompletionRate(d.Tasks), 20)))
	byStatus := stats.CountByStatus(d.Tasks)
	for _, s := range domain.AllTaskStatuses() {
		b.WriteString(fmt.Sprintf("%-12s %d\n", s, byStatus[s]))
	}
	byPriority := stats.CountByPriority(d.Tasks)
	for _, p := range domain.AllPriorities() {
		b.WriteString(fmt.Sprintf("%s %s\n", PriorityBadge(p), Dim(fmt.Sprintf("%d", byPriority[p]))))
	}

	b.WriteString("\n")
	b.WriteString(Header("Projects"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Average progress  %s\n", RenderProgress(stats.AverageProgress(d.Projects), 20)))
	byProjectStatus := stats.CountByProjectStatus(d.Projects)
	for _, s := range domain.AllProjectStatuses() {
		b.WriteString(fmt.Sprintf("%-12s %d\n", s, byProjectStatus[s]))
	}

	b.WriteString("\n")
	b.WriteString(Header("Team"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Average wellness  %s\n", RenderProgress(stats.TeamWellnessAverage(d.Members), 20)))
	for _, bucket := range stats.WellnessDistribution(d.Members) {
		label := WellnessStyle(bucket.Status).Render(string(bucket.Status))
		b.WriteString(fmt.Sprintf("%s %s\n", label, Dim(fmt.Sprintf("%d", bucket.Count))))
	}
	if attention := stats.MembersNeedingAttention(d.Members); len(attention) > 0 {
		names := make([]string, 0, len(attention))
		for _, m := range attention {
			names = append(names, m.Name)
		}
		b.WriteString(StyleRed.Render("Needs attention: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
