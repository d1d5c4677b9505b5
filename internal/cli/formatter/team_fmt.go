package formatter

import (
	"fmt"
	"strings"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/service"
)

// FormatMemberList renders a team table: id, initials, name, role, wellness.
func FormatMemberList(members []domain.TeamMember) string {
	headers := []string{"ID", "", "Name", "Role", "Wellness", "Active"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		active := StyleGreen.Render("yes")
		if !m.IsActive {
			active = StyleDim.Render("no")
		}
		rows = append(rows, []string{
			TruncID(m.ID),
			StylePurple.Render(m.Initials()),
			m.Name,
			RoleBadge(m.Role),
			WellnessPill(m.Wellness),
			active,
		})
	}
	return RenderTable(headers, rows)
}

// FormatWellnessDetail renders one member's wellness snapshot with a score bar.
func FormatWellnessDetail(m *domain.TeamMember) string {
	var b strings.Builder
	b.WriteString(Header(m.Name))
	b.WriteString("\n")
	if m.Wellness == nil {
		b.WriteString(Dim("No wellness data recorded."))
		return b.String()
	}
	w := m.Wellness
	b.WriteString(fmt.Sprintf("Status  %s\n", WellnessPill(w)))
	b.WriteString(fmt.Sprintf("Score   %s\n", RenderProgress(w.Score(), 20)))
	b.WriteString(fmt.Sprintf("Steps   %d\n", w.StepsToday))
	b.WriteString(fmt.Sprintf("Sleep   %.1fh\n", w.SleepHoursLastNight))
	b.WriteString(fmt.Sprintf("Updated %s", HumanDate(w.LastUpdated)))
	return b.String()
}

// FormatWorkloads renders members ranked by open assigned tasks.
func FormatWorkloads(loads []service.MemberLoad) string {
	headers := []string{"Name", "Role", "Open Tasks"}
	rows := make([][]string, 0, len(loads))
	for _, l := range loads {
		count := fmt.Sprintf("%d", l.TaskCount)
		if l.TaskCount == 0 {
			count = StyleDim.Render("0")
		}
		rows = append(rows, []string{l.Member.Name, RoleBadge(l.Member.Role), count})
	}
	return RenderTable(headers, rows)
}
