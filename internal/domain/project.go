package domain

import "time"

// DefaultColor is the accent color given to new projects and member avatars.
const DefaultColor = "#FE284A"

// Milestone is a dated checkpoint inside a project. Ordering within the
// project's milestone list is significant and preserved as stored.
type Milestone struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Milestones    []Milestone   `json:"milestones"`
	TeamMemberIDs []string      `json:"team_member_ids"`
	Color         string        `json:"color"`

	// Progress is stored, not derived: it is recomputed from the project's
	// tasks by the project service and written back here.
	Progress float64 `json:"progress"`
}

// CompletionPercentage returns the stored progress as a whole percentage.
func (p *Project) CompletionPercentage() int {
	return int(p.Progress * 100)
}

// IsOverdue reports whether the project's end date has passed without the
// project being completed. Open-ended projects are never overdue.
func (p *Project) IsOverdue(now time.Time) bool {
	if p.EndDate == nil {
		return false
	}
	return p.EndDate.Before(now) && p.Status != ProjectCompleted
}

// Duration returns the project's span in whole days, 0 when open-ended.
func (p *Project) Duration() int {
	if p.EndDate == nil {
		return 0
	}
	return DaysBetween(p.StartDate, *p.EndDate)
}

// HasMember reports whether memberID appears in the project's member list.
func (p *Project) HasMember(memberID string) bool {
	for _, id := range p.TeamMemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
