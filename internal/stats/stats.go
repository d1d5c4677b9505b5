// Package stats computes derived metrics over store snapshots. Everything
// here is a pure function: no caching, recomputed per call.
package stats

import (
	"sort"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
)

// CompletionRate returns the fraction of tasks completed, 0 for an empty set.
func CompletionRate(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var completed int
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}

// CountByStatus counts tasks per status. Every status appears in the result,
// zero counts included.
func CountByStatus(tasks []domain.Task) map[domain.TaskStatus]int {
	counts := make(map[domain.TaskStatus]int, len(domain.AllTaskStatuses()))
	for _, status := range domain.AllTaskStatuses() {
		counts[status] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// CountByPriority counts tasks per priority. Every priority appears in the
// result, zero counts included.
func CountByPriority(tasks []domain.Task) map[domain.TaskPriority]int {
	counts := make(map[domain.TaskPriority]int, len(domain.AllPriorities()))
	for _, priority := range domain.AllPriorities() {
		counts[priority] = 0
	}
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// GroupByStatus buckets tasks per status, preserving input order inside each
// bucket. Every status has an entry.
func GroupByStatus(tasks []domain.Task) map[domain.TaskStatus][]domain.Task {
	groups := make(map[domain.TaskStatus][]domain.Task, len(domain.AllTaskStatuses()))
	for _, status := range domain.AllTaskStatuses() {
		groups[status] = nil
	}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

// GroupByPriority buckets tasks per priority, preserving input order inside
// each bucket. Every priority has an entry.
func GroupByPriority(tasks []domain.Task) map[domain.TaskPriority][]domain.Task {
	groups := make(map[domain.TaskPriority][]domain.Task, len(domain.AllPriorities()))
	for _, priority := range domain.AllPriorities() {
		groups[priority] = nil
	}
	for _, t := range tasks {
		groups[t.Priority] = append(groups[t.Priority], t)
	}
	return groups
}

// TaskUrgency pairs a task with its computed urgency score.
type TaskUrgency struct {
	Task    domain.Task
	Urgency float64
}

// Heatmap returns the non-completed tasks with their urgency scores,
// most urgent first.
func Heatmap(tasks []domain.Task, now time.Time) []TaskUrgency {
	var out []TaskUrgency
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			continue
		}
		out = append(out, TaskUrgency{Task: t, Urgency: t.UrgencyScore(now)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency > out[j].Urgency
	})
	return out
}

// AverageProgress returns the mean stored progress across projects, 0 for an
// empty set.
func AverageProgress(projects []domain.Project) float64 {
	if len(projects) == 0 {
		return 0
	}
	var total float64
	for _, p := range projects {
		total += p.Progress
	}
	return total / float64(len(projects))
}

// CountByProjectStatus counts projects per status. Every status appears in
// the result, zero counts included.
func CountByProjectStatus(projects []domain.Project) map[domain.ProjectStatus]int {
	counts := make(map[domain.ProjectStatus]int, len(domain.AllProjectStatuses()))
	for _, status := range domain.AllProjectStatuses() {
		counts[status] = 0
	}
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

// TeamWellnessAverage returns the mean wellness score over members that have
// wellness data, 0 when none do.
func TeamWellnessAverage(members []domain.TeamMember) float64 {
	var total float64
	var n int
	for _, m := range members {
		if m.Wellness == nil {
			continue
		}
		total += m.Wellness.Score()
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// MembersNeedingAttention returns members whose wellness score is below 0.4.
// Members without wellness data are excluded.
func MembersNeedingAttention(members []domain.TeamMember) []domain.TeamMember {
	var out []domain.TeamMember
	for _, m := range members {
		if m.Wellness != nil && m.Wellness.Score() < 0.4 {
			out = append(out, m)
		}
	}
	return out
}

// CountByRole counts members per role. Every role appears in the result,
// zero counts included.
func CountByRole(members []domain.TeamMember) map[domain.MemberRole]int {
	counts := make(map[domain.MemberRole]int, len(domain.AllRoles()))
	for _, role := range domain.AllRoles() {
		counts[role] = 0
	}
	for _, m := range members {
		counts[m.Role]++
	}
	return counts
}

// WellnessBucket is one row of the wellness distribution.
type WellnessBucket struct {
	Status domain.WellnessStatus
	Count  int
}

// WellnessDistribution buckets members by wellness status, ordered best to
// worst. Members without wellness data are excluded.
func WellnessDistribution(members []domain.TeamMember) []WellnessBucket {
	counts := make(map[domain.WellnessStatus]int)
	for _, m := range members {
		if m.Wellness == nil {
			continue
		}
		counts[m.Wellness.Status()]++
	}
	buckets := make([]WellnessBucket, 0, len(domain.AllWellnessStatuses()))
	for _, status := range domain.AllWellnessStatuses() {
		buckets = append(buckets, WellnessBucket{Status: status, Count: counts[status]})
	}
	return buckets
}
