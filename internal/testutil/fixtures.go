package testutil

import (
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/google/uuid"
)

// Task options

type TaskOption func(*domain.Task)

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
		if s == domain.TaskCompleted {
			done := t.CreatedDate
			t.CompletedDate = &done
		}
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithProjectID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = id
	}
}

func WithAssignees(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedMemberIDs = ids
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Priority:    domain.PriorityMedium,
		Status:      domain.TaskTodo,
		CreatedDate: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Project options

type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithEndDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.EndDate = &d
	}
}

func WithMembers(ids ...string) ProjectOption {
	return func(p *domain.Project) {
		p.TeamMemberIDs = ids
	}
}

func WithProgress(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = v
	}
}

func WithMilestones(ms ...domain.Milestone) ProjectOption {
	return func(p *domain.Project) {
		p.Milestones = ms
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectPlanning,
		StartDate: time.Now().UTC(),
		Color:     domain.DefaultColor,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func NewTestMilestone(title string, due time.Time) domain.Milestone {
	return domain.Milestone{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: due,
	}
}

// TeamMember options

type MemberOption func(*domain.TeamMember)

func WithRole(r domain.MemberRole) MemberOption {
	return func(m *domain.TeamMember) {
		m.Role = r
	}
}

func WithWellness(steps int, sleep float64) MemberOption {
	return func(m *domain.TeamMember) {
		m.Wellness = &domain.WellnessData{
			StepsToday:          steps,
			SleepHoursLastNight: sleep,
			LastUpdated:         time.Now().UTC(),
		}
	}
}

func Inactive() MemberOption {
	return func(m *domain.TeamMember) {
		m.IsActive = false
	}
}

func NewTestMember(name string, opts ...MemberOption) domain.TeamMember {
	m := domain.TeamMember{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       "test@example.com",
		Role:        domain.RoleMember,
		AvatarColor: domain.DefaultColor,
		JoinDate:    time.Now().UTC(),
		IsActive:    true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
