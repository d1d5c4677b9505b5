package service

import (
	"context"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
)

// CreateTaskInput carries the caller-supplied fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    domain.TaskPriority
	DueDate     *time.Time
	ProjectID   string
	Tags        []string
}

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	Get(id string) (*domain.Task, error)
	List() []domain.Task
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Assign(ctx context.Context, id string, memberIDs []string) error
	Delete(ctx context.Context, id string) error
	Overdue(now time.Time) []domain.Task
	SortedByUrgency(now time.Time) []domain.Task
}

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Color       string
}

// TimelineEntry is one project's normalized slot on the shared timeline:
// Position and Width are fractions of the full date span across all projects.
type TimelineEntry struct {
	Project  domain.Project
	Position float64
	Width    float64
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(id string) (*domain.Project, error)
	List() []domain.Project
	Update(ctx context.Context, p domain.Project) error
	// RecomputeProgress rewrites the stored progress from the project's tasks.
	// Progress is not kept in sync automatically; call this after any task
	// mutation that could affect it.
	RecomputeProgress(ctx context.Context, projectID string) error
	// Delete removes the project and every task belonging to it.
	Delete(ctx context.Context, id string) error
	Timeline() []TimelineEntry
	AddMilestone(ctx context.Context, projectID, title string, due time.Time) (*domain.Milestone, error)
	ToggleMilestone(ctx context.Context, projectID, milestoneID string) error
}

// CreateMemberInput carries the caller-supplied fields for a new team member.
type CreateMemberInput struct {
	Name        string
	Email       string
	Role        domain.MemberRole
	AvatarColor string
}

// Workload is the per-member task tally.
type Workload struct {
	Total     int
	Completed int
	Pending   int
}

// MemberLoad pairs a member with their count of open assigned tasks.
type MemberLoad struct {
	Member    domain.TeamMember
	TaskCount int
}

type TeamService interface {
	Create(ctx context.Context, in CreateMemberInput) (*domain.TeamMember, error)
	Get(id string) (*domain.TeamMember, error)
	List() []domain.TeamMember
	UpdateWellness(ctx context.Context, memberID string, steps int, sleepHours float64) error
	ToggleActive(ctx context.Context, memberID string) error
	// Delete removes the member and scrubs the id from task assignee lists
	// and project member lists in one pass.
	Delete(ctx context.Context, id string) error
	Workload(memberID string) Workload
	MembersByWorkload() []MemberLoad
}
