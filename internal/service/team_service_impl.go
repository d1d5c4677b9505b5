package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/store"
	"github.com/google/uuid"
)

type teamService struct {
	team     *store.TeamStore
	tasks    *store.TaskStore
	projects *store.ProjectStore
	observer UseCaseObserver
}

func NewTeamService(team *store.TeamStore, tasks *store.TaskStore, projects *store.ProjectStore, observers ...UseCaseObserver) TeamService {
	return &teamService{
		team:     team,
		tasks:    tasks,
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *teamService) Create(ctx context.Context, in CreateMemberInput) (*domain.TeamMember, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleMember
	}
	color := in.AvatarColor
	if color == "" {
		color = domain.DefaultColor
	}
	member := domain.TeamMember{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Role:        role,
		AvatarColor: color,
		JoinDate:    time.Now().UTC(),
		IsActive:    true,
	}
	err := s.team.Add(ctx, member)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "team.create",
		Fields: map[string]any{"member_id": member.ID},
		Err:    err,
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *teamService) Get(id string) (*domain.TeamMember, error) {
	member, ok := s.team.Get(id)
	if !ok {
		return nil, fmt.Errorf("team member not found: %s", id)
	}
	return &member, nil
}

func (s *teamService) List() []domain.TeamMember {
	return s.team.All()
}

func (s *teamService) UpdateWellness(ctx context.Context, memberID string, steps int, sleepHours float64) error {
	if _, ok := s.team.Get(memberID); !ok {
		return fmt.Errorf("team member not found: %s", memberID)
	}
	err := s.team.UpdateWellness(ctx, memberID, domain.WellnessData{
		StepsToday:          steps,
		SleepHoursLastNight: sleepHours,
		LastUpdated:         time.Now().UTC(),
	})
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "team.update_wellness",
		Fields: map[string]any{"member_id": memberID},
		Err:    err,
	})
	return err
}

func (s *teamService) ToggleActive(ctx context.Context, memberID string) error {
	member, ok := s.team.Get(memberID)
	if !ok {
		return fmt.Errorf("team member not found: %s", memberID)
	}
	member.IsActive = !member.IsActive
	err := s.team.Update(ctx, member)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "team.toggle_active",
		Fields: map[string]any{"member_id": memberID, "active": member.IsActive},
		Err:    err,
	})
	return err
}

// Delete scrubs the member id from every task assignee list and project
// member list, then removes the member. All reference cleanup lives here so
// cascade rules stay in one place.
func (s *teamService) Delete(ctx context.Context, id string) error {
	if err := s.scrubMemberReferences(ctx, id); err != nil {
		return err
	}
	err := s.team.DeleteByID(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "team.delete",
		Fields: map[string]any{"member_id": id},
		Err:    err,
	})
	return err
}

func (s *teamService) scrubMemberReferences(ctx context.Context, memberID string) error {
	for _, task := range s.tasks.AssignedTo(memberID) {
		task.AssignedMemberIDs = slices.DeleteFunc(slices.Clone(task.AssignedMemberIDs), func(id string) bool {
			return id == memberID
		})
		if err := s.tasks.Update(ctx, task); err != nil {
			return fmt.Errorf("scrubbing member from task %s: %w", task.ID, err)
		}
	}
	for _, project := range s.projects.ForMember(memberID) {
		project.TeamMemberIDs = slices.DeleteFunc(slices.Clone(project.TeamMemberIDs), func(id string) bool {
			return id == memberID
		})
		if err := s.projects.Update(ctx, project); err != nil {
			return fmt.Errorf("scrubbing member from project %s: %w", project.ID, err)
		}
	}
	return nil
}

// Workload tallies the member's assigned tasks.
func (s *teamService) Workload(memberID string) Workload {
	var w Workload
	for _, task := range s.tasks.AssignedTo(memberID) {
		w.Total++
		if task.Status == domain.TaskCompleted {
			w.Completed++
		} else {
			w.Pending++
		}
	}
	return w
}

// MembersByWorkload ranks members by open assigned tasks, busiest first.
func (s *teamService) MembersByWorkload() []MemberLoad {
	members := s.team.All()
	loads := make([]MemberLoad, 0, len(members))
	for _, m := range members {
		loads = append(loads, MemberLoad{Member: m, TaskCount: s.Workload(m.ID).Pending})
	}
	sort.SliceStable(loads, func(i, j int) bool {
		return loads[i].TaskCount > loads[j].TaskCount
	})
	return loads
}
