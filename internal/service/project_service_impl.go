package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/store"
	"github.com/google/uuid"
)

type projectService struct {
	projects *store.ProjectStore
	tasks    *store.TaskStore
	observer UseCaseObserver
}

func NewProjectService(projects *store.ProjectStore, tasks *store.TaskStore, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	color := in.Color
	if color == "" {
		color = domain.DefaultColor
	}
	start := in.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	project := domain.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.ProjectPlanning,
		StartDate:   start,
		EndDate:     in.EndDate,
		Color:       color,
	}
	err := s.projects.Add(ctx, project)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "project.create",
		Fields: map[string]any{"project_id": project.ID},
		Err:    err,
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *projectService) Get(id string) (*domain.Project, error) {
	project, ok := s.projects.Get(id)
	if !ok {
		return nil, fmt.Errorf("project not found: %s", id)
	}
	return &project, nil
}

func (s *projectService) List() []domain.Project {
	return s.projects.All()
}

func (s *projectService) Update(ctx context.Context, p domain.Project) error {
	err := s.projects.Update(ctx, p)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "project.update",
		Fields: map[string]any{"project_id": p.ID},
		Err:    err,
	})
	return err
}

// RecomputeProgress counts the project's tasks and writes completed/total
// back to the stored record, 0 when the project has no tasks.
func (s *projectService) RecomputeProgress(ctx context.Context, projectID string) error {
	project, ok := s.projects.Get(projectID)
	if !ok {
		return fmt.Errorf("project not found: %s", projectID)
	}

	tasks := s.tasks.ForProject(projectID)
	progress := 0.0
	if len(tasks) > 0 {
		var completed int
		for _, t := range tasks {
			if t.Status == domain.TaskCompleted {
				completed++
			}
		}
		progress = float64(completed) / float64(len(tasks))
	}

	project.Progress = progress
	err := s.projects.Update(ctx, project)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "project.recompute_progress",
		Fields: map[string]any{"project_id": projectID, "progress": progress},
		Err:    err,
	})
	return err
}

// Delete removes the project's tasks first, then the project itself.
func (s *projectService) Delete(ctx context.Context, id string) error {
	for _, task := range s.tasks.ForProject(id) {
		if err := s.tasks.Delete(ctx, task); err != nil {
			return fmt.Errorf("deleting project task %s: %w", task.ID, err)
		}
	}
	err := s.projects.DeleteByID(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "project.delete",
		Fields: map[string]any{"project_id": id},
		Err:    err,
	})
	return err
}

// Timeline lays projects out on a shared axis spanning the earliest start to
// the latest end date. Projects without an end date are excluded; a span of
// zero days is treated as one to avoid dividing by zero.
func (s *projectService) Timeline() []TimelineEntry {
	projects := s.projects.All()
	if len(projects) == 0 {
		return nil
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].StartDate.Before(projects[j].StartDate)
	})

	earliest := projects[0].StartDate
	var latest *time.Time
	for _, p := range projects {
		if p.EndDate != nil && (latest == nil || p.EndDate.After(*latest)) {
			latest = p.EndDate
		}
	}
	if latest == nil {
		return nil
	}

	totalDays := domain.DaysBetween(earliest, *latest)
	if totalDays < 1 {
		totalDays = 1
	}

	var entries []TimelineEntry
	for _, p := range projects {
		if p.EndDate == nil {
			continue
		}
		entries = append(entries, TimelineEntry{
			Project:  p,
			Position: float64(domain.DaysBetween(earliest, p.StartDate)) / float64(totalDays),
			Width:    float64(domain.DaysBetween(p.StartDate, *p.EndDate)) / float64(totalDays),
		})
	}
	return entries
}

func (s *projectService) AddMilestone(ctx context.Context, projectID, title string, due time.Time) (*domain.Milestone, error) {
	if _, ok := s.projects.Get(projectID); !ok {
		return nil, fmt.Errorf("project not found: %s", projectID)
	}
	m := domain.Milestone{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: due,
	}
	err := s.projects.AddMilestone(ctx, projectID, m)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "project.add_milestone",
		Fields: map[string]any{"project_id": projectID, "milestone_id": m.ID},
		Err:    err,
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *projectService) ToggleMilestone(ctx context.Context, projectID, milestoneID string) error {
	project, ok := s.projects.Get(projectID)
	if !ok {
		return fmt.Errorf("project not found: %s", projectID)
	}
	for _, m := range project.Milestones {
		if m.ID == milestoneID {
			m.IsCompleted = !m.IsCompleted
			err := s.projects.UpdateMilestone(ctx, projectID, m)
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:   "project.toggle_milestone",
				Fields: map[string]any{"project_id": projectID, "milestone_id": milestoneID},
				Err:    err,
			})
			return err
		}
	}
	return fmt.Errorf("milestone not found: %s", milestoneID)
}
