package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/store"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    *store.TaskStore
	observer UseCaseObserver
}

func NewTaskService(tasks *store.TaskStore, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	task := domain.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      domain.TaskTodo,
		DueDate:     in.DueDate,
		ProjectID:   in.ProjectID,
		CreatedDate: time.Now().UTC(),
		Tags:        in.Tags,
	}
	err := s.tasks.Add(ctx, task)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "task.create",
		Fields: map[string]any{"task_id": task.ID},
		Err:    err,
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskService) Get(id string) (*domain.Task, error) {
	task, ok := s.tasks.Get(id)
	if !ok {
		return nil, fmt.Errorf("task not found: %s", id)
	}
	return &task, nil
}

func (s *taskService) List() []domain.Task {
	return s.tasks.All()
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	task, ok := s.tasks.Get(id)
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}
	task.SetStatus(status, time.Now().UTC())
	err := s.tasks.Update(ctx, task)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "task.set_status",
		Fields: map[string]any{"task_id": id, "status": string(status)},
		Err:    err,
	})
	return err
}

func (s *taskService) Assign(ctx context.Context, id string, memberIDs []string) error {
	task, ok := s.tasks.Get(id)
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}
	task.AssignedMemberIDs = memberIDs
	err := s.tasks.Update(ctx, task)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "task.assign",
		Fields: map[string]any{"task_id": id, "assignees": len(memberIDs)},
		Err:    err,
	})
	return err
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	err := s.tasks.DeleteByID(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:   "task.delete",
		Fields: map[string]any{"task_id": id},
		Err:    err,
	})
	return err
}

func (s *taskService) Overdue(now time.Time) []domain.Task {
	return s.tasks.Overdue(now)
}

func (s *taskService) SortedByUrgency(now time.Time) []domain.Task {
	return s.tasks.SortedByUrgency(now)
}
