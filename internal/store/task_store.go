// Package store holds the three collection stores. Each store owns its
// collection exclusively: mutations replace the in-memory slice, write the
// whole encoded collection back to the key-value store, then notify
// subscribers. Reads serve consistent snapshots under a read lock.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/kv"
)

const tasksKey = "tasksphere/tasks"

// TaskStore owns the task collection.
type TaskStore struct {
	mu        sync.RWMutex
	kv        *kv.Store
	tasks     []domain.Task
	listeners []func()
}

// NewTaskStore creates a TaskStore backed by the given key-value store.
// Call Load before use.
func NewTaskStore(kvs *kv.Store) *TaskStore {
	return &TaskStore{kv: kvs}
}

// Load reads the full collection. A missing key or an undecodable blob both
// reset the store to an empty collection; only I/O failure is an error.
func (s *TaskStore) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, tasksKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			s.mu.Lock()
			s.tasks = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("loading tasks: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		tasks = nil
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Subscribe registers fn to run after every successful mutation.
func (s *TaskStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *TaskStore) notify() {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// persistLocked encodes next and writes it back; the in-memory collection is
// replaced only after the write succeeds. Caller must hold the write lock.
func (s *TaskStore) persistLocked(ctx context.Context, next []domain.Task) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	if err := s.kv.Put(ctx, tasksKey, data); err != nil {
		return fmt.Errorf("persisting tasks: %w", err)
	}
	s.tasks = next
	return nil
}

// Add appends the task and persists.
func (s *TaskStore) Add(ctx context.Context, t domain.Task) error {
	s.mu.Lock()
	err := s.persistLocked(ctx, append(slices.Clone(s.tasks), t))
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Update replaces the task with a matching id and persists. Unknown ids are
// a silent no-op.
func (s *TaskStore) Update(ctx context.Context, t domain.Task) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.tasks, func(x domain.Task) bool { return x.ID == t.ID })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	next := slices.Clone(s.tasks)
	next[idx] = t
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Delete removes the task and persists.
func (s *TaskStore) Delete(ctx context.Context, t domain.Task) error {
	return s.DeleteByID(ctx, t.ID)
}

// DeleteByID removes the task with the given id and persists.
func (s *TaskStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.tasks), func(x domain.Task) bool { return x.ID == id })
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Reset clears the collection and persists the empty state.
func (s *TaskStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	err := s.persistLocked(ctx, nil)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// All returns a snapshot of the collection in insertion order.
func (s *TaskStore) All() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Count returns the collection size.
func (s *TaskStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *TaskStore) filter(keep func(domain.Task) bool) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// ForProject returns tasks whose project id matches.
func (s *TaskStore) ForProject(projectID string) []domain.Task {
	return s.filter(func(t domain.Task) bool { return t.ProjectID == projectID })
}

// AssignedTo returns tasks whose assignee list contains memberID.
func (s *TaskStore) AssignedTo(memberID string) []domain.Task {
	return s.filter(func(t domain.Task) bool { return t.IsAssignedTo(memberID) })
}

// WithStatus returns tasks in the given status.
func (s *TaskStore) WithStatus(status domain.TaskStatus) []domain.Task {
	return s.filter(func(t domain.Task) bool { return t.Status == status })
}

// Overdue returns tasks past their due date and not completed.
func (s *TaskStore) Overdue(now time.Time) []domain.Task {
	return s.filter(func(t domain.Task) bool { return t.IsOverdue(now) })
}

// Upcoming returns non-completed tasks due between now and now+days.
func (s *TaskStore) Upcoming(now time.Time, days int) []domain.Task {
	end := now.AddDate(0, 0, days)
	return s.filter(func(t domain.Task) bool {
		if t.DueDate == nil || t.Status == domain.TaskCompleted {
			return false
		}
		return !t.DueDate.Before(now) && !t.DueDate.After(end)
	})
}

// SortedByUrgency returns a snapshot sorted by urgency score, highest first.
func (s *TaskStore) SortedByUrgency(now time.Time) []domain.Task {
	tasks := s.All()
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].UrgencyScore(now) > tasks[j].UrgencyScore(now)
	})
	return tasks
}
