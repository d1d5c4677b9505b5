package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/kv"
)

const projectsKey = "tasksphere/projects"

// ProjectStore owns the project collection.
type ProjectStore struct {
	mu        sync.RWMutex
	kv        *kv.Store
	projects  []domain.Project
	listeners []func()
}

// NewProjectStore creates a ProjectStore backed by the given key-value store.
// Call Load before use.
func NewProjectStore(kvs *kv.Store) *ProjectStore {
	return &ProjectStore{kv: kvs}
}

// Load reads the full collection. A missing key or an undecodable blob both
// reset the store to an empty collection; only I/O failure is an error.
func (s *ProjectStore) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, projectsKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			s.mu.Lock()
			s.projects = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("loading projects: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		projects = nil
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// Subscribe registers fn to run after every successful mutation.
func (s *ProjectStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *ProjectStore) notify() {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

func (s *ProjectStore) persistLocked(ctx context.Context, next []domain.Project) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	if err := s.kv.Put(ctx, projectsKey, data); err != nil {
		return fmt.Errorf("persisting projects: %w", err)
	}
	s.projects = next
	return nil
}

// Add appends the project and persists.
func (s *ProjectStore) Add(ctx context.Context, p domain.Project) error {
	s.mu.Lock()
	err := s.persistLocked(ctx, append(slices.Clone(s.projects), p))
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Update replaces the project with a matching id and persists. Unknown ids
// are a silent no-op.
func (s *ProjectStore) Update(ctx context.Context, p domain.Project) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.projects, func(x domain.Project) bool { return x.ID == p.ID })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	next := slices.Clone(s.projects)
	next[idx] = p
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Delete removes the project and persists.
func (s *ProjectStore) Delete(ctx context.Context, p domain.Project) error {
	return s.DeleteByID(ctx, p.ID)
}

// DeleteByID removes the project with the given id and persists.
func (s *ProjectStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.projects), func(x domain.Project) bool { return x.ID == id })
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Reset clears the collection and persists the empty state.
func (s *ProjectStore) Reset(ctx context.Context) error {
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
func (s *ProjectStore) All() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

// Get returns the project with the given id.
func (s *ProjectStore) Get(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// Count returns the collection size.
func (s *ProjectStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

func (s *ProjectStore) filter(keep func(domain.Project) bool) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Project
	for _, p := range s.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Active returns projects in the Active status.
func (s *ProjectStore) Active() []domain.Project {
	return s.filter(func(p domain.Project) bool { return p.Status == domain.ProjectActive })
}

// ForMember returns projects whose member list contains memberID.
func (s *ProjectStore) ForMember(memberID string) []domain.Project {
	return s.filter(func(p domain.Project) bool { return p.HasMember(memberID) })
}

// Overdue returns projects past their end date and not completed.
func (s *ProjectStore) Overdue(now time.Time) []domain.Project {
	return s.filter(func(p domain.Project) bool { return p.IsOverdue(now) })
}

// AddMilestone appends a milestone to the project's ordered list and persists.
// Unknown project ids are a silent no-op.
func (s *ProjectStore) AddMilestone(ctx context.Context, projectID string, m domain.Milestone) error {
	return s.mutateProject(ctx, projectID, func(p *domain.Project) {
		p.Milestones = append(slices.Clone(p.Milestones), m)
	})
}

// UpdateMilestone replaces the milestone with a matching id and persists.
func (s *ProjectStore) UpdateMilestone(ctx context.Context, projectID string, m domain.Milestone) error {
	return s.mutateProject(ctx, projectID, func(p *domain.Project) {
		milestones := slices.Clone(p.Milestones)
		for i, existing := range milestones {
			if existing.ID == m.ID {
				milestones[i] = m
				break
			}
		}
		p.Milestones = milestones
	})
}

// DeleteMilestone removes the milestone with the given id and persists.
func (s *ProjectStore) DeleteMilestone(ctx context.Context, projectID, milestoneID string) error {
	return s.mutateProject(ctx, projectID, func(p *domain.Project) {
		p.Milestones = slices.DeleteFunc(slices.Clone(p.Milestones), func(m domain.Milestone) bool {
			return m.ID == milestoneID
		})
	})
}

func (s *ProjectStore) mutateProject(ctx context.Context, projectID string, mutate func(*domain.Project)) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.projects, func(x domain.Project) bool { return x.ID == projectID })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	next := slices.Clone(s.projects)
	mutate(&next[idx])
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}
