package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/kv"
)

const teamKey = "tasksphere/team"

// TeamStore owns the team member collection.
type TeamStore struct {
	mu        sync.RWMutex
	kv        *kv.Store
	members   []domain.TeamMember
	listeners []func()
}

// NewTeamStore creates a TeamStore backed by the given key-value store.
// Call Load before use.
func NewTeamStore(kvs *kv.Store) *TeamStore {
	return &TeamStore{kv: kvs}
}

// Load reads the full collection. A missing key or an undecodable blob both
// reset the store to an empty collection; only I/O failure is an error.
func (s *TeamStore) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, teamKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			s.mu.Lock()
			s.members = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("loading team members: %w", err)
	}

	var members []domain.TeamMember
	if err := json.Unmarshal(data, &members); err != nil {
		members = nil
	}

	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

// Subscribe registers fn to run after every successful mutation.
func (s *TeamStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *TeamStore) notify() {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

func (s *TeamStore) persistLocked(ctx context.Context, next []domain.TeamMember) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding team members: %w", err)
	}
	if err := s.kv.Put(ctx, teamKey, data); err != nil {
		return fmt.Errorf("persisting team members: %w", err)
	}
	s.members = next
	return nil
}

// Add appends the member and persists.
func (s *TeamStore) Add(ctx context.Context, m domain.TeamMember) error {
	s.mu.Lock()
	err := s.persistLocked(ctx, append(slices.Clone(s.members), m))
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Update replaces the member with a matching id and persists. Unknown ids
// are a silent no-op.
func (s *TeamStore) Update(ctx context.Context, m domain.TeamMember) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.members, func(x domain.TeamMember) bool { return x.ID == m.ID })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	next := slices.Clone(s.members)
	next[idx] = m
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Delete removes the member and persists. This is a plain removal: any task
// assignee ids or project member ids pointing at the member stay behind.
// Reference cleanup lives in the team service.
func (s *TeamStore) Delete(ctx context.Context, m domain.TeamMember) error {
	return s.DeleteByID(ctx, m.ID)
}

// DeleteByID removes the member with the given id and persists.
func (s *TeamStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.members), func(x domain.TeamMember) bool { return x.ID == id })
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Reset clears the collection and persists the empty state.
func (s *TeamStore) Reset(ctx context.Context) error {
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
func (s *TeamStore) All() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

// Get returns the member with the given id.
func (s *TeamStore) Get(id string) (domain.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.TeamMember{}, false
}

// Count returns the collection size.
func (s *TeamStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

func (s *TeamStore) filter(keep func(domain.TeamMember) bool) []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.TeamMember
	for _, m := range s.members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// Active returns members with the active flag set.
func (s *TeamStore) Active() []domain.TeamMember {
	return s.filter(func(m domain.TeamMember) bool { return m.IsActive })
}

// WithRole returns members holding the given role.
func (s *TeamStore) WithRole(role domain.MemberRole) []domain.TeamMember {
	return s.filter(func(m domain.TeamMember) bool { return m.Role == role })
}

// UpdateWellness replaces the member's wellness snapshot and persists.
// Unknown member ids are a silent no-op.
func (s *TeamStore) UpdateWellness(ctx context.Context, memberID string, data domain.WellnessData) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.members, func(x domain.TeamMember) bool { return x.ID == memberID })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	next := slices.Clone(s.members)
	next[idx].Wellness = &data
	err := s.persistLocked(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}
