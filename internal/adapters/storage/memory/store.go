// Package memory provides an in-process group store for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time check that Store implements ports.GroupStore.
var _ ports.GroupStore = (*Store)(nil)

// Store keeps deep copies of groups in a map. Callers never share memory
// with the stored state.
type Store struct {
	mu     sync.RWMutex
	groups map[string]*group.Group
}

// New creates an empty store.
func New() *Store {
	return &Store{groups: make(map[string]*group.Group)}
}

// CreateGroup stores a copy of g.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[g.ID]; ok {
		return fmt.Errorf("group %s: %w", g.ID, domain.ErrConflict)
	}
	s.groups[g.ID] = g.Clone()
	return nil
}

// LoadGroup returns a copy of the stored group.
func (s *Store) LoadGroup(ctx context.Context, id string) (*group.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	return g.Clone(), nil
}

// SaveGroup replaces the stored group with a copy of g.
func (s *Store) SaveGroup(ctx context.Context, g *group.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[g.ID]; !ok {
		return fmt.Errorf("group %s: %w", g.ID, domain.ErrNotFound)
	}
	s.groups[g.ID] = g.Clone()
	return nil
}

// Len returns the number of stored groups.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}
