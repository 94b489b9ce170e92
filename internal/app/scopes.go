package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Groups owns one serialized scope per group ID. Every read or write of a
// group, including its replan job, happens while holding that group's scope.
// Calls for different groups never wait on each other.
type Groups struct {
	store ports.GroupStore

	mu     sync.Mutex
	scopes map[string]*scope
}

// scope is the state of one group guarded by mu. group caches the loaded
// aggregate while run is set. A scope that was evicted from the map is marked
// dead and must be re-acquired.
type scope struct {
	mu    sync.Mutex
	dead  bool
	group *group.Group
	run   *replanRun
}

// NewGroups creates a scope manager over store.
func NewGroups(store ports.GroupStore) *Groups {
	return &Groups{
		store:  store,
		scopes: make(map[string]*scope),
	}
}

// Scope is the handle passed to callbacks running inside a group's scope.
// It must not be retained after the callback returns.
type Scope struct {
	ctx    context.Context
	id     string
	groups *Groups
	s      *scope
}

// Group returns the current state of the group, loading it from the store
// on first use. The returned value is shared and must be treated as
// read-only; use Mutate to change it.
func (sc *Scope) Group() (*group.Group, error) {
	if sc.s.group != nil {
		return sc.s.group, nil
	}
	g, err := sc.groups.store.LoadGroup(sc.ctx, sc.id)
	if err != nil {
		return nil, err
	}
	sc.s.group = g
	return g, nil
}

// Mutate applies fn to a copy of the group and saves it. The copy replaces
// the scope's state only after the store accepted it, so a failed fn or
// save leaves the group as it was. Save failures wrap domain.ErrPersistFailed.
func (sc *Scope) Mutate(fn func(g *group.Group) error) error {
	current, err := sc.Group()
	if err != nil {
		return err
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := sc.groups.store.SaveGroup(sc.ctx, next); err != nil {
		return fmt.Errorf("saving group %s: %w: %w", sc.id, domain.ErrPersistFailed, err)
	}
	sc.s.group = next
	return nil
}

// Within runs fn while holding the scope of groupID.
func (g *Groups) Within(ctx context.Context, groupID string, fn func(sc *Scope) error) error {
	s := g.acquire(groupID)
	defer g.release(groupID, s)

	return fn(&Scope{ctx: ctx, id: groupID, groups: g, s: s})
}

// View runs fn against the current group state. fn must not modify or
// retain the group.
func (g *Groups) View(ctx context.Context, groupID string, fn func(grp *group.Group) error) error {
	return g.Within(ctx, groupID, func(sc *Scope) error {
		grp, err := sc.Group()
		if err != nil {
			return err
		}
		return fn(grp)
	})
}

// Update runs fn against a copy of the group and persists the result.
func (g *Groups) Update(ctx context.Context, groupID string, fn func(grp *group.Group) error) error {
	return g.Within(ctx, groupID, func(sc *Scope) error {
		return sc.Mutate(fn)
	})
}

// Create stores a new group and seeds its scope.
func (g *Groups) Create(ctx context.Context, grp *group.Group) error {
	return g.Within(ctx, grp.ID, func(sc *Scope) error {
		if err := g.store.CreateGroup(ctx, grp); err != nil {
			return err
		}
		sc.s.group = grp.Clone()
		return nil
	})
}

// acquire returns the locked, live scope for id.
func (g *Groups) acquire(id string) *scope {
	for {
		g.mu.Lock()
		s, ok := g.scopes[id]
		if !ok {
			s = &scope{}
			g.scopes[id] = s
		}
		g.mu.Unlock()

		s.mu.Lock()
		if !s.dead {
			return s
		}
		s.mu.Unlock()
	}
}

// release unlocks s, evicting it first unless a replan job is attached. An
// idle group is reloaded from the store on its next use, so only groups with
// a job stay cached.
func (g *Groups) release(id string, s *scope) {
	if s.run == nil {
		g.mu.Lock()
		if g.scopes[id] == s {
			delete(g.scopes, id)
		}
		g.mu.Unlock()
		s.dead = true
	}
	s.mu.Unlock()
}
