package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
)

// GroupStore persists group aggregates. Implemented by the storage adapters;
// called by the application layer from inside a group's serialized scope.
type GroupStore interface {
	// CreateGroup stores a new group.
	// Returns domain.ErrConflict if a group with the same ID exists.
	CreateGroup(ctx context.Context, g *group.Group) error

	// LoadGroup returns the persisted group.
	// Returns domain.ErrNotFound if the group does not exist.
	LoadGroup(ctx context.Context, id string) (*group.Group, error)

	// SaveGroup replaces members, ledger and trip plan of an existing group
	// in one atomic write. Either all of it is stored or none of it.
	// Returns domain.ErrNotFound if the group does not exist.
	SaveGroup(ctx context.Context, g *group.Group) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// TickSource drives periodic work such as replan progress.
type TickSource interface {
	// Every calls fn once per interval until fn returns false or ctx is
	// done. It does not block; fn runs on a goroutine owned by the source.
	Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context) bool)
}
