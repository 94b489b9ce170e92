// Package events is a small synchronous in-process event bus used to tell the
// replan orchestrator about membership changes.
package events

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
)

// MembershipChanged is published after a member status change was saved.
type MembershipChanged struct {
	GroupID    string
	MemberID   string
	Status     member.Status
	Reason     string
	OccurredAt time.Time
}

// Handler receives membership events on the publisher's goroutine.
type Handler func(ctx context.Context, evt MembershipChanged)

// Bus dispatches events to handlers in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *slog.Logger
}

// NewBus creates an empty bus. Handler panics are logged to logger.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a handler.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish calls every handler. A panicking handler is recovered and the
// remaining handlers still run.
func (b *Bus) Publish(ctx context.Context, evt MembershipChanged) {
	b.mu.RLock()
	handlers := slices.Clone(b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, evt)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, evt MembershipChanged) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event handler panicked",
				slog.String("group_id", evt.GroupID),
				slog.String("member_id", evt.MemberID),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	h(ctx, evt)
}
