package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/tripcrew/internal/app/events"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/platform/scheduler"
	"github.com/jsamuelsen11/tripcrew/internal/platform/telemetry"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

var testNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stepClock returns testNow advanced by one second on every call so join
// order is deterministic.
type stepClock struct {
	mu sync.Mutex
	n  int
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return testNow.Add(time.Duration(c.n) * time.Second)
}

type fixture struct {
	store   ports.GroupStore
	groups  *Groups
	bus     *events.Bus
	ticks   *scheduler.Manual
	group   *GroupService
	members *MemberService
	budget  *BudgetService
	orch    *Orchestrator
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	store   ports.GroupStore
	perTick int
	metrics *telemetry.Metrics
}

func withStore(s ports.GroupStore) fixtureOption {
	return func(c *fixtureConfig) { c.store = s }
}

func withPerTick(n int) fixtureOption {
	return func(c *fixtureConfig) { c.perTick = n }
}

func withMetrics(m *telemetry.Metrics) fixtureOption {
	return func(c *fixtureConfig) { c.metrics = m }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	cfg := fixtureConfig{store: memory.New(), perTick: 5}
	for _, opt := range opts {
		opt(&cfg)
	}

	clock := &stepClock{}
	logger := discardLogger()
	groups := NewGroups(cfg.store)
	bus := events.NewBus(logger)
	ticks := scheduler.NewManual()
	orch := NewOrchestrator(groups, ticks, clock, OrchestratorConfig{
		TickInterval:    time.Second,
		ProgressPerTick: cfg.perTick,
	}, cfg.metrics, logger)
	bus.Subscribe(orch.HandleMembershipChanged)
	t.Cleanup(orch.Close)

	return &fixture{
		store:   cfg.store,
		groups:  groups,
		bus:     bus,
		ticks:   ticks,
		group:   NewGroupService(groups, clock, logger),
		members: NewMemberService(groups, bus, clock, cfg.metrics, logger),
		budget:  NewBudgetService(groups, logger),
		orch:    orch,
	}
}

// newGroup creates a group founded by admin "ana" and admits the other ids
// as active members.
func (f *fixture) newGroup(t *testing.T, target int64, autoAdjust bool, others ...string) *group.Group {
	t.Helper()
	ctx := context.Background()

	g, err := f.group.CreateGroup(ctx, ports.NewGroup{
		Name:        "Porto weekend",
		TargetTotal: target,
		AutoAdjust:  autoAdjust,
		Founder:     ports.NewMember{ID: "ana", DisplayName: "Ana"},
	})
	if err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	for _, id := range others {
		if _, err := f.members.AdmitMember(ctx, g.ID, ports.NewMember{ID: id, DisplayName: id}); err != nil {
			t.Fatalf("AdmitMember(%s) error = %v", id, err)
		}
	}
	return g
}

func (f *fixture) tick(t *testing.T, n int) {
	t.Helper()
	for range n {
		f.ticks.Tick()
	}
}

func (f *fixture) dropOut(t *testing.T, groupID, memberID string) {
	t.Helper()
	if _, err := f.members.ChangeStatus(context.Background(), groupID, memberID, member.StatusDroppedOut, "cannot travel"); err != nil {
		t.Fatalf("ChangeStatus(%s, dropped_out) error = %v", memberID, err)
	}
}
