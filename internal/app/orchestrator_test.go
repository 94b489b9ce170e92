package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/tripcrew/internal/app/events"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
	"github.com/jsamuelsen11/tripcrew/internal/platform/telemetry"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
	"github.com/jsamuelsen11/tripcrew/mocks"
)

func TestOrchestrator_DropoutRunsFiveEqualSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, withPerTick(5))
	g := f.newGroup(t, 150000, false, "ben", "cai")

	f.dropOut(t, g.ID, "ben")
	f.tick(t, 13)

	status, err := f.orch.GetReplanStatus(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetReplanStatus() error = %v", err)
	}
	if status.Trigger != replan.TriggerDropout {
		t.Errorf("Trigger = %q, want dropout", status.Trigger)
	}
	if status.ProgressPercent != 65 {
		t.Errorf("ProgressPercent = %d, want 65", status.ProgressPercent)
	}
	if status.TotalSteps != 5 {
		t.Errorf("TotalSteps = %d, want 5", status.TotalSteps)
	}
	if len(status.Changes) != 3 {
		t.Fatalf("len(Changes) = %d, want 3", len(status.Changes))
	}
	if status.CurrentStepIndex != 3 {
		t.Errorf("CurrentStepIndex = %d, want 3", status.CurrentStepIndex)
	}
	if status.CurrentStep != StepAdjustTransport {
		t.Errorf("CurrentStep = %q, want %q", status.CurrentStep, StepAdjustTransport)
	}
	for i, want := range []string{StepReviewMembership, StepRebalanceBudget, StepResizeAccommodation} {
		if status.Changes[i].Step != want {
			t.Errorf("Changes[%d].Step = %q, want %q", i, status.Changes[i].Step, want)
		}
	}
	if want := 7 * time.Second; status.EstimatedTimeRemaining != want {
		t.Errorf("EstimatedTimeRemaining = %v, want %v", status.EstimatedTimeRemaining, want)
	}
}

func TestOrchestrator_SingleRunningJobPerGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	g := f.newGroup(t, 1000, false, "ben", "cai")

	first, started, err := f.orch.TriggerReplan(ctx, g.ID)
	if err != nil || !started {
		t.Fatalf("TriggerReplan() = %v, %v, want started", started, err)
	}

	second, started, err := f.orch.TriggerReplan(ctx, g.ID)
	if err != nil {
		t.Fatalf("second TriggerReplan() error = %v", err)
	}
	if started {
		t.Error("second TriggerReplan() started a job, want no-op")
	}
	if second.JobID != first.JobID {
		t.Errorf("second JobID = %q, want running job %q", second.JobID, first.JobID)
	}

	// A dropout while a job is running is a no-op as well.
	f.dropOut(t, g.ID, "ben")
	status, err := f.orch.GetReplanStatus(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetReplanStatus() error = %v", err)
	}
	if status.JobID != first.JobID || status.Trigger != replan.TriggerManual {
		t.Errorf("status = %s/%s, want %s/manual", status.JobID, status.Trigger, first.JobID)
	}
	if f.ticks.Active() != 1 {
		t.Errorf("tick loops = %d, want 1", f.ticks.Active())
	}
}

func TestOrchestrator_GroupsRunIndependently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	a := f.newGroup(t, 1000, false, "ben")
	b := f.newGroup(t, 1000, false, "ben")

	for _, id := range []string{a.ID, b.ID} {
		if _, started, err := f.orch.TriggerReplan(ctx, id); err != nil || !started {
			t.Fatalf("TriggerReplan(%s) = %v, %v, want started", id, started, err)
		}
	}
	if f.ticks.Active() != 2 {
		t.Errorf("tick loops = %d, want 2", f.ticks.Active())
	}
}

func TestOrchestrator_Cancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	g := f.newGroup(t, 1000, false, "ben")

	if _, err := f.orch.CancelReplan(ctx, g.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CancelReplan() without job error = %v, want ErrNotFound", err)
	}

	first, _, err := f.orch.TriggerReplan(ctx, g.ID)
	if err != nil {
		t.Fatalf("TriggerReplan() error = %v", err)
	}
	f.tick(t, 12)

	status, err := f.orch.CancelReplan(ctx, g.ID)
	if err != nil {
		t.Fatalf("CancelReplan() error = %v", err)
	}
	if status.Status != replan.StatusCancelled {
		t.Errorf("Status = %q, want cancelled", status.Status)
	}
	if len(status.Changes) != 3 {
		t.Errorf("len(Changes) = %d, want change-set kept for inspection", len(status.Changes))
	}
	if status.EstimatedTimeRemaining != 0 {
		t.Errorf("EstimatedTimeRemaining = %v, want 0", status.EstimatedTimeRemaining)
	}

	// The tick loop ends no later than the next tick.
	f.tick(t, 1)
	if f.ticks.Active() != 0 {
		t.Errorf("tick loops after cancel = %d, want 0", f.ticks.Active())
	}
	after, err := f.orch.GetReplanStatus(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetReplanStatus() error = %v", err)
	}
	if after.ProgressPercent != 60 {
		t.Errorf("ProgressPercent after cancel = %d, want 60", after.ProgressPercent)
	}

	if _, err := f.orch.CancelReplan(ctx, g.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second CancelReplan() error = %v, want ErrConflict", err)
	}
	if _, err := f.orch.AcceptChanges(ctx, g.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("AcceptChanges() on cancelled job error = %v, want ErrConflict", err)
	}

	next, started, err := f.orch.TriggerReplan(ctx, g.ID)
	if err != nil || !started {
		t.Fatalf("TriggerReplan() after cancel = %v, %v, want started", started, err)
	}
	if next.JobID == first.JobID {
		t.Error("TriggerReplan() after cancel reused the cancelled job")
	}
}

func TestOrchestrator_AcceptRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects at half progress", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		g := f.newGroup(t, 1000, false, "ben")
		if _, _, err := f.orch.TriggerReplan(ctx, g.ID); err != nil {
			t.Fatalf("TriggerReplan() error = %v", err)
		}
		f.tick(t, 10)

		if _, err := f.orch.AcceptChanges(ctx, g.ID); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("AcceptChanges() at 50%% error = %v, want ErrConflict", err)
		}
	})

	t.Run("no job", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		g := f.newGroup(t, 1000, false)

		if _, err := f.orch.AcceptChanges(ctx, g.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("AcceptChanges() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("early accept commits the change-set so far", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		g := f.newGroup(t, 150000, false, "ben", "cai")
		if _, err := f.budget.SetContribution(ctx, g.ID, "ben", 90000); err != nil {
			t.Fatalf("SetContribution() error = %v", err)
		}
		f.dropOut(t, g.ID, "ben")
		f.tick(t, 11)

		plan, err := f.orch.AcceptChanges(ctx, g.ID)
		if err != nil {
			t.Fatalf("AcceptChanges() error = %v", err)
		}
		if plan.Version != 1 || plan.Trigger != replan.TriggerDropout {
			t.Errorf("plan = v%d/%s, want v1/dropout", plan.Version, plan.Trigger)
		}
		if len(plan.Changes) != 2 {
			t.Errorf("len(plan.Changes) = %d, want 2", len(plan.Changes))
		}
		if called := f.ticks.Tick(); called != 0 {
			t.Errorf("Tick() called %d loops after accept, want 0", called)
		}

		summary, err := f.budget.GetSummary(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetSummary() error = %v", err)
		}
		want := map[string]int64{"ana": 75000, "ben": 0, "cai": 75000}
		for _, s := range summary.Breakdown {
			if s.Amount != want[s.MemberID] {
				t.Errorf("%s amount = %d, want %d", s.MemberID, s.Amount, want[s.MemberID])
			}
		}

		stored, err := f.store.LoadGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("LoadGroup() error = %v", err)
		}
		if stored.Plan.Version != 1 || stored.Plan.JobID != plan.JobID {
			t.Errorf("stored plan = v%d/%s, want v1/%s", stored.Plan.Version, stored.Plan.JobID, plan.JobID)
		}

		if _, err := f.orch.GetReplanStatus(ctx, g.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetReplanStatus() after commit error = %v, want ErrNotFound", err)
		}
	})

	t.Run("completed job is accepted and replaced otherwise", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		g := f.newGroup(t, 1000, false, "ben")
		first, _, err := f.orch.TriggerReplan(ctx, g.ID)
		if err != nil {
			t.Fatalf("TriggerReplan() error = %v", err)
		}
		f.tick(t, 20)

		status, err := f.orch.GetReplanStatus(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetReplanStatus() error = %v", err)
		}
		if status.Status != replan.StatusCompleted || len(status.Changes) != 5 {
			t.Errorf("status = %s with %d changes, want completed with 5", status.Status, len(status.Changes))
		}
		if f.ticks.Active() != 0 {
			t.Errorf("tick loops after completion = %d, want 0", f.ticks.Active())
		}

		next, started, err := f.orch.TriggerReplan(ctx, g.ID)
		if err != nil || !started || next.JobID == first.JobID {
			t.Fatalf("TriggerReplan() after completion = %v, %v, want a new job", started, err)
		}
		f.tick(t, 20)

		plan, err := f.orch.AcceptChanges(ctx, g.ID)
		if err != nil {
			t.Fatalf("AcceptChanges() error = %v", err)
		}
		if plan.JobID != next.JobID || len(plan.Changes) != 5 {
			t.Errorf("plan = %s with %d changes, want %s with 5", plan.JobID, len(plan.Changes), next.JobID)
		}
	})
}

func TestOrchestrator_AcceptAfterGroupChangedDuringRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name   string
		change func(t *testing.T, f *fixture, groupID string)
		target int64
		want   map[string]int64
	}{
		{
			name: "member removed",
			change: func(t *testing.T, f *fixture, groupID string) {
				if err := f.members.RemoveMember(ctx, groupID, "ana", "cai"); err != nil {
					t.Fatalf("RemoveMember() error = %v", err)
				}
			},
			target: 150000,
			want:   map[string]int64{"ana": 150000, "ben": 0},
		},
		{
			name: "target changed",
			change: func(t *testing.T, f *fixture, groupID string) {
				if _, err := f.budget.SetTargetTotal(ctx, groupID, 90001); err != nil {
					t.Fatalf("SetTargetTotal() error = %v", err)
				}
			},
			target: 90001,
			want:   map[string]int64{"ana": 45001, "ben": 0, "cai": 45000},
		},
		{
			name: "member admitted",
			change: func(t *testing.T, f *fixture, groupID string) {
				if _, err := f.members.AdmitMember(ctx, groupID, ports.NewMember{ID: "dev", DisplayName: "dev"}); err != nil {
					t.Fatalf("AdmitMember() error = %v", err)
				}
			},
			target: 150000,
			want:   map[string]int64{"ana": 50000, "ben": 0, "cai": 50000, "dev": 50000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, withPerTick(20))
			g := f.newGroup(t, 150000, true, "ben", "cai")

			f.dropOut(t, g.ID, "ben")
			f.tick(t, 3)
			tt.change(t, f, g.ID)

			plan, err := f.orch.AcceptChanges(ctx, g.ID)
			if err != nil {
				t.Fatalf("AcceptChanges() error = %v", err)
			}
			if len(plan.Changes) != 3 || plan.Changes[1].Step != StepRebalanceBudget {
				t.Fatalf("plan.Changes = %+v, want rebalance as the second of 3", plan.Changes)
			}

			summary, err := f.budget.GetSummary(ctx, g.ID)
			if err != nil {
				t.Fatalf("GetSummary() error = %v", err)
			}
			if summary.TargetTotal != tt.target || summary.CurrentTotal != tt.target {
				t.Errorf("summary total = %d/%d, want %d/%d", summary.CurrentTotal, summary.TargetTotal, tt.target, tt.target)
			}
			if len(summary.Breakdown) != len(tt.want) {
				t.Fatalf("len(Breakdown) = %d, want %d", len(summary.Breakdown), len(tt.want))
			}
			for _, s := range summary.Breakdown {
				if s.Amount != tt.want[s.MemberID] {
					t.Errorf("%s amount = %d, want %d", s.MemberID, s.Amount, tt.want[s.MemberID])
				}
			}
		})
	}
}

func TestOrchestrator_CommitRetriesOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := mocks.NewMockGroupStore(t)
	store.EXPECT().LoadGroup(mock.Anything, "g1").Return(replanGroup(t), nil).Once()
	store.EXPECT().SaveGroup(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()
	store.EXPECT().SaveGroup(mock.Anything, mock.MatchedBy(func(g *group.Group) bool {
		return g.Plan.Version == 1
	})).Return(nil).Once()

	f := newFixture(t, withStore(store))
	if _, _, err := f.orch.TriggerReplan(ctx, "g1"); err != nil {
		t.Fatalf("TriggerReplan() error = %v", err)
	}
	f.tick(t, 20)

	plan, err := f.orch.AcceptChanges(ctx, "g1")
	if err != nil {
		t.Fatalf("AcceptChanges() error = %v, want success on retry", err)
	}
	if plan.Version != 1 {
		t.Errorf("plan.Version = %d, want 1", plan.Version)
	}
}

func TestOrchestrator_CommitFailureKeepsAcceptedChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	store := mocks.NewMockGroupStore(t)
	store.EXPECT().LoadGroup(mock.Anything, "g1").Return(replanGroup(t), nil).Once()
	store.EXPECT().SaveGroup(mock.Anything, mock.Anything).Return(errors.New("disk full")).Times(2)
	store.EXPECT().SaveGroup(mock.Anything, mock.Anything).Return(nil).Once()

	f := newFixture(t, withStore(store), withMetrics(metrics))
	first, _, err := f.orch.TriggerReplan(ctx, "g1")
	if err != nil {
		t.Fatalf("TriggerReplan() error = %v", err)
	}
	f.tick(t, 12)

	if _, err := f.orch.AcceptChanges(ctx, "g1"); !errors.Is(err, domain.ErrPersistFailed) {
		t.Fatalf("AcceptChanges() error = %v, want ErrPersistFailed", err)
	}

	status, err := f.orch.GetReplanStatus(ctx, "g1")
	if err != nil {
		t.Fatalf("GetReplanStatus() error = %v", err)
	}
	if !status.AwaitingCommit || status.Status != replan.StatusCompleted {
		t.Errorf("status = %s awaiting=%v, want completed and awaiting commit", status.Status, status.AwaitingCommit)
	}

	// Nothing else may start while the accepted change-set is pending.
	if _, _, err := f.orch.TriggerReplan(ctx, "g1"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("TriggerReplan() error = %v, want ErrConflict", err)
	}
	f.orch.HandleMembershipChanged(ctx, events.MembershipChanged{GroupID: "g1", MemberID: "ben", Status: member.StatusDroppedOut})
	if status, _ := f.orch.GetReplanStatus(ctx, "g1"); status.JobID != first.JobID {
		t.Errorf("dropout replaced the pending job: %s, want %s", status.JobID, first.JobID)
	}

	plan, err := f.orch.AcceptChanges(ctx, "g1")
	if err != nil {
		t.Fatalf("AcceptChanges() retry error = %v", err)
	}
	if plan.JobID != first.JobID || len(plan.Changes) != 3 {
		t.Errorf("plan = %s with %d changes, want %s with 3", plan.JobID, len(plan.Changes), first.JobID)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got := counterValue(rm, "replan.commit.attempts", telemetry.AttrResult.String(telemetry.ResultPersistFailed)); got != 2 {
		t.Errorf("persist_failed attempts = %d, want 2", got)
	}
	if got := counterValue(rm, "replan.commit.attempts", telemetry.AttrResult.String(telemetry.ResultCommitted)); got != 1 {
		t.Errorf("committed attempts = %d, want 1", got)
	}
	if got := counterValue(rm, "replan.jobs.started", telemetry.AttrTrigger.String("manual")); got != 1 {
		t.Errorf("manual jobs started = %d, want 1", got)
	}
}

func TestOrchestrator_CloseStopsTickLoops(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	g := f.newGroup(t, 1000, false, "ben")
	if _, _, err := f.orch.TriggerReplan(ctx, g.ID); err != nil {
		t.Fatalf("TriggerReplan() error = %v", err)
	}

	f.orch.Close()
	if called := f.ticks.Tick(); called != 0 {
		t.Errorf("Tick() called %d loops after Close, want 0", called)
	}
	if f.ticks.Active() != 0 {
		t.Errorf("tick loops = %d, want 0", f.ticks.Active())
	}
}

func TestOrchestrator_UnknownGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, _, err := f.orch.TriggerReplan(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("TriggerReplan() error = %v, want ErrNotFound", err)
	}
	if _, err := f.orch.GetReplanStatus(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetReplanStatus() error = %v, want ErrNotFound", err)
	}
}

// replanGroup is a stored group with two active members and a dropout.
func replanGroup(t *testing.T) *group.Group {
	t.Helper()

	g := seedGroup(t, "g1")
	for i, id := range []string{"ben", "cai"} {
		m := member.Member{
			ID:          id,
			DisplayName: id,
			Status:      member.StatusActive,
			Role:        member.RoleMember,
			JoinedAt:    testNow.Add(time.Duration(i+1) * time.Minute),
		}
		if err := g.Admit(m); err != nil {
			t.Fatalf("Admit(%s) error = %v", id, err)
		}
	}
	if _, err := g.ChangeStatus("ben", member.StatusDroppedOut, "flight cancelled"); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	return g
}

func counterValue(rm metricdata.ResourceMetrics, name string, attr attribute.KeyValue) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attr.Key); ok && v.Emit() == attr.Value.Emit() {
					total += dp.Value
				}
			}
		}
	}
	return total
}
