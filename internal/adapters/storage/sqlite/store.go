// Package sqlite provides a SQLite-backed group store using the pure-Go
// modernc.org/sqlite driver. The schema is applied from embedded migrations
// on Open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
	"github.com/jsamuelsen11/tripcrew/internal/platform/sqlitemigrate"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.GroupStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// errNoPath is returned by Open when no database path is configured.
var errNoPath = errors.New("sqlite: database path is required")

// Store persists groups in SQLite. SaveGroup writes the whole aggregate in
// one transaction.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errNoPath
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateGroup inserts a new group with its members, ledger and plan.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO groups (id, name, created_at, target_total, auto_adjust) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Name, toMillis(g.CreatedAt), g.Ledger.TargetTotal(), g.Ledger.AutoAdjust(),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("group %s: %w", g.ID, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("inserting group %s: %w", g.ID, err)
		}
		return writeChildren(ctx, tx, g)
	})
}

// SaveGroup replaces the stored state of an existing group.
func (s *Store) SaveGroup(ctx context.Context, g *group.Group) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE groups SET name = ?, target_total = ?, auto_adjust = ? WHERE id = ?`,
			g.Name, g.Ledger.TargetTotal(), g.Ledger.AutoAdjust(), g.ID,
		)
		if err != nil {
			return fmt.Errorf("updating group %s: %w", g.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("updating group %s: %w", g.ID, err)
		}
		if n == 0 {
			return fmt.Errorf("group %s: %w", g.ID, domain.ErrNotFound)
		}

		// Contributions and plan changes cascade from members and trip_plans.
		for _, stmt := range []string{
			`DELETE FROM members WHERE group_id = ?`,
			`DELETE FROM trip_plans WHERE group_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, g.ID); err != nil {
				return fmt.Errorf("clearing group %s: %w", g.ID, err)
			}
		}
		return writeChildren(ctx, tx, g)
	})
}

// LoadGroup reads a group and rebuilds its aggregate.
func (s *Store) LoadGroup(ctx context.Context, id string) (*group.Group, error) {
	var (
		g          = &group.Group{ID: id}
		createdAt  int64
		target     int64
		autoAdjust bool
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT name, created_at, target_total, auto_adjust FROM groups WHERE id = ?`, id,
	).Scan(&g.Name, &createdAt, &target, &autoAdjust)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading group %s: %w", id, err)
	}
	g.CreatedAt = fromMillis(createdAt)

	members, err := s.loadMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Members = member.NewRegistry(members)

	contributions, err := s.loadContributions(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Ledger, err = ledger.Restore(target, autoAdjust, contributions); err != nil {
		return nil, fmt.Errorf("restoring ledger of group %s: %w", id, err)
	}

	if g.Plan, err = s.loadPlan(ctx, id); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) loadMembers(ctx context.Context, groupID string) ([]member.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, display_name, status, role, dropout_reason, joined_at
		 FROM members WHERE group_id = ? ORDER BY joined_at, id`, groupID)
	if err != nil {
		return nil, fmt.Errorf("loading members of group %s: %w", groupID, err)
	}
	defer func() { _ = rows.Close() }()

	var members []member.Member
	for rows.Next() {
		var (
			m        member.Member
			joinedAt int64
		)
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.Status, &m.Role, &m.DropoutReason, &joinedAt); err != nil {
			return nil, fmt.Errorf("scanning member of group %s: %w", groupID, err)
		}
		m.JoinedAt = fromMillis(joinedAt)
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) loadContributions(ctx context.Context, groupID string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT member_id, amount FROM contributions WHERE group_id = ?`, groupID)
	if err != nil {
		return nil, fmt.Errorf("loading contributions of group %s: %w", groupID, err)
	}
	defer func() { _ = rows.Close() }()

	contributions := make(map[string]int64)
	for rows.Next() {
		var (
			id     string
			amount int64
		)
		if err := rows.Scan(&id, &amount); err != nil {
			return nil, fmt.Errorf("scanning contribution of group %s: %w", groupID, err)
		}
		contributions[id] = amount
	}
	return contributions, rows.Err()
}

func (s *Store) loadPlan(ctx context.Context, groupID string) (replan.Plan, error) {
	var (
		plan        replan.Plan
		committedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT version, job_id, trigger_reason, committed_at FROM trip_plans WHERE group_id = ?`, groupID,
	).Scan(&plan.Version, &plan.JobID, &plan.Trigger, &committedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return replan.Plan{}, nil
	}
	if err != nil {
		return replan.Plan{}, fmt.Errorf("loading trip plan of group %s: %w", groupID, err)
	}
	plan.CommittedAt = fromMillis(committedAt)

	rows, err := s.db.QueryContext(ctx,
		`SELECT step, description FROM trip_plan_changes WHERE group_id = ? ORDER BY position`, groupID)
	if err != nil {
		return replan.Plan{}, fmt.Errorf("loading trip plan changes of group %s: %w", groupID, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c replan.PlanChange
		if err := rows.Scan(&c.Step, &c.Description); err != nil {
			return replan.Plan{}, fmt.Errorf("scanning trip plan change of group %s: %w", groupID, err)
		}
		plan.Changes = append(plan.Changes, c)
	}
	return plan, rows.Err()
}

// writeChildren inserts members, contributions and the trip plan of g. The
// caller has cleared any previous rows.
func writeChildren(ctx context.Context, tx *sql.Tx, g *group.Group) error {
	for _, m := range g.Members.List() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO members (group_id, id, display_name, status, role, dropout_reason, joined_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, m.ID, m.DisplayName, string(m.Status), string(m.Role), m.DropoutReason, toMillis(m.JoinedAt),
		); err != nil {
			return fmt.Errorf("inserting member %s of group %s: %w", m.ID, g.ID, err)
		}
	}

	for id, amount := range g.Ledger.Contributions() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contributions (group_id, member_id, amount) VALUES (?, ?, ?)`,
			g.ID, id, amount,
		); err != nil {
			return fmt.Errorf("inserting contribution of %s in group %s: %w", id, g.ID, err)
		}
	}

	if g.Plan.Version == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO trip_plans (group_id, version, job_id, trigger_reason, committed_at) VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Plan.Version, g.Plan.JobID, string(g.Plan.Trigger), toMillis(g.Plan.CommittedAt),
	); err != nil {
		return fmt.Errorf("inserting trip plan of group %s: %w", g.ID, err)
	}
	for i, c := range g.Plan.Changes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO trip_plan_changes (group_id, position, step, description) VALUES (?, ?, ?, ?)`,
			g.ID, i, c.Step, c.Description,
		); err != nil {
			return fmt.Errorf("inserting trip plan change %d of group %s: %w", i, g.ID, err)
		}
	}
	return nil
}

// inTx runs fn in a transaction that is committed only if fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
