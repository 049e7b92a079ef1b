package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"nextstep/internal/domain"
	"nextstep/internal/domain/models/profile"
	"nextstep/internal/domain/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS goals (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	deadline   TEXT NOT NULL DEFAULT '',
	progress   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS profile_stats (
	id                INTEGER PRIMARY KEY CHECK (id = 1),
	paths_explored    INTEGER NOT NULL DEFAULT 0,
	alumni_connected  INTEGER NOT NULL DEFAULT 0,
	goals_completed   INTEGER NOT NULL DEFAULT 0,
	exploration_score INTEGER NOT NULL DEFAULT 0
);

INSERT OR IGNORE INTO profile_stats (id) VALUES (1);
`

// GoalStore is a SQLite-backed GoalRepository. A single file holds both
// the goal records and the one-row stats table; writes are
// last-write-wins with no per-user scoping.
type GoalStore struct {
	db *sql.DB
}

var _ repositories.GoalRepository = (*GoalStore)(nil)

// Open opens (or creates) the store at path and ensures the schema.
func Open(path string) (*GoalStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open goal store: %w", err)
	}

	// modernc.org/sqlite serializes access per connection; a single
	// connection avoids SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init goal store schema: %w", err)
	}

	return &GoalStore{db: db}, nil
}

// Close closes the underlying database.
func (s *GoalStore) Close() error {
	return s.db.Close()
}

// ListGoals returns all goals, oldest first.
func (s *GoalStore) ListGoals(ctx context.Context) ([]profile.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, deadline, progress, created_at, updated_at
		 FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []profile.Goal{}
	for rows.Next() {
		var g profile.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Deadline, &g.Progress, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal returns a single goal by ID.
func (s *GoalStore) GetGoal(ctx context.Context, id string) (*profile.Goal, error) {
	var g profile.Goal
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, deadline, progress, created_at, updated_at
		 FROM goals WHERE id = ?`, id).
		Scan(&g.ID, &g.Title, &g.Deadline, &g.Progress, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: goal %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// CreateGoal inserts a new goal.
func (s *GoalStore) CreateGoal(ctx context.Context, goal *profile.Goal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (id, title, deadline, progress, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.Deadline, goal.Progress, goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// UpdateGoal overwrites an existing goal (last write wins).
func (s *GoalStore) UpdateGoal(ctx context.Context, goal *profile.Goal) error {
	goal.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE goals SET title = ?, deadline = ?, progress = ?, updated_at = ?
		 WHERE id = ?`,
		goal.Title, goal.Deadline, goal.Progress, goal.UpdatedAt, goal.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: goal %s", domain.ErrNotFound, goal.ID)
	}
	return nil
}

// DeleteGoal removes a goal by ID.
func (s *GoalStore) DeleteGoal(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: goal %s", domain.ErrNotFound, id)
	}
	return nil
}

// GetStats returns the exploration stats record.
func (s *GoalStore) GetStats(ctx context.Context) (*profile.Stats, error) {
	var st profile.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT paths_explored, alumni_connected, goals_completed, exploration_score
		 FROM profile_stats WHERE id = 1`).
		Scan(&st.PathsExplored, &st.AlumniConnected, &st.GoalsCompleted, &st.ExplorationScore)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &st, nil
}

// UpdateStats overwrites the stats record.
func (s *GoalStore) UpdateStats(ctx context.Context, stats *profile.Stats) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE profile_stats
		 SET paths_explored = ?, alumni_connected = ?, goals_completed = ?, exploration_score = ?
		 WHERE id = 1`,
		stats.PathsExplored, stats.AlumniConnected, stats.GoalsCompleted, stats.ExplorationScore)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}
