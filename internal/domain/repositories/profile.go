package repositories

import (
	"context"

	"nextstep/internal/domain/models/profile"
)

// GoalRepository persists profile goals and the exploration stats record.
type GoalRepository interface {
	ListGoals(ctx context.Context) ([]profile.Goal, error)
	GetGoal(ctx context.Context, id string) (*profile.Goal, error)
	CreateGoal(ctx context.Context, goal *profile.Goal) error
	UpdateGoal(ctx context.Context, goal *profile.Goal) error
	DeleteGoal(ctx context.Context, id string) error

	GetStats(ctx context.Context) (*profile.Stats, error)
	UpdateStats(ctx context.Context, stats *profile.Stats) error
}
