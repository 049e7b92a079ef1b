package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"nextstep/internal/domain"
	profileModels "nextstep/internal/domain/models/profile"
	"nextstep/internal/domain/repositories"
)

// CreateGoalRequest is the payload for creating a goal.
type CreateGoalRequest struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Progress int    `json:"progress"`
}

// UpdateGoalRequest is a partial update; nil fields are left unchanged.
type UpdateGoalRequest struct {
	Title    *string `json:"title,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
	Progress *int    `json:"progress,omitempty"`
}

// GoalService owns goal and stats operations over the persisted store.
type GoalService struct {
	repo   repositories.GoalRepository
	logger *slog.Logger
}

// NewGoalService creates a new goal service.
func NewGoalService(repo repositories.GoalRepository, logger *slog.Logger) *GoalService {
	return &GoalService{
		repo:   repo,
		logger: logger,
	}
}

// ListGoals returns all goals.
func (s *GoalService) ListGoals(ctx context.Context) ([]profileModels.Goal, error) {
	return s.repo.ListGoals(ctx)
}

// CreateGoal validates and persists a new goal.
func (s *GoalService) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*profileModels.Goal, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateGoalFields(req.Title, req.Progress); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	goal := &profileModels.Goal{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Deadline:  req.Deadline,
		Progress:  req.Progress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal created", "id", goal.ID, "title", goal.Title)
	return goal, nil
}

// UpdateGoal applies a partial update to an existing goal.
func (s *GoalService) UpdateGoal(ctx context.Context, id string, req *UpdateGoalRequest) (*profileModels.Goal, error) {
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}

	if err := validateGoalFields(goal.Title, goal.Progress); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal updated", "id", goal.ID, "progress", goal.Progress)
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	if err := s.repo.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.logger.Info("goal deleted", "id", id)
	return nil
}

// GetStats returns the exploration stats record.
func (s *GoalService) GetStats(ctx context.Context) (*profileModels.Stats, error) {
	return s.repo.GetStats(ctx)
}

// UpdateStats overwrites the exploration stats record (last write wins).
func (s *GoalService) UpdateStats(ctx context.Context, stats *profileModels.Stats) (*profileModels.Stats, error) {
	if err := s.repo.UpdateStats(ctx, stats); err != nil {
		return nil, err
	}
	return s.repo.GetStats(ctx)
}

func validateGoalFields(title string, progress int) error {
	if err := validation.Validate(title,
		validation.Required,
		validation.Length(1, 200),
	); err != nil {
		return fmt.Errorf("title: %v", err)
	}
	if err := validation.Validate(progress, validation.Min(0), validation.Max(100)); err != nil {
		return fmt.Errorf("progress: %v", err)
	}
	return nil
}
