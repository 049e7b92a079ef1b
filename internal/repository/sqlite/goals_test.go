package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nextstep/internal/domain"
	"nextstep/internal/domain/models/profile"
)

func openTestStore(t *testing.T) *GoalStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testGoal(id, title string) *profile.Goal {
	now := time.Now()
	return &profile.Goal{
		ID:        id,
		Title:     title,
		Deadline:  "Oct 15",
		Progress:  60,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGoalStore_CreateAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	goal := testGoal("g-1", "Talk to 1 alumni in consulting")
	if err := store.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	got, err := store.GetGoal(ctx, "g-1")
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if got.Title != goal.Title || got.Deadline != goal.Deadline || got.Progress != goal.Progress {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, goal)
	}
}

func TestGoalStore_ListOrdersByCreation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := testGoal("g-1", "first")
	second := testGoal("g-2", "second")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	second.UpdatedAt = second.CreatedAt

	if err := store.CreateGoal(ctx, second); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if err := store.CreateGoal(ctx, first); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	goals, err := store.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != "g-1" || goals[1].ID != "g-2" {
		t.Errorf("unexpected order: %s, %s", goals[0].ID, goals[1].ID)
	}
}

func TestGoalStore_Update(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	goal := testGoal("g-1", "Complete Business Analytics course")
	if err := store.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	goal.Progress = 90
	goal.Title = "Complete Business Analytics course (final project left)"
	if err := store.UpdateGoal(ctx, goal); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	got, err := store.GetGoal(ctx, "g-1")
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if got.Progress != 90 || got.Title != goal.Title {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestGoalStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateGoal(ctx, testGoal("g-1", "x")); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if err := store.DeleteGoal(ctx, "g-1"); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if _, err := store.GetGoal(ctx, "g-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGoalStore_MissingGoalIsNotFound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.GetGoal(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetGoal: expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateGoal(ctx, testGoal("nope", "x")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateGoal: expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteGoal(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteGoal: expected ErrNotFound, got %v", err)
	}
}

func TestGoalStore_StatsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// The stats row exists from the start.
	initial, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if initial.PathsExplored != 0 || initial.ExplorationScore != 0 {
		t.Errorf("expected zeroed initial stats, got %+v", initial)
	}

	want := &profile.Stats{
		PathsExplored:    8,
		AlumniConnected:  5,
		GoalsCompleted:   3,
		ExplorationScore: 72,
	}
	if err := store.UpdateStats(ctx, want); err != nil {
		t.Fatalf("UpdateStats failed: %v", err)
	}

	got, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if *got != *want {
		t.Errorf("stats round trip mismatch: got %+v, want %+v", got, want)
	}
}
