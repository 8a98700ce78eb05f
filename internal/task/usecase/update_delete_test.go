package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
)

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("only present fields are merged", func(t *testing.T) {
		store := &mockRepository{tasks: []model.Task{
			seededTask("t1", "user-1", day.Add(9*time.Hour), time.Hour, model.CategoryWork),
		}}
		uc := newTestUseCase(store)

		done := model.StatusCompleted
		if err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "t1", Status: &done}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := store.tasks[0]
		if got.Status != model.StatusCompleted {
			t.Errorf("status = %q, want completed", got.Status)
		}
		if got.TaskName != "t1" || got.Category != model.CategoryWork {
			t.Errorf("untouched fields changed: %+v", got)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{})
		name := "renamed"
		err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "missing", TaskName: &name})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("empty id maps to not found", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{})
		err := uc.Update(ctx, sc, task.UpdateTaskInput{})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("empty scope is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{})
		err := uc.Update(ctx, model.Scope{}, task.UpdateTaskInput{ID: "t1"})
		if !errors.Is(err, identity.ErrNotAuthenticated) {
			t.Errorf("err = %v, want ErrNotAuthenticated", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("removes the task", func(t *testing.T) {
		store := &mockRepository{tasks: []model.Task{
			seededTask("t1", "user-1", day.Add(9*time.Hour), time.Hour, model.CategoryWork),
		}}
		uc := newTestUseCase(store)

		if err := uc.Delete(ctx, sc, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.tasks) != 0 {
			t.Errorf("store still holds %d tasks", len(store.tasks))
		}
	})

	t.Run("deleting a missing id succeeds", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{})
		if err := uc.Delete(ctx, sc, "never-existed"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty scope is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{})
		if err := uc.Delete(ctx, model.Scope{}, "t1"); !errors.Is(err, identity.ErrNotAuthenticated) {
			t.Errorf("err = %v, want ErrNotAuthenticated", err)
		}
	})
}
