package usecase

import (
	"context"
	"errors"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
	repo "lifeplanner/internal/task/repository"
)

// Update merges the present fields of a partial update into the stored
// task. Fields left nil are untouched; invariants are not re-validated.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) error {
	if sc.UserID == "" {
		return identity.ErrNotAuthenticated
	}
	if input.ID == "" {
		return task.ErrTaskNotFound
	}

	err := uc.repo.PatchTask(ctx, input.ID, repo.PatchTaskOptions{
		TaskName:      input.TaskName,
		Notes:         input.Notes,
		Category:      input.Category,
		Priority:      input.Priority,
		Status:        input.Status,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		ReminderTime:  input.ReminderTime,
		Location:      input.Location,
		AttachmentURL: input.AttachmentURL,
	})
	if err != nil {
		if errors.Is(err, repo.ErrTaskNotExists) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update PatchTask: %v", err)
		return err
	}
	return nil
}

// Delete removes a task by id. Deleting a missing or already-deleted id
// succeeds: the operation is idempotent.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if sc.UserID == "" {
		return identity.ErrNotAuthenticated
	}
	if id == "" {
		return nil
	}

	if err := uc.repo.RemoveTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete RemoveTask: %v", err)
		return err
	}
	return nil
}
