package task

import (
	"context"

	"lifeplanner/internal/model"
)

// UseCase is the business logic interface for the task domain. Every
// operation requires an authenticated scope; an empty scope fails with
// identity.ErrNotAuthenticated and is never retried.
type UseCase interface {
	// Create validates the draft, stamps ownership from the scope, and
	// persists a new task. No duplicate detection is performed.
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// ListForDay returns the scope owner's tasks whose start time falls
	// on the given calendar day. Store read failures yield an empty
	// list, indistinguishable from "no tasks".
	ListForDay(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)

	// Update merges the present fields of a partial update into the
	// stored task. Invariants are not re-validated.
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) error

	// Delete removes a task by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// DistributionForDay aggregates the day's tasks into per-category
	// durations and a balance signal. Derived once per call — the
	// caller renders it, it is not recomputed on task mutation.
	DistributionForDay(ctx context.Context, sc model.Scope, input ListTasksInput) (Distribution, error)
}
