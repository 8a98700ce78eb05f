package repository

import (
	"context"

	"lifeplanner/internal/model"
)

// Repository is the document-store contract for the task collection.
// It deliberately offers no server-side filtering: QueryAllTasks
// returns every document and callers filter in memory, so any backend
// (including ones without predicate queries) can satisfy it.
type Repository interface {
	// InsertTask assigns an id and writes a new document.
	InsertTask(ctx context.Context, opt InsertTaskOptions) (model.Task, error)

	// QueryAllTasks reads every document in the collection.
	QueryAllTasks(ctx context.Context) ([]model.Task, error)

	// PatchTask merges the present fields into the document matching id.
	// Returns ErrTaskNotExists when there is no such document.
	PatchTask(ctx context.Context, id string, opt PatchTaskOptions) error

	// RemoveTask deletes the document matching id. Removing a missing
	// id is a no-op, not an error.
	RemoveTask(ctx context.Context, id string) error
}
