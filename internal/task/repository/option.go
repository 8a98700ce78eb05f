package repository

import (
	"time"

	"lifeplanner/internal/model"
)

// InsertTaskOptions holds the new document's fields. Task.ID is
// ignored; the store assigns one.
type InsertTaskOptions struct {
	Task model.Task
}

// PatchTaskOptions holds a tagged partial update: nil fields are left
// untouched in the stored document.
type PatchTaskOptions struct {
	TaskName      *string
	Notes         *string
	Category      *model.Category
	Priority      *model.Priority
	Status        *model.Status
	StartTime     *time.Time
	EndTime       *time.Time
	ReminderTime  *time.Time
	Location      *string
	AttachmentURL *string
}
