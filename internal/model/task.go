package model

import "time"

// Category splits tasks between the two halves of the day-balance view.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
)

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status is the task lifecycle state. Only these two values exist;
// completion toggles between them.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is a user-defined, time-boxed unit of work or personal activity.
// ID is assigned by the store on insert. OwnerID is stamped from the
// current identity on create and never taken from caller input.
type Task struct {
	ID            string
	OwnerID       string
	TaskName      string
	Notes         string
	Category      Category
	Priority      Priority
	Status        Status
	StartTime     time.Time
	EndTime       time.Time
	ReminderTime  *time.Time // optional, same calendar day as start/end
	Location      string
	AttachmentURL string // opaque URL from the blob store, may be empty
}

// Duration returns the task's time box length.
func (t Task) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}
