package task

import (
	"time"

	"lifeplanner/internal/model"
)

// CreateTaskInput is the unvalidated draft collected by the creation
// flow. Day is the selected calendar day ("YYYY-MM-DD"); the clock
// fields carry only their time-of-day portion and are merged with Day
// during validation. Nil clocks mean "not chosen yet".
type CreateTaskInput struct {
	TaskName      string
	Notes         string
	Category      model.Category
	Priority      model.Priority
	Day           string
	StartClock    *time.Time
	EndClock      *time.Time
	ReminderClock *time.Time
	Location      string
	AttachmentURL string
}

// UpdateTaskInput is a tagged partial update: only non-nil fields are
// merged into the stored document. Invariants are not re-validated —
// callers own that (completing a task only ever sets Status).
type UpdateTaskInput struct {
	ID            string
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

// ListTasksInput selects a calendar day ("YYYY-MM-DD").
type ListTasksInput struct {
	Day string
}

// CreateTaskOutput carries the stored task, including its assigned id.
type CreateTaskOutput struct {
	Task model.Task
}

// ListTasksOutput is the day's tasks for the current identity,
// ordered by start time.
type ListTasksOutput struct {
	Tasks []model.Task
}

// Signal is the qualitative work-life balance classification for a
// day's distribution.
type Signal string

const (
	SignalNone          Signal = "none"
	SignalFavorSelfCare Signal = "favor_self_care"
	SignalEncouragement Signal = "encouragement"
)

// Distribution is the per-category breakdown of a day's tasks.
// Minutes are exact floats, never rounded.
type Distribution struct {
	WorkMinutes     float64
	PersonalMinutes float64
	Signal          Signal
	Message         string
}
