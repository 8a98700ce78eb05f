package usecase

import (
	"strings"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
)

// validateDraft runs the fixed ordered checks over a creation draft and
// returns the canonical task on success. Exactly one error is reported
// per attempt: name, then day, then start, then end, then the range
// check. Timestamps are normalized to UTC.
func (uc *implUseCase) validateDraft(input task.CreateTaskInput) (model.Task, error) {
	if strings.TrimSpace(input.TaskName) == "" {
		return model.Task{}, task.ErrMissingName
	}
	if strings.TrimSpace(input.Day) == "" {
		return model.Task{}, task.ErrMissingDate
	}
	day, err := uc.merger.ParseDay(input.Day)
	if err != nil {
		return model.Task{}, task.ErrMissingDate
	}
	if input.StartClock == nil {
		return model.Task{}, task.ErrMissingStartTime
	}
	if input.EndClock == nil {
		return model.Task{}, task.ErrMissingEndTime
	}

	start := uc.merger.Merge(day, *input.StartClock)
	end := uc.merger.Merge(day, *input.EndClock)
	if !end.After(start) {
		// Equal endpoints are rejected too: a task occupies time.
		return model.Task{}, task.ErrInvalidTimeRange
	}

	var reminder *time.Time
	if input.ReminderClock != nil {
		r := uc.merger.Merge(day, *input.ReminderClock).UTC()
		reminder = &r
	}

	category := input.Category
	if category == "" {
		category = model.CategoryWork
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return model.Task{
		TaskName:      strings.TrimSpace(input.TaskName),
		Notes:         input.Notes,
		Category:      category,
		Priority:      priority,
		Status:        model.StatusPending,
		StartTime:     start.UTC(),
		EndTime:       end.UTC(),
		ReminderTime:  reminder,
		Location:      input.Location,
		AttachmentURL: input.AttachmentURL,
	}, nil
}
