package usecase

import (
	"context"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
	repo "lifeplanner/internal/task/repository"
	"lifeplanner/pkg/gcalendar"
)

// Create validates the draft, stamps ownership from the scope, and
// persists a new task. A reminder event is scheduled on a best-effort
// basis; its failure never fails the create.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if sc.UserID == "" {
		return task.CreateTaskOutput{}, identity.ErrNotAuthenticated
	}

	validated, err := uc.validateDraft(input)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}
	validated.OwnerID = sc.UserID

	created, err := uc.repo.InsertTask(ctx, repo.InsertTaskOptions{Task: validated})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.tryScheduleReminder(ctx, created)

	return task.CreateTaskOutput{Task: created}, nil
}

// tryScheduleReminder creates a calendar event for tasks that carry a
// reminder time. Best-effort: a nil client or an API failure only logs.
func (uc *implUseCase) tryScheduleReminder(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.ReminderTime == nil {
		return
	}

	_, err := uc.calendar.CreateReminderEvent(ctx, gcalendar.ReminderEventRequest{
		CalendarID:  uc.calendarID,
		Title:       "Reminder: " + t.TaskName,
		Description: t.Notes,
		StartTime:   *t.ReminderTime,
		EndTime:     t.EndTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create CreateReminderEvent: %v", err)
	}
}
