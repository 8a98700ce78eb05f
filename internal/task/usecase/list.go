package usecase

import (
	"context"
	"sort"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
)

// ListForDay returns the scope owner's tasks whose start time falls on
// the given calendar day, ordered by start time. A store read failure
// is logged and yields an empty list, not an error: the day view always
// renders.
func (uc *implUseCase) ListForDay(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if sc.UserID == "" {
		return task.ListTasksOutput{}, identity.ErrNotAuthenticated
	}

	day, err := uc.merger.ParseDay(input.Day)
	if err != nil {
		return task.ListTasksOutput{}, task.ErrMissingDate
	}
	dayStart, dayEnd := uc.merger.DayWindow(day)

	all, err := uc.repo.QueryAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForDay QueryAllTasks: %v", err)
		return task.ListTasksOutput{Tasks: []model.Task{}}, nil
	}

	tasks := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.OwnerID != sc.UserID {
			continue
		}
		if t.StartTime.Before(dayStart) || !t.StartTime.Before(dayEnd) {
			continue
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartTime.Before(tasks[j].StartTime)
	})

	return task.ListTasksOutput{Tasks: tasks}, nil
}

// DistributionForDay aggregates the day's tasks into per-category
// durations and a balance signal.
func (uc *implUseCase) DistributionForDay(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.Distribution, error) {
	out, err := uc.ListForDay(ctx, sc, input)
	if err != nil {
		return task.Distribution{}, err
	}
	return task.AnalyzeDistribution(out.Tasks), nil
}
