package task_test

import (
	"testing"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
)

func spanTask(category model.Category, minutes int) model.Task {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return model.Task{
		Category:  category,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestAnalyzeDistribution(t *testing.T) {
	t.Run("no tasks", func(t *testing.T) {
		dist := task.AnalyzeDistribution(nil)
		if dist.WorkMinutes != 0 || dist.PersonalMinutes != 0 {
			t.Errorf("expected zero minutes, got %v/%v", dist.WorkMinutes, dist.PersonalMinutes)
		}
		if dist.Signal != task.SignalNone || dist.Message != "" {
			t.Errorf("expected no signal, got %v %q", dist.Signal, dist.Message)
		}
	})

	t.Run("work heavy day favors self care", func(t *testing.T) {
		dist := task.AnalyzeDistribution([]model.Task{
			spanTask(model.CategoryWork, 240),
			spanTask(model.CategoryPersonal, 30),
		})
		if dist.WorkMinutes != 240 || dist.PersonalMinutes != 30 {
			t.Errorf("unexpected minutes: %v/%v", dist.WorkMinutes, dist.PersonalMinutes)
		}
		if dist.Signal != task.SignalFavorSelfCare {
			t.Errorf("expected SignalFavorSelfCare, got %v", dist.Signal)
		}
		if dist.Message != task.MessageFavorSelfCare {
			t.Errorf("unexpected message: %q", dist.Message)
		}
	})

	t.Run("personal heavy day earns encouragement", func(t *testing.T) {
		dist := task.AnalyzeDistribution([]model.Task{
			spanTask(model.CategoryPersonal, 240),
			spanTask(model.CategoryWork, 30),
		})
		if dist.Signal != task.SignalEncouragement {
			t.Errorf("expected SignalEncouragement, got %v", dist.Signal)
		}
	})

	t.Run("equal nonzero totals give no signal", func(t *testing.T) {
		dist := task.AnalyzeDistribution([]model.Task{
			spanTask(model.CategoryWork, 60),
			spanTask(model.CategoryPersonal, 60),
		})
		if dist.Signal != task.SignalNone {
			t.Errorf("expected no signal for a balanced day, got %v", dist.Signal)
		}
	})

	t.Run("unknown categories are excluded, not errors", func(t *testing.T) {
		dist := task.AnalyzeDistribution([]model.Task{
			spanTask(model.Category("Errand"), 500),
			spanTask(model.CategoryWork, 45),
		})
		if dist.WorkMinutes != 45 || dist.PersonalMinutes != 0 {
			t.Errorf("unknown category leaked into totals: %v/%v", dist.WorkMinutes, dist.PersonalMinutes)
		}
	})

	t.Run("sub-minute durations stay fractional", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		dist := task.AnalyzeDistribution([]model.Task{{
			Category:  model.CategoryWork,
			StartTime: start,
			EndTime:   start.Add(90 * time.Second),
		}})
		if dist.WorkMinutes != 1.5 {
			t.Errorf("expected 1.5 minutes, got %v", dist.WorkMinutes)
		}
	})
}
