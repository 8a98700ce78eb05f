package usecase

import (
	"context"
	"fmt"

	"lifeplanner/internal/model"
	repo "lifeplanner/internal/task/repository"
	"lifeplanner/pkg/daytime"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing. Tasks are kept in insertion order so
// list tests can assert on store order independently of sorting.
type mockRepository struct {
	tasks    []model.Task
	nextID   int
	queryErr error
	patchErr error
}

func (m *mockRepository) InsertTask(ctx context.Context, opt repo.InsertTaskOptions) (model.Task, error) {
	m.nextID++
	t := opt.Task
	t.ID = fmt.Sprintf("task-%d", m.nextID)
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepository) QueryAllTasks(ctx context.Context) ([]model.Task, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockRepository) PatchTask(ctx context.Context, id string, opt repo.PatchTaskOptions) error {
	if m.patchErr != nil {
		return m.patchErr
	}
	for i, t := range m.tasks {
		if t.ID != id {
			continue
		}
		if opt.TaskName != nil {
			t.TaskName = *opt.TaskName
		}
		if opt.Notes != nil {
			t.Notes = *opt.Notes
		}
		if opt.Category != nil {
			t.Category = *opt.Category
		}
		if opt.Priority != nil {
			t.Priority = *opt.Priority
		}
		if opt.Status != nil {
			t.Status = *opt.Status
		}
		if opt.StartTime != nil {
			t.StartTime = *opt.StartTime
		}
		if opt.EndTime != nil {
			t.EndTime = *opt.EndTime
		}
		if opt.ReminderTime != nil {
			t.ReminderTime = opt.ReminderTime
		}
		if opt.Location != nil {
			t.Location = *opt.Location
		}
		if opt.AttachmentURL != nil {
			t.AttachmentURL = *opt.AttachmentURL
		}
		m.tasks[i] = t
		return nil
	}
	return repo.ErrTaskNotExists
}

func (m *mockRepository) RemoveTask(ctx context.Context, id string) error {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestUseCase(r repo.Repository) *implUseCase {
	merger, err := daytime.NewMerger("UTC")
	if err != nil {
		panic(err)
	}
	return New(&mockLogger{}, r, merger, nil, "", "UTC")
}
