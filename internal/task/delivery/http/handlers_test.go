package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/middleware"
	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
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

// mockUseCase records the last call and returns canned results.
type mockUseCase struct {
	createInput task.CreateTaskInput
	createErr   error
	listOutput  task.ListTasksOutput
	updateInput task.UpdateTaskInput
	updateErr   error
	deletedID   string
	dist        task.Distribution
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.createInput = input
	if m.createErr != nil {
		return task.CreateTaskOutput{}, m.createErr
	}
	t := model.Task{ID: "task-1", OwnerID: sc.UserID, TaskName: input.TaskName,
		Category: model.CategoryWork, Priority: model.PriorityMedium, Status: model.StatusPending,
		StartTime: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	return task.CreateTaskOutput{Task: t}, nil
}

func (m *mockUseCase) ListForDay(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return m.listOutput, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) error {
	m.updateInput = input
	return m.updateErr
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.deletedID = id
	return nil
}

func (m *mockUseCase) DistributionForDay(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.Distribution, error) {
	return m.dist, nil
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, identity.NewStaticProvider(), 60)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("{}")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("valid body reaches the use case and returns the task", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
			`{"task_name":"Meeting","day":"2024-03-15","start_time":"09:00","end_time":"10:00"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		if uc.createInput.Day != "2024-03-15" {
			t.Errorf("day = %q, want 2024-03-15", uc.createInput.Day)
		}
		if uc.createInput.StartClock == nil || uc.createInput.StartClock.Hour() != 9 {
			t.Errorf("start clock = %v, want 09:00", uc.createInput.StartClock)
		}

		var resp struct {
			Data struct {
				Task struct {
					ID        string `json:"id"`
					StartTime string `json:"start_time"`
				} `json:"task"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Data.Task.ID != "task-1" {
			t.Errorf("id = %q, want task-1", resp.Data.Task.ID)
		}
		if resp.Data.Task.StartTime != "2024-03-15T09:00:00Z" {
			t.Errorf("start = %q, want RFC3339 UTC", resp.Data.Task.StartTime)
		}
	})

	t.Run("validation failure is 400 with the exact message", func(t *testing.T) {
		uc := &mockUseCase{createErr: task.ErrMissingStartTime}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
			`{"task_name":"Meeting","day":"2024-03-15","end_time":"10:00"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), task.ErrMissingStartTime.Error()) {
			t.Errorf("body %q does not carry the validation message", w.Body.String())
		}
	})

	t.Run("malformed clock is 400 before the use case", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
			`{"task_name":"Meeting","day":"2024-03-15","start_time":"nine","end_time":"10:00"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("only present fields are forwarded", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/task-1", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		in := uc.updateInput
		if in.ID != "task-1" {
			t.Errorf("id = %q, want task-1", in.ID)
		}
		if in.Status == nil || *in.Status != model.StatusCompleted {
			t.Errorf("status = %v, want completed", in.Status)
		}
		if in.TaskName != nil || in.StartTime != nil {
			t.Error("absent fields must stay nil")
		}
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		uc := &mockUseCase{updateErr: task.ErrTaskNotFound}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/nope", `{"notes":"x"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/task-9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.deletedID != "task-9" {
		t.Errorf("deleted id = %q, want task-9", uc.deletedID)
	}
}

func TestListHandler(t *testing.T) {
	t.Run("missing day is 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("tasks are rendered with wire timestamps", func(t *testing.T) {
		uc := &mockUseCase{listOutput: task.ListTasksOutput{Tasks: []model.Task{{
			ID: "t1", OwnerID: "user-1", TaskName: "Run",
			Category: model.CategoryPersonal, Priority: model.PriorityLow, Status: model.StatusPending,
			StartTime: time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		}}}}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?day=2024-03-15", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"2024-03-15T07:00:00Z"`) {
			t.Errorf("body %q missing RFC3339 start time", w.Body.String())
		}
	})
}

func TestDistributionHandler(t *testing.T) {
	uc := &mockUseCase{dist: task.Distribution{
		WorkMinutes: 240, PersonalMinutes: 30,
		Signal: task.SignalFavorSelfCare, Message: task.MessageFavorSelfCare,
	}}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/distribution?day=2024-03-15", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Data distributionResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.WorkMinutes != 240 || resp.Data.Signal != "favor_self_care" {
		t.Errorf("got %+v, want 240 work minutes and favor_self_care", resp.Data)
	}
}
