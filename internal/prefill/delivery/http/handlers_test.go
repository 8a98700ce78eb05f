package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/middleware"
	"lifeplanner/internal/model"
	"lifeplanner/internal/prefill"
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

type mockUseCase struct {
	draft     prefill.TemplateDraft
	templates []prefill.Template
	addErr    error
	removedID string
}

func (m *mockUseCase) Prefill(ctx context.Context, templateName string) prefill.TemplateDraft {
	return m.draft
}

func (m *mockUseCase) Templates(ctx context.Context) []prefill.Template {
	return m.templates
}

func (m *mockUseCase) AddTemplate(ctx context.Context, name string) (prefill.Template, error) {
	if m.addErr != nil {
		return prefill.Template{}, m.addErr
	}
	return prefill.Template{ID: "new-id", Name: name}, nil
}

func (m *mockUseCase) RemoveTemplate(ctx context.Context, id string) {
	m.removedID = id
}

func newTestRouter(uc prefill.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, identity.NewStaticProvider(), 60)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPrefillHandler(t *testing.T) {
	t.Run("draft omits absent fields", func(t *testing.T) {
		cat := model.CategoryWork
		uc := &mockUseCase{draft: prefill.TemplateDraft{TaskName: "Meeting", Category: &cat}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/templates/prefill", `{"template_name":"Meeting"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Data["task_name"] != "Meeting" || resp.Data["category"] != "Work" {
			t.Errorf("data = %v", resp.Data)
		}
		if _, ok := resp.Data["start_time"]; ok {
			t.Error("absent start_time must be omitted")
		}
	})

	t.Run("missing template name is 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/templates/prefill", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestTemplateHandlers(t *testing.T) {
	t.Run("list renders the registry", func(t *testing.T) {
		uc := &mockUseCase{templates: []prefill.Template{{ID: "1", Name: "Homework"}}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/templates", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"Homework"`) {
			t.Errorf("body %q missing template", w.Body.String())
		}
	})

	t.Run("duplicate template is 400", func(t *testing.T) {
		uc := &mockUseCase{addErr: prefill.ErrDuplicateTemplate}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/templates", `{"name":"Yoga"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), prefill.ErrDuplicateTemplate.Error()) {
			t.Errorf("body %q missing duplicate message", w.Body.String())
		}
	})

	t.Run("remove forwards the id", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodDelete, "/api/v1/templates/3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if uc.removedID != "3" {
			t.Errorf("removed id = %q, want 3", uc.removedID)
		}
	})
}
