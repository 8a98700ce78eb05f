package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/model"
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

type mockProvider struct{}

func (mockProvider) Identify(ctx context.Context, credential string) (model.Scope, error) {
	if credential == "" {
		return model.Scope{}, identity.ErrNotAuthenticated
	}
	return model.Scope{UserID: credential}, nil
}

func newAuthRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := New(&mockLogger{}, mockProvider{}, perMin)
	r := gin.New()
	r.GET("/whoami", m.Auth(), func(c *gin.Context) {
		c.String(http.StatusOK, ScopeFromContext(c).UserID)
	})
	r.GET("/limited", m.Auth(), m.PrefillRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newAuthRouter(60)

	t.Run("bearer token resolves the scope", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer user-1")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "user-1" {
			t.Errorf("user = %q, want user-1", w.Body.String())
		}
	})

	t.Run("falls back to X-User-ID header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-ID", "user-2")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "user-2" {
			t.Errorf("status = %d body = %q, want 200 user-2", w.Code, w.Body.String())
		}
	})

	t.Run("missing credential is 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("non-Bearer scheme is not a credential", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("non-Bearer scheme blocks the X-User-ID fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		req.Header.Set("X-User-ID", "user-2")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestPrefillRateLimit(t *testing.T) {
	t.Run("requests over the burst are rejected with 429", func(t *testing.T) {
		// 10/min gives a burst of 1: the second immediate request trips.
		r := newAuthRouter(10)

		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			req.Header.Set("X-User-ID", "user-1")
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK {
			t.Errorf("first request status = %d, want 200", codes[0])
		}
		if codes[1] != http.StatusTooManyRequests {
			t.Errorf("second request status = %d, want 429", codes[1])
		}
	})

	t.Run("identities are limited independently", func(t *testing.T) {
		r := newAuthRouter(10)

		for _, user := range []string{"user-1", "user-2"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			req.Header.Set("X-User-ID", user)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("first request for %s status = %d, want 200", user, w.Code)
			}
		}
	})
}
