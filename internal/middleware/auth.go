package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/model"
	"lifeplanner/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the request identity and stores its scope in the gin
// context. The credential is a Bearer token, or the X-User-ID header
// when no Authorization header is present. Any other Authorization
// scheme is rejected, not treated as a credential. Unresolvable
// requests are aborted with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var credential string
		switch authz := strings.TrimSpace(c.GetHeader("Authorization")); {
		case authz == "":
			credential = strings.TrimSpace(c.GetHeader("X-User-ID"))
		case strings.HasPrefix(authz, "Bearer "):
			credential = strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		}

		sc, err := m.provider.Identify(c.Request.Context(), credential)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth Identify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth. The zero scope
// means the request never passed through Auth.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
