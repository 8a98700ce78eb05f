package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// prefill route is additionally rate limited: each call may cost an
// upstream suggestion request.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	templates := rg.Group("/templates")
	{
		templates.GET("", mw.Auth(), h.List)
		templates.POST("", mw.Auth(), h.Add)
		templates.DELETE("/:id", mw.Auth(), h.Remove)
		templates.POST("/prefill", mw.Auth(), mw.PrefillRateLimit(), h.Prefill)
	}
}
