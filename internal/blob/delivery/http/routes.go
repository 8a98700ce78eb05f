package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/middleware"
)

// RegisterRoutes maps the attachment upload route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/attachments", mw.Auth(), h.Upload)
}
