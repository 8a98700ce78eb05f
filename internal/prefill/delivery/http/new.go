package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/prefill"
	"lifeplanner/pkg/log"
)

// Handler is the public interface for the prefill HTTP delivery layer.
type Handler interface {
	Prefill(c *gin.Context)
	List(c *gin.Context)
	Add(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc prefill.UseCase
}

// New creates a new HTTP handler for the prefill domain.
func New(l log.Logger, uc prefill.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
