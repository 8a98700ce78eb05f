package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/blob"
	"lifeplanner/pkg/log"
)

// Handler is the public interface for the attachment HTTP delivery layer.
type Handler interface {
	Upload(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store blob.Store
}

// New creates a new HTTP handler for attachment uploads.
func New(l log.Logger, store blob.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
