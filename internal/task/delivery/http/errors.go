package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/identity"
	"lifeplanner/internal/task"
	"lifeplanner/pkg/response"
)

// respondError translates domain errors into the HTTP envelope.
// Validation failures keep their exact message: the client shows it
// verbatim as the single alert for the attempt.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrMissingName),
		errors.Is(err, task.ErrMissingDate),
		errors.Is(err, task.ErrMissingStartTime),
		errors.Is(err, task.ErrMissingEndTime),
		errors.Is(err, task.ErrInvalidTimeRange):
		response.Error(c, err)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, identity.ErrNotAuthenticated):
		response.Unauthorized(c)
	default:
		response.InternalError(c)
	}
}
