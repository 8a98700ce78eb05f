package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/middleware"
	"lifeplanner/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Validates the draft and persists a new task for the current identity.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task draft"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.ScopeFromContext(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List a day's tasks
// @Description Returns the current identity's tasks starting on the given day, ordered by start time.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       day query string true "Calendar day (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListForDay(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Merges the present fields into the stored task. Absent fields are untouched.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, middleware.ScopeFromContext(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task by ID. Deleting a missing task succeeds.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Distribution godoc
// @Summary     Day's time distribution
// @Description Aggregates the day's tasks into Work/Personal minutes and a balance signal.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       day query string true "Calendar day (YYYY-MM-DD)"
// @Success     200 {object} distributionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/distribution [GET]
func (h *handler) Distribution(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	dist, err := h.uc.DistributionForDay(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DistributionForDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDistributionResp(dist))
}
