package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/prefill"
	"lifeplanner/pkg/response"
)

// Prefill godoc
// @Summary     Prefill a task draft from a template
// @Description Produces an AI-suggested task draft. Never fails: when the suggestion service is unreachable a fixed fallback draft is returned.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       body body prefillReq true "Template name"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/templates/prefill [POST]
func (h *handler) Prefill(c *gin.Context) {
	ctx := c.Request.Context()

	var req prefillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	draft := h.uc.Prefill(ctx, req.TemplateName)
	response.OK(c, h.newDraftResp(draft))
}

// List godoc
// @Summary     List templates
// @Description Returns the template registry in insertion order.
// @Tags        Template
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/templates [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.Templates(c.Request.Context())))
}

// Add godoc
// @Summary     Add a template
// @Description Registers a new template. The name is title-cased; duplicates are rejected.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       body body addTemplateReq true "Template name"
// @Success     200 {object} templateResp
// @Failure     400 {object} response.Resp "Empty or duplicate name"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/templates [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	added, err := h.uc.AddTemplate(ctx, req.Name)
	if err != nil {
		if errors.Is(err, prefill.ErrEmptyTemplateName) || errors.Is(err, prefill.ErrDuplicateTemplate) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.AddTemplate: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, templateResp{ID: added.ID, Name: added.Name})
}

// Remove godoc
// @Summary     Remove a template
// @Description Drops a template by ID. Removing a missing template succeeds.
// @Tags        Template
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/templates/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	h.uc.RemoveTemplate(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}
