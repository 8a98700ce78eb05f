package http

import (
	"lifeplanner/internal/prefill"
	"lifeplanner/pkg/response"
)

// --- Request DTOs ---

type prefillReq struct {
	TemplateName string `json:"template_name" binding:"required"`
}

type addTemplateReq struct {
	Name string `json:"name"`
}

// --- Response DTOs ---

type templateResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listResp struct {
	Templates []templateResp `json:"templates"`
}

func (h *handler) newListResp(templates []prefill.Template) listResp {
	out := make([]templateResp, len(templates))
	for i, t := range templates {
		out[i] = templateResp{ID: t.ID, Name: t.Name}
	}
	return listResp{Templates: out}
}

// draftResp mirrors TemplateDraft: nil fields are omitted so the
// client leaves those inputs blank.
type draftResp struct {
	TaskName  string             `json:"task_name"`
	StartTime *response.DateTime `json:"start_time,omitempty"`
	EndTime   *response.DateTime `json:"end_time,omitempty"`
	Priority  *string            `json:"priority,omitempty"`
	Category  *string            `json:"category,omitempty"`
}

func (h *handler) newDraftResp(d prefill.TemplateDraft) draftResp {
	resp := draftResp{TaskName: d.TaskName}
	if d.StartTime != nil {
		s := response.DateTime(*d.StartTime)
		resp.StartTime = &s
	}
	if d.EndTime != nil {
		s := response.DateTime(*d.EndTime)
		resp.EndTime = &s
	}
	if d.Priority != nil {
		s := string(*d.Priority)
		resp.Priority = &s
	}
	if d.Category != nil {
		s := string(*d.Category)
		resp.Category = &s
	}
	return resp
}
