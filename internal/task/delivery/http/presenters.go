package http

import (
	"errors"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/internal/task"
	"lifeplanner/pkg/response"
)

// ClockFormat is the wire format for a time-of-day field ("HH:MM").
const ClockFormat = "15:04"

var errInvalidClock = errors.New("time must be in HH:MM format")

// parseClock parses an optional "HH:MM" string. Empty means the field
// was not chosen; nil is returned so validation can report it missing.
func parseClock(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return nil, errInvalidClock
	}
	return &t, nil
}

// --- Request DTOs ---

type createReq struct {
	TaskName      string `json:"task_name"`
	Notes         string `json:"notes"`
	Category      string `json:"category"       binding:"omitempty,oneof=Work Personal"`
	Priority      string `json:"priority"       binding:"omitempty,oneof=Low Medium High"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ReminderTime  string `json:"reminder_time"`
	Location      string `json:"location"`
	AttachmentURL string `json:"attachment_url"`
}

func (r createReq) toInput() (task.CreateTaskInput, error) {
	start, err := parseClock(r.StartTime)
	if err != nil {
		return task.CreateTaskInput{}, err
	}
	end, err := parseClock(r.EndTime)
	if err != nil {
		return task.CreateTaskInput{}, err
	}
	reminder, err := parseClock(r.ReminderTime)
	if err != nil {
		return task.CreateTaskInput{}, err
	}
	return task.CreateTaskInput{
		TaskName:      r.TaskName,
		Notes:         r.Notes,
		Category:      model.Category(r.Category),
		Priority:      model.Priority(r.Priority),
		Day:           r.Day,
		StartClock:    start,
		EndClock:      end,
		ReminderClock: reminder,
		Location:      r.Location,
		AttachmentURL: r.AttachmentURL,
	}, nil
}

// ---

type listReq struct {
	Day string `form:"day" binding:"required"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{Day: r.Day}
}

// ---

// updateReq is a tagged partial update: absent fields stay untouched.
// Timestamps are full RFC 3339 values, not clocks, since an update can
// move a task to another day.
type updateReq struct {
	ID            string     `json:"-"` // populated from URI param
	TaskName      *string    `json:"task_name"`
	Notes         *string    `json:"notes"`
	Category      *string    `json:"category" binding:"omitempty,oneof=Work Personal"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status        *string    `json:"status"   binding:"omitempty,oneof=pending completed"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	ReminderTime  *time.Time `json:"reminder_time"`
	Location      *string    `json:"location"`
	AttachmentURL *string    `json:"attachment_url"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	in := task.UpdateTaskInput{
		ID:            r.ID,
		TaskName:      r.TaskName,
		Notes:         r.Notes,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ReminderTime:  r.ReminderTime,
		Location:      r.Location,
		AttachmentURL: r.AttachmentURL,
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := model.Status(*r.Status)
		in.Status = &s
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID            string             `json:"id"`
	OwnerID       string             `json:"owner_id"`
	TaskName      string             `json:"task_name"`
	Notes         string             `json:"notes,omitempty"`
	Category      string             `json:"category"`
	Priority      string             `json:"priority"`
	Status        string             `json:"status"`
	StartTime     response.DateTime  `json:"start_time"`
	EndTime       response.DateTime  `json:"end_time"`
	ReminderTime  *response.DateTime `json:"reminder_time,omitempty"`
	Location      string             `json:"location,omitempty"`
	AttachmentURL string             `json:"attachment_url,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:            t.ID,
		OwnerID:       t.OwnerID,
		TaskName:      t.TaskName,
		Notes:         t.Notes,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		StartTime:     response.DateTime(t.StartTime),
		EndTime:       response.DateTime(t.EndTime),
		Location:      t.Location,
		AttachmentURL: t.AttachmentURL,
	}
	if t.ReminderTime != nil {
		r := response.DateTime(*t.ReminderTime)
		resp.ReminderTime = &r
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type distributionResp struct {
	WorkMinutes     float64 `json:"work_minutes"`
	PersonalMinutes float64 `json:"personal_minutes"`
	Signal          string  `json:"signal"`
	Message         string  `json:"message,omitempty"`
}

func (h *handler) newDistributionResp(d task.Distribution) distributionResp {
	return distributionResp{
		WorkMinutes:     d.WorkMinutes,
		PersonalMinutes: d.PersonalMinutes,
		Signal:          string(d.Signal),
		Message:         d.Message,
	}
}
