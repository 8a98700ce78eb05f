package bolt

import (
	"time"

	"lifeplanner/internal/model"
)

// taskDoc is the persisted record shape. Timestamps are stored as
// ISO 8601 strings in UTC.
type taskDoc struct {
	OwnerID       string  `json:"ownerId"`
	TaskName      string  `json:"taskName"`
	Notes         string  `json:"notes"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ReminderTime  *string `json:"reminderTime"`
	Location      string  `json:"location"`
	AttachmentURL string  `json:"attachmentUrl"`
}

func encodeDoc(t model.Task) taskDoc {
	doc := taskDoc{
		OwnerID:       t.OwnerID,
		TaskName:      t.TaskName,
		Notes:         t.Notes,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		StartTime:     t.StartTime.UTC().Format(time.RFC3339),
		EndTime:       t.EndTime.UTC().Format(time.RFC3339),
		Location:      t.Location,
		AttachmentURL: t.AttachmentURL,
	}
	if t.ReminderTime != nil {
		s := t.ReminderTime.UTC().Format(time.RFC3339)
		doc.ReminderTime = &s
	}
	return doc
}

func decodeDoc(id string, doc taskDoc) (model.Task, error) {
	start, err := time.Parse(time.RFC3339, doc.StartTime)
	if err != nil {
		return model.Task{}, err
	}
	end, err := time.Parse(time.RFC3339, doc.EndTime)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:            id,
		OwnerID:       doc.OwnerID,
		TaskName:      doc.TaskName,
		Notes:         doc.Notes,
		Category:      model.Category(doc.Category),
		Priority:      model.Priority(doc.Priority),
		Status:        model.Status(doc.Status),
		StartTime:     start,
		EndTime:       end,
		Location:      doc.Location,
		AttachmentURL: doc.AttachmentURL,
	}
	if doc.ReminderTime != nil {
		reminder, rErr := time.Parse(time.RFC3339, *doc.ReminderTime)
		if rErr != nil {
			return model.Task{}, rErr
		}
		t.ReminderTime = &reminder
	}
	return t, nil
}
