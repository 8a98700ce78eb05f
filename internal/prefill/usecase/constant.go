package usecase

import (
	"time"

	"lifeplanner/internal/prefill"
)

const (
	systemPrompt = "You are an AI assistant that generates task details for a productivity app."

	userPromptFormat = `Generate the following details for the task: %s.
- Start time (ISO 8601 format)
- End time (ISO 8601 format)
- Priority (High, Medium, Low)
- Category (either 'Work' or 'Personal')

Respond with the exact format below:
- Start time: ...
- End time: ...
- Priority: ...
- Category: ...`

	promptTemperature = 0.7
	promptMaxTokens   = 200

	// Duration of the fallback draft's time box.
	fallbackDuration = time.Hour
)

// Field markers the suggestion text is scanned for. Values run from
// the marker to the next comma, newline, or end of text.
const (
	markerStartTime = "Start time:"
	markerEndTime   = "End time:"
	markerPriority  = "Priority:"
	markerCategory  = "Category:"
)

// Template names with a known category. Anything else infers Personal.
var (
	workTemplateNames     = []string{"Homework", "Meeting", "Project Work", "Study Session"}
	personalTemplateNames = []string{"Exercise", "Yoga", "Doctor Appointment", "Shopping"}
)

func defaultTemplates() []prefill.Template {
	return []prefill.Template{
		{ID: "1", Name: "Homework"},
		{ID: "2", Name: "Meeting"},
		{ID: "3", Name: "Exercise"},
		{ID: "4", Name: "Study Session"},
		{ID: "5", Name: "Shopping"},
		{ID: "6", Name: "Yoga"},
		{ID: "7", Name: "Project Work"},
		{ID: "8", Name: "Doctor Appointment"},
	}
}
