package usecase

import (
	"strings"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/internal/prefill"
)

// parseDraft scans the suggestion text for the four field markers and
// builds a draft from whatever validates. Missing or malformed fields
// are simply left absent; the category is then inferred from the
// template name when the text carried none.
func parseDraft(templateName, text string) prefill.TemplateDraft {
	draft := prefill.TemplateDraft{TaskName: templateName}

	if v := extractField(text, markerStartTime); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			draft.StartTime = &ts
		}
	}
	if v := extractField(text, markerEndTime); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			draft.EndTime = &ts
		}
	}
	if v := extractField(text, markerPriority); v != "" {
		switch p := model.Priority(v); p {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
			draft.Priority = &p
		}
	}
	if v := extractField(text, markerCategory); v != "" {
		switch c := model.Category(v); c {
		case model.CategoryWork, model.CategoryPersonal:
			draft.Category = &c
		}
	}

	if draft.Category == nil {
		c := inferCategory(templateName)
		draft.Category = &c
	}
	return draft
}

// extractField returns the trimmed text between the marker and the
// next comma, newline, or end of text. Empty when the marker is absent.
func extractField(text, marker string) string {
	i := strings.Index(text, marker)
	if i < 0 {
		return ""
	}
	rest := text[i+len(marker):]
	if j := strings.IndexAny(rest, ",\n"); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}

func inferCategory(templateName string) model.Category {
	for _, n := range workTemplateNames {
		if n == templateName {
			return model.CategoryWork
		}
	}
	for _, n := range personalTemplateNames {
		if n == templateName {
			return model.CategoryPersonal
		}
	}
	return model.CategoryPersonal
}
