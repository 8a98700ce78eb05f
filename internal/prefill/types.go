package prefill

import (
	"time"

	"lifeplanner/internal/model"
)

// Template is a named starting point for task creation.
type Template struct {
	ID   string
	Name string
}

// TemplateDraft is a suggested, unvalidated task draft produced from a
// template. Nil fields mean the suggestion carried nothing usable for
// them; the creation flow leaves those blank for the user. Category is
// always present — it is inferred from the template name whenever the
// suggestion omits it.
type TemplateDraft struct {
	TaskName  string
	StartTime *time.Time
	EndTime   *time.Time
	Priority  *model.Priority
	Category  *model.Category
}
