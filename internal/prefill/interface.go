package prefill

import "context"

// UseCase manages the template registry and AI-assisted task prefill.
type UseCase interface {
	// Prefill produces a task draft for the given template name. It
	// never fails: when the suggestion service is unreachable, a fixed
	// fallback draft starting now is returned instead.
	Prefill(ctx context.Context, templateName string) TemplateDraft

	// Templates returns the current registry in insertion order.
	Templates(ctx context.Context) []Template

	// AddTemplate registers a new template. The name is title-cased
	// word by word; duplicates are detected case-insensitively.
	AddTemplate(ctx context.Context, name string) (Template, error)

	// RemoveTemplate drops a template by id. Removing a missing id is
	// a no-op.
	RemoveTemplate(ctx context.Context, id string)
}
