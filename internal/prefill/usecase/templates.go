package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"lifeplanner/internal/prefill"
)

// Templates returns the current registry in insertion order.
func (uc *implUseCase) Templates(ctx context.Context) []prefill.Template {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]prefill.Template, len(uc.templates))
	copy(out, uc.templates)
	return out
}

// AddTemplate registers a new template. The name is title-cased word
// by word before the case-insensitive duplicate check.
func (uc *implUseCase) AddTemplate(ctx context.Context, name string) (prefill.Template, error) {
	formatted := titleCaseWords(name)
	if formatted == "" {
		return prefill.Template{}, prefill.ErrEmptyTemplateName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, t := range uc.templates {
		if strings.EqualFold(t.Name, formatted) {
			return prefill.Template{}, prefill.ErrDuplicateTemplate
		}
	}

	t := prefill.Template{ID: uuid.NewString(), Name: formatted}
	uc.templates = append(uc.templates, t)
	return t, nil
}

// RemoveTemplate drops a template by id. Missing ids are a no-op.
func (uc *implUseCase) RemoveTemplate(ctx context.Context, id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, t := range uc.templates {
		if t.ID == id {
			uc.templates = append(uc.templates[:i], uc.templates[i+1:]...)
			return
		}
	}
}

// titleCaseWords uppercases the first letter of every space-separated
// word and lowercases the rest: "study session" becomes "Study Session".
func titleCaseWords(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
