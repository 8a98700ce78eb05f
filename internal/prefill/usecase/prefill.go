package usecase

import (
	"context"
	"fmt"

	"lifeplanner/internal/model"
	"lifeplanner/internal/prefill"
	"lifeplanner/pkg/openai"
)

// Prefill produces a task draft for the given template name. Drafts
// are cached per template; a cache hit never re-queries the suggestion
// service. Upstream failure falls back to a fixed draft starting now —
// this path never returns an error.
func (uc *implUseCase) Prefill(ctx context.Context, templateName string) prefill.TemplateDraft {
	if draft, ok := uc.cache.Get(templateName); ok {
		return draft
	}

	resp, err := uc.ai.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptFormat, templateName)},
		},
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Prefill CreateChatCompletion: %v", err)
		return uc.fallbackDraft(templateName)
	}

	draft := parseDraft(templateName, resp.Text())
	uc.cache.Add(templateName, draft)
	return draft
}

// fallbackDraft is the draft handed out when no suggestion could be
// fetched: the template name as-is, a one-hour box starting now,
// medium priority, personal category. Fallbacks are not cached so the
// next request tries upstream again.
func (uc *implUseCase) fallbackDraft(templateName string) prefill.TemplateDraft {
	now := uc.nowFn()
	end := now.Add(fallbackDuration)
	priority := model.PriorityMedium
	category := model.CategoryPersonal
	return prefill.TemplateDraft{
		TaskName:  templateName,
		StartTime: &now,
		EndTime:   &end,
		Priority:  &priority,
		Category:  &category,
	}
}
