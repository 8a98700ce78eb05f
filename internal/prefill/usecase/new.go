package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifeplanner/internal/prefill"
	pkgLog "lifeplanner/pkg/log"
	"lifeplanner/pkg/openai"
)

type implUseCase struct {
	l     pkgLog.Logger
	ai    *openai.Client
	cache *expirable.LRU[string, prefill.TemplateDraft]
	nowFn func() time.Time

	mu        sync.Mutex
	templates []prefill.Template
}

// New creates a new prefill UseCase seeded with the standard templates.
// cacheSize bounds the per-template draft cache; entries expire after
// cacheTTL.
func New(l pkgLog.Logger, ai *openai.Client, cacheSize int, cacheTTL time.Duration) *implUseCase {
	return &implUseCase{
		l:         l,
		ai:        ai,
		cache:     expirable.NewLRU[string, prefill.TemplateDraft](cacheSize, nil, cacheTTL),
		nowFn:     time.Now,
		templates: defaultTemplates(),
	}
}
