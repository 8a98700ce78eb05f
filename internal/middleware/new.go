package middleware

import (
	"lifeplanner/internal/identity"
	"lifeplanner/pkg/log"
)

type Middleware struct {
	l           log.Logger
	provider    identity.Provider
	rateLimiter *rateLimiter
}

// New creates the HTTP middleware set. prefillPerMin caps prefill
// requests per identity per minute.
func New(l log.Logger, provider identity.Provider, prefillPerMin int) Middleware {
	return Middleware{
		l:           l,
		provider:    provider,
		rateLimiter: newRateLimiter(prefillPerMin),
	}
}
