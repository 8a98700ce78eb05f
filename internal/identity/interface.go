package identity

import (
	"context"
	"errors"

	"lifeplanner/internal/model"
)

// ErrNotAuthenticated is the fatal precondition failure for every task
// operation. It is never retried by the engine.
var ErrNotAuthenticated = errors.New("not authenticated")

// Provider resolves the current identity from a request credential.
// Implementations return ErrNotAuthenticated when the credential is
// missing or invalid.
type Provider interface {
	Identify(ctx context.Context, credential string) (model.Scope, error)
}
