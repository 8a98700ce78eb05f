package identity

import (
	"context"
	"strings"

	"lifeplanner/internal/model"
)

// StaticProvider trusts the credential as the user id verbatim.
// Development only; never run this in production.
type StaticProvider struct{}

// NewStaticProvider creates a pass-through Provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Identify returns the credential as the user id.
func (p *StaticProvider) Identify(ctx context.Context, credential string) (model.Scope, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return model.Scope{}, ErrNotAuthenticated
	}
	return model.Scope{UserID: credential}, nil
}
