package identity

import (
	"context"
	"fmt"

	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"lifeplanner/internal/model"
)

// GoogleProvider verifies Google OAuth2 access tokens against the
// tokeninfo endpoint and uses the Google user id as the identity.
type GoogleProvider struct {
	service *oauth2api.Service
}

// NewGoogleProvider creates a tokeninfo-backed Provider.
func NewGoogleProvider(ctx context.Context) (*GoogleProvider, error) {
	svc, err := oauth2api.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}
	return &GoogleProvider{service: svc}, nil
}

// Identify validates the access token and returns the owning user's scope.
func (p *GoogleProvider) Identify(ctx context.Context, credential string) (model.Scope, error) {
	if credential == "" {
		return model.Scope{}, ErrNotAuthenticated
	}

	info, err := p.service.Tokeninfo().AccessToken(credential).Context(ctx).Do()
	if err != nil || info.UserId == "" {
		return model.Scope{}, ErrNotAuthenticated
	}

	return model.Scope{UserID: info.UserId}, nil
}
