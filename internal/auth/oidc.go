package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/vitalwatch/backend/pkg/middleware"
)

// securetokenIssuer is the OIDC issuer the provider uses for ID tokens.
const securetokenIssuer = "https://securetoken.google.com/"

// OIDCVerifier validates ID tokens against the project's securetoken issuer
// via standard OIDC discovery. It needs only the project id, which makes it
// the fallback for deployments without service-account credentials.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier creates a verifier for the given provider project.
func NewOIDCVerifier(ctx context.Context, projectID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, securetokenIssuer+projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: projectID}),
	}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, raw string) (*middleware.Principal, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}
	return &middleware.Principal{UID: idToken.Subject, Email: claims.Email}, nil
}
