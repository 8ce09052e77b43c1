package auth

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/vitalwatch/backend/pkg/middleware"
)

// FirebaseVerifier validates ID tokens with the provider Admin SDK. Every
// request re-verifies; verification results are never cached.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, raw string) (*middleware.Principal, error) {
	tok, err := v.client.VerifyIDToken(ctx, raw)
	if err != nil {
		return nil, err
	}
	email, _ := tok.Claims["email"].(string)
	return &middleware.Principal{UID: tok.UID, Email: email}, nil
}
