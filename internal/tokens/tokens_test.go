package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vitalwatch/backend/pkg/middleware"
)

const testSecret = "testsecret123456789012345678901234"

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	p := &middleware.Principal{UID: "user-1", Email: "user1@example.com"}
	tok, err := GenerateAccessToken(testSecret, p, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := NewHSVerifier(testSecret).Verify(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, p.UID, got.UID)
	require.Equal(t, p.Email, got.Email)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	p := &middleware.Principal{UID: "user-1"}
	tok, err := GenerateAccessToken(testSecret, p, 15*time.Minute)
	require.NoError(t, err)

	_, err = NewHSVerifier("a-different-secret-entirely-000000").Verify(context.Background(), tok)
	require.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	p := &middleware.Principal{UID: "user-1"}
	tok, err := GenerateAccessToken(testSecret, p, -1*time.Minute)
	require.NoError(t, err)

	_, err = NewHSVerifier(testSecret).Verify(context.Background(), tok)
	require.Error(t, err)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	_, err := NewHSVerifier(testSecret).Verify(context.Background(), "not.a.jwt")
	require.Error(t, err)
}
