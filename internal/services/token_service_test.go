package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService("test-secret", 7*24*time.Hour)

	token, err := svc.Issue(42, "alice_92")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, userID, err := svc.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
	require.Equal(t, "alice_92", claims.Username)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(1, "alice")
	require.NoError(t, err)

	_, _, err = verifier.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return issued })

	token, err := svc.Issue(1, "alice")
	require.NoError(t, err)

	// Still valid just before expiry
	svc.SetClock(func() time.Time { return issued.Add(59 * time.Minute) })
	_, _, err = svc.Parse(token)
	require.NoError(t, err)

	// Invalid after expiry
	svc.SetClock(func() time.Time { return issued.Add(2 * time.Hour) })
	_, _, err = svc.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, _, err := svc.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = svc.Parse("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
