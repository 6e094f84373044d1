package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenKey = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerify(t *testing.T) {
	svc, err := NewTokenService(testTokenKey, 30*time.Minute)
	require.NoError(t, err)

	before := time.Now()
	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.WithinDuration(t, before.Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, before, claims.IssuedAt, 5*time.Second)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer, err := NewTokenService(testTokenKey, time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService([]byte("ffffffffffffffffffffffffffffffff"), time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("bob@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	svc, err := NewTokenService(testTokenKey, -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("carol@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	svc, err := NewTokenService(testTokenKey, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify("v4.local.not-a-real-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenServiceRejectsBadKeyLength(t *testing.T) {
	_, err := NewTokenService([]byte("short"), time.Hour)
	require.Error(t, err)
}
