package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrcode-api/internal/auth"
	"qrcode-api/internal/logging"
	"qrcode-api/internal/preferences"
	"qrcode-api/internal/testutil"
	"qrcode-api/internal/user"
)

func newTestService(t *testing.T) (*auth.Service, *preferences.Repository) {
	t.Helper()

	db := testutil.NewDB(t)
	userRepo := user.NewRepository(db)
	prefsRepo := preferences.NewRepository(db)

	tokens, err := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	require.NoError(t, err)

	return auth.NewService(userRepo, prefsRepo, tokens, logging.NewLogger(true)), prefsRepo
}

func TestRegister(t *testing.T) {
	svc, prefsRepo := newTestService(t)
	ctx := context.Background()

	newUser, err := svc.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", newUser.Email)
	assert.NotEqual(t, "hunter22", newUser.PasswordHash)

	// Registration seeds the preferences row that later saves update.
	prefs, err := prefsRepo.GetByUserID(ctx, newUser.ID)
	require.NoError(t, err)
	assert.Equal(t, "black", prefs.Color)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@example.com", "first")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob@example.com", "second")
	require.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLoginIncorrectPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "right-password")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "carol@example.com", "wrong-password")
	require.ErrorIs(t, err, auth.ErrIncorrectPassword)
}

func TestLoginIssuesTokenWithEmailSubject(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := user.NewRepository(db)
	prefsRepo := preferences.NewRepository(db)
	tokens, err := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	require.NoError(t, err)
	svc := auth.NewService(userRepo, prefsRepo, tokens, logging.NewLogger(true))
	ctx := context.Background()

	_, err = svc.Register(ctx, "dave@example.com", "secret-pw")
	require.NoError(t, err)

	issuedAt := time.Now()
	token, err := svc.Login(ctx, "dave@example.com", "secret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", claims.Subject)
	assert.WithinDuration(t, issuedAt.Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
}
