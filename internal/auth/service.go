package auth

import (
	"context"
	"errors"
	"fmt"

	"qrcode-api/internal/logging"
	"qrcode-api/internal/preferences"
	"qrcode-api/internal/user"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Service handles registration and login
type Service struct {
	userRepo  *user.Repository
	prefsRepo *preferences.Repository
	tokens    *TokenService
	logger    *logging.Logger
}

func NewService(userRepo *user.Repository, prefsRepo *preferences.Repository, tokens *TokenService, logger *logging.Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register hashes the password and creates the user record. A duplicate
// email surfaces as user.ErrDuplicateEmail; the caller decides how to
// present it. The account also gets its preferences row seeded so later
// saves have a row to update.
func (s *Service) Register(ctx context.Context, email, password string) (*user.User, error) {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.userRepo.Create(ctx, email, passwordHash)
	if err != nil {
		return nil, err
	}

	if err := s.prefsRepo.Create(ctx, preferences.NewDefaults(newUser.ID)); err != nil {
		// The account exists; a missing preferences row only means saves
		// will fail until it is repaired.
		s.logger.Warn("failed to seed default preferences", "user_id", newUser.ID, "error", err.Error())
	}

	return newUser, nil
}

// Login verifies the credentials and issues a session token with the
// user's email as subject.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !CheckPassword(existingUser.PasswordHash, password) {
		return "", ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(existingUser.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return token, nil
}
