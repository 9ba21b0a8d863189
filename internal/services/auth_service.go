package services

import (
	"errors"
	"fmt"
	"log/slog"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// authService implements AuthServiceInterface
type authService struct {
	userRepo     repositories.UserRepositoryInterface
	tokenService TokenServiceInterface
	logger       *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepositoryInterface, tokenService TokenServiceInterface, logger *slog.Logger) AuthServiceInterface {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login authenticates a user by email and password and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return token, user, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
