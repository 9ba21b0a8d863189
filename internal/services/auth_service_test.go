package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/models"
	"wallet-api/internal/repositories"
	"wallet-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// AuthServiceSuite defines the test suite for AuthServiceInterface
type AuthServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *repository_mocks.MockUserRepositoryInterface
	service  AuthServiceInterface
	testUser *models.User
	password string
}

// SetupTest runs before each test in the suite
func (s *AuthServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)

	tokenService := NewTokenService(&config.JWTConfig{
		Secret:        "test-secret-key",
		Issuer:        "wallet-api-test",
		TokenDuration: time.Hour,
	})
	s.service = NewAuthService(s.userRepo, tokenService, slog.Default())

	s.password = "correct-horse-battery"
	hash, err := HashPassword(s.password)
	s.Require().NoError(err)

	s.testUser = &models.User{
		ID:           1,
		Email:        "maria@example.com",
		PasswordHash: hash,
		FirstName:    "Maria",
		LastName:     "Gomez",
		Role:         models.RoleUser,
	}
}

// TearDownTest runs after each test in the suite
func (s *AuthServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAuthServiceSuite runs the test suite
func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestLogin_Success() {
	s.userRepo.EXPECT().GetByEmail(s.testUser.Email).Return(s.testUser, nil)

	token, user, err := s.service.Login(s.testUser.Email, s.password)
	s.NoError(err)
	s.NotEmpty(token)
	s.Equal(s.testUser.ID, user.ID)
}

func (s *AuthServiceSuite) TestLogin_WrongPassword() {
	s.userRepo.EXPECT().GetByEmail(s.testUser.Email).Return(s.testUser, nil)

	token, user, err := s.service.Login(s.testUser.Email, "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Empty(token)
	s.Nil(user)
}

func (s *AuthServiceSuite) TestLogin_UnknownEmail() {
	s.userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, repositories.ErrUserNotFound)

	token, user, err := s.service.Login("nobody@example.com", s.password)
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Empty(token)
	s.Nil(user)
}

func (s *AuthServiceSuite) TestLogin_RepositoryError() {
	s.userRepo.EXPECT().GetByEmail(s.testUser.Email).Return(nil, errors.New("connection refused"))

	token, user, err := s.service.Login(s.testUser.Email, s.password)
	s.Error(err)
	s.NotErrorIs(err, ErrInvalidCredentials)
	s.Empty(token)
	s.Nil(user)
}

func (s *AuthServiceSuite) TestHashPassword() {
	hash, err := HashPassword("some-password")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("some-password", hash)
}
