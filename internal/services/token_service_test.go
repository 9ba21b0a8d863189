package services

import (
	"testing"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/models"

	"github.com/stretchr/testify/suite"
)

// TokenServiceSuite defines the test suite for TokenServiceInterface
type TokenServiceSuite struct {
	suite.Suite
	service  TokenServiceInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *TokenServiceSuite) SetupTest() {
	s.service = NewTokenService(&config.JWTConfig{
		Secret:        "test-secret-key",
		Issuer:        "wallet-api-test",
		TokenDuration: time.Hour,
	})
	s.testUser = &models.User{
		ID:    1,
		Email: "maria@example.com",
		Role:  models.RoleUser,
	}
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceSuite))
}

func (s *TokenServiceSuite) TestGenerateAndValidateToken() {
	token, err := s.service.GenerateToken(s.testUser)
	s.NoError(err)
	s.NotEmpty(token)

	claims, err := s.service.ValidateToken(token)
	s.NoError(err)
	s.Equal(s.testUser.ID, claims.UserID)
	s.Equal(s.testUser.Email, claims.Email)
	s.Equal(s.testUser.Role, claims.Role)
	s.Equal("wallet-api-test", claims.Issuer)
}

func (s *TokenServiceSuite) TestValidateToken_Garbage() {
	claims, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestValidateToken_WrongSecret() {
	other := NewTokenService(&config.JWTConfig{
		Secret:        "a-different-secret",
		Issuer:        "wallet-api-test",
		TokenDuration: time.Hour,
	})

	token, err := other.GenerateToken(s.testUser)
	s.NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestValidateToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		Secret:        "test-secret-key",
		Issuer:        "wallet-api-test",
		TokenDuration: -time.Hour,
	})

	token, err := expired.GenerateToken(s.testUser)
	s.NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc.def.ghi", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidToken)
				s.Empty(token)
			} else {
				s.NoError(err)
				s.Equal(tt.want, token)
			}
		})
	}
}
