package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid email or password",
		},
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "User Not Found",
			code:     UserNotFound,
			expected: "User not found",
		},
		{
			name:     "Account Not Found",
			code:     AccountNotFound,
			expected: "Account not found",
		},
		{
			name:     "Account Type Not Found",
			code:     AccountTypeNotFound,
			expected: "Account type not found",
		},
		{
			name:     "Account No Results",
			code:     AccountNoResults,
			expected: "No accounts found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests fallback for unregistered codes
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

// TestIsValidErrorCode tests error code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(AccountNotFound))
	s.True(IsValidErrorCode(TransactionNoResults))
	s.True(IsValidErrorCode(ProductNoResults))
	s.True(IsValidErrorCode(AccountAliasGeneration))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
