package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_002"
	ValidationInvalidID     ErrorCode = "VALIDATION_003"
)

// User error codes (USER_*)
const (
	UserNotFound ErrorCode = "USER_001"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound        ErrorCode = "ACCOUNT_001"
	AccountTypeNotFound    ErrorCode = "ACCOUNT_002"
	AccountNoResults       ErrorCode = "ACCOUNT_003"
	AccountAliasGeneration ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNoResults ErrorCode = "TRANSACTION_001"
)

// Financer product error codes (PRODUCT_*)
const (
	ProductNoResults ErrorCode = "PRODUCT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidID:     "Invalid identifier format",

	UserNotFound: "User not found",

	AccountNotFound:        "Account not found",
	AccountTypeNotFound:    "Account type not found",
	AccountNoResults:       "No accounts found",
	AccountAliasGeneration: "Could not generate a unique account identifier",

	TransactionNoResults: "No transactions found for this account",

	ProductNoResults: "No financer products found for this account",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
