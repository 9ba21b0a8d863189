package services

import (
	"time"

	"wallet-api/internal/models"
)

// ListPolicy decides how a list operation treats an empty result set. The
// original wallet API reported empty lists as failures on every listing
// endpoint; handlers that want parity pass FailOnEmpty, everything else can
// ask for a plain empty slice.
type ListPolicy int

const (
	FailOnEmpty ListPolicy = iota
	AllowEmpty
)

// CreateAccountInput carries the caller-supplied fields for account creation.
// CreationDate is optional; when nil the creation moment is used.
type CreateAccountInput struct {
	UserID       uint
	AccountType  string
	Currency     string
	CreationDate *time.Time
}

// AccountPatch is a partial update: nil fields are left unchanged.
type AccountPatch struct {
	CBU         *string
	Alias       *string
	Currency    *string
	AccountType *string
}

// AccountWithStatus is the read-side projection returned by bulk listing:
// the stored account plus its derived activity status. The status is never
// written back to the store.
type AccountWithStatus struct {
	models.Account
	Status string `json:"status"`
}

// AccountServiceInterface defines the contract for account lifecycle operations
type AccountServiceInterface interface {
	GetAccountByID(id uint) (*models.Account, error)
	GetUserAccounts(userID uint, policy ListPolicy) ([]models.Account, error)
	GetAllAccounts(policy ListPolicy) ([]AccountWithStatus, error)
	CreateAccount(input CreateAccountInput) (*models.Account, error)
	EditAccount(id uint, patch AccountPatch) (*models.Account, error)
	DeleteAccount(id uint) error
	GetAccountTransactions(accountID uint, policy ListPolicy) ([]models.Transaction, error)
	GetAccountFinancerProducts(accountID uint, policy ListPolicy) ([]models.FinancerProduct, error)
	AccountStatus(accountID uint) (string, error)
}

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Login(email, password string) (string, *models.User, error)
}

// TokenServiceInterface defines the contract for JWT issuing and validation
type TokenServiceInterface interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
	ExtractTokenFromHeader(header string) (string, error)
}

// MetricsRecorderInterface defines the contract for recording account metrics
type MetricsRecorderInterface interface {
	RecordAccountCreated(accountType string)
	RecordAccountDeleted()
	RecordStatusEvaluation(status string)
	RecordOperationDuration(operation string, duration time.Duration)
}
