package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// Derived activity states, computed from transaction history and
	// never persisted on the account row.
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"

	// CBULength is the fixed length of an Argentine CBU.
	CBULength = 22
)

var (
	ErrMissingUser        = errors.New("user ID is required")
	ErrMissingAccountType = errors.New("account type is required")
	ErrMissingAlias       = errors.New("alias is required")
	ErrInvalidCBU         = errors.New("CBU must be a 22-digit numeric string")
	ErrInvalidBalance     = errors.New("balance cannot be negative")
)

// Account represents a monetary account owned by a user. Alias and CBU are
// assigned once at creation and are unique across all accounts.
type Account struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	AccountTypeID uint            `gorm:"not null;index" json:"account_type_id"`
	Currency      string          `gorm:"type:varchar(10);not null" json:"currency"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Alias         string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"alias"`
	CBU           string          `gorm:"column:cbu;type:varchar(22);uniqueIndex;not null" json:"cbu"`
	CreationDate  time.Time       `gorm:"not null" json:"creation_date"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	User             User             `gorm:"foreignKey:UserID" json:"-"`
	AccountType      AccountType      `gorm:"foreignKey:AccountTypeID" json:"account_type"`
	Transactions     []Transaction    `gorm:"foreignKey:AccountID" json:"-"`
	FinancerProducts []FinancerProduct `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if a.CreationDate.IsZero() {
		a.CreationDate = now
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == 0 {
		return ErrMissingUser
	}

	if a.AccountTypeID == 0 {
		return ErrMissingAccountType
	}

	if a.Alias == "" {
		return ErrMissingAlias
	}

	if !ValidateCBU(a.CBU) {
		return ErrInvalidCBU
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// BuildAccountName composes the display name shown for an account,
// e.g. "Savings en USD".
func BuildAccountName(accountTypeName, currency string) string {
	return fmt.Sprintf("%s en %s", accountTypeName, currency)
}

// ValidateCBU checks that a CBU is a 22-digit numeric string
func ValidateCBU(cbu string) bool {
	if len(cbu) != CBULength {
		return false
	}

	for _, char := range cbu {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
