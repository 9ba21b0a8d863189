package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypePayment = "payment"
	TransactionTypeDeposit = "deposit"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single movement on an account. TransactionDate is
// what the activity evaluator looks at, not the row creation time.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	AccountID       uint            `gorm:"not null;index" json:"account_id"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"type:text" json:"description"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == 0 {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypePayment, TransactionTypeDeposit:
		return true
	default:
		return false
	}
}
