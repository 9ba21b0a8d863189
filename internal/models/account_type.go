package models

import "time"

const (
	AccountTypeSavings  = "Savings"
	AccountTypeChecking = "Checking"
)

// AccountType is reference data classifying an account. Rows are seeded by
// migration and resolved by name during account creation.
type AccountType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for AccountType
func (t *AccountType) TableName() string {
	return "account_types"
}
