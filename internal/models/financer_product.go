package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancerProduct is a financial product linked to an account. This service
// only ever reads these rows for aggregation views.
type FinancerProduct struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	AccountID uint            `gorm:"not null;index" json:"account_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TermDays  int             `gorm:"not null;default:0" json:"term_days"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// TableName returns the table name for FinancerProduct
func (p *FinancerProduct) TableName() string {
	return "financer_products"
}
