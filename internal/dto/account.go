package dto

import (
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/services"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account.
// CreationDate is optional; when omitted the server uses the creation moment.
type CreateAccountRequest struct {
	UserID       uint       `json:"user_id" validate:"required"`
	AccountType  string     `json:"account_type" validate:"required,min=1,max=50"`
	Currency     string     `json:"currency" validate:"required,min=3,max=10"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
}

// UpdateAccountRequest represents a partial update. Pointer fields distinguish
// "absent" from "set to zero value": only present fields are applied.
type UpdateAccountRequest struct {
	CBU         *string `json:"cbu,omitempty" validate:"omitempty,len=22,numeric"`
	Alias       *string `json:"alias,omitempty" validate:"omitempty,min=1,max=100"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,min=3,max=10"`
	AccountType *string `json:"account_type,omitempty" validate:"omitempty,min=1,max=50"`
}

// Account Response DTOs

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account *models.Account `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// AccountStatusListResponse represents the bulk listing with derived status
type AccountStatusListResponse struct {
	Accounts []services.AccountWithStatus `json:"accounts"`
	Total    int                          `json:"total"`
}

// TransactionListResponse represents the transactions of an account
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// FinancerProductListResponse represents the financer products of an account
type FinancerProductListResponse struct {
	Products []models.FinancerProduct `json:"products"`
	Total    int                      `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
