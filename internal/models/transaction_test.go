package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
	}{
		{
			name: "valid income",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: TransactionTypeIncome,
				Amount:          decimal.NewFromFloat(250.00),
			},
			wantErr: false,
		},
		{
			name: "valid payment",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: TransactionTypePayment,
				Amount:          decimal.NewFromFloat(99.99),
			},
			wantErr: false,
		},
		{
			name: "valid deposit",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: TransactionTypeDeposit,
				Amount:          decimal.NewFromInt(1000),
			},
			wantErr: false,
		},
		{
			name: "missing account",
			transaction: Transaction{
				TransactionType: TransactionTypeIncome,
				Amount:          decimal.NewFromFloat(250.00),
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: "withdrawal",
				Amount:          decimal.NewFromFloat(250.00),
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: TransactionTypeIncome,
				Amount:          decimal.Zero,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				AccountID:       1,
				TransactionType: TransactionTypePayment,
				Amount:          decimal.NewFromFloat(-10),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypePayment))
	assert.True(t, IsValidTransactionType(TransactionTypeDeposit))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}
