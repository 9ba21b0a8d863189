package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid account",
			account: Account{
				UserID:        1,
				AccountTypeID: 1,
				Currency:      "ARS",
				Alias:         "lago.rio.monte",
				CBU:           "2850590940090418135201",
				Balance:       decimal.Zero,
			},
			wantErr: nil,
		},
		{
			name: "valid account with positive balance",
			account: Account{
				UserID:        1,
				AccountTypeID: 2,
				Currency:      "USD",
				Alias:         "sol.luna.cielo",
				CBU:           "0170099220000067797370",
				Balance:       decimal.NewFromFloat(1500.75),
			},
			wantErr: nil,
		},
		{
			name: "missing user",
			account: Account{
				AccountTypeID: 1,
				Alias:         "lago.rio.monte",
				CBU:           "2850590940090418135201",
			},
			wantErr: ErrMissingUser,
		},
		{
			name: "missing account type",
			account: Account{
				UserID: 1,
				Alias:  "lago.rio.monte",
				CBU:    "2850590940090418135201",
			},
			wantErr: ErrMissingAccountType,
		},
		{
			name: "missing alias",
			account: Account{
				UserID:        1,
				AccountTypeID: 1,
				CBU:           "2850590940090418135201",
			},
			wantErr: ErrMissingAlias,
		},
		{
			name: "CBU too short",
			account: Account{
				UserID:        1,
				AccountTypeID: 1,
				Alias:         "lago.rio.monte",
				CBU:           "285059094009041813520",
			},
			wantErr: ErrInvalidCBU,
		},
		{
			name: "CBU with letters",
			account: Account{
				UserID:        1,
				AccountTypeID: 1,
				Alias:         "lago.rio.monte",
				CBU:           "28505909400904181352AB",
			},
			wantErr: ErrInvalidCBU,
		},
		{
			name: "negative balance",
			account: Account{
				UserID:        1,
				AccountTypeID: 1,
				Alias:         "lago.rio.monte",
				CBU:           "2850590940090418135201",
				Balance:       decimal.NewFromFloat(-0.01),
			},
			wantErr: ErrInvalidBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCBU(t *testing.T) {
	tests := []struct {
		name string
		cbu  string
		want bool
	}{
		{"valid 22 digits", "2850590940090418135201", true},
		{"all zeros", "0000000000000000000000", true},
		{"too short", "123456789", false},
		{"too long", "28505909400904181352011", false},
		{"empty", "", false},
		{"contains letter", "285059094009041813520a", false},
		{"contains space", "2850590940090418 35201", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCBU(tt.cbu))
		})
	}
}

func TestBuildAccountName(t *testing.T) {
	assert.Equal(t, "Savings en ARS", BuildAccountName(AccountTypeSavings, "ARS"))
	assert.Equal(t, "Checking en USD", BuildAccountName(AccountTypeChecking, "USD"))
}
