package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "valid user",
			user: User{
				Email:     "maria@example.com",
				FirstName: "Maria",
				LastName:  "Gomez",
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			user: User{
				Email:     "not-an-email",
				FirstName: "Maria",
				LastName:  "Gomez",
			},
			wantErr: true,
		},
		{
			name: "missing first name",
			user: User{
				Email:    "maria@example.com",
				LastName: "Gomez",
			},
			wantErr: true,
		},
		{
			name: "missing last name",
			user: User{
				Email:     "maria@example.com",
				FirstName: "Maria",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
