package dto

import "wallet-api/internal/models"

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
