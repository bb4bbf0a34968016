package dto

import "github.com/adityavkr/hostelhub/internal/app/models"

// LoginRequest represents login credentials. Students log in with their
// roll number as the username.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"CS101"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"86400"`
}

// LoginResponse represents successful authentication response
type LoginResponse struct {
	Token      TokenResponse `json:"token"`
	User       *models.User  `json:"user"`
	FirstLogin bool          `json:"first_login"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
