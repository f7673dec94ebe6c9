package model

import (
	"strings"
	"time"
)

// LoginRequest is the admin login payload. Either email or username
// carries the identity.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity returns the identity the caller is logging in as.
func (r *LoginRequest) Identity() string {
	if email := strings.TrimSpace(r.Email); email != "" {
		return email
	}
	return strings.TrimSpace(r.Username)
}

// Validate checks that an identity and a password were supplied.
func (r *LoginRequest) Validate() error {
	if r.Identity() == "" {
		return NewValidationError("email or username is required")
	}
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// AdminUser describes the logged-in admin.
type AdminUser struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      AdminUser `json:"user"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
