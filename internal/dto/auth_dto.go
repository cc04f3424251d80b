package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin worker"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateUserRequest is an admin-only patch. Nil fields are left untouched;
// an all-nil patch is rejected as "nothing to update".
type UpdateUserRequest struct {
	Role     *string `json:"role"      validate:"omitempty,oneof=admin worker"`
	IsActive *bool   `json:"is_active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}
