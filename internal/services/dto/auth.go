package dto

// ======================
// Request DTOs
// ======================

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ======================
// Response DTOs
// ======================

// TokenResponse is the body of successful register and login calls.
type TokenResponse struct {
	Token string `json:"token"`
}
