package dto

import "time"

// ======================
// Request DTOs
// ======================

// UpdateAccountRequest is a partial update; omitted fields keep their
// previous values.
type UpdateAccountRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ======================
// Response DTOs
// ======================

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountResponse is the profile view: the user plus every review they
// have written, each carrying the reviewed course's name.
type AccountResponse struct {
	UserResponse
	Reviews []ReviewResponse `json:"reviews"`
}
