package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	Title  string `json:"title" validate:"required,max=150"`
	Body   string `json:"body" validate:"required,max=2000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Course string `json:"course" validate:"required,uuid4"`
}

// ======================
// Response DTOs
// ======================

// ReviewResponse carries a review enriched with its author's display
// name; Course is set only where the parent course is not implied by
// the endpoint (recent reviews, account listings).
type ReviewResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	User      string    `json:"user"`
	Course    string    `json:"course,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
