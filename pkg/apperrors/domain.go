package apperrors

import (
	"net/http"
)

// Predefined errors for the review domain.

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"A user with this email already exists",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Courses ---

var ErrCourseNotFound = New(
	CodeNotFound,
	"courses",
	"Course not found",
	http.StatusNotFound,
)

// --- Reviews ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"reviews",
	"Review not found",
	http.StatusNotFound,
)

var ErrNotReviewOwner = New(
	CodeForbidden,
	"reviews",
	"Only the author of a review may delete it",
	http.StatusForbidden,
)
