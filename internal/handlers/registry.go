package handlers

import (
	"fairway_backend/internal/services"
	"fairway_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Course  *CourseHandler
	Review  *ReviewHandler
	Account *AccountHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Course:  NewCourseHandler(base, sc.CourseService),
		Review:  NewReviewHandler(base, sc.ReviewService),
		Account: NewAccountHandler(base, sc.UserService),
	}
}
