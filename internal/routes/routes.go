package routes

import (
	"fairway_backend/internal/handlers"
	"fairway_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine. Paths live at
// the root, matching the client the API was built for.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, jwtSecret string) {
	authRequired := middleware.AuthMiddleware(jwtSecret)

	// Public
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/featured-courses", h.Course.FeaturedCourses)
	r.GET("/reviews", h.Review.RecentReviews)

	// Authenticated
	r.GET("/courses", authRequired, h.Course.ListCourses)
	r.GET("/course/:id", authRequired, h.Course.GetCourse)
	r.POST("/review", authRequired, h.Review.CreateReview)
	r.DELETE("/review/:id", authRequired, h.Review.DeleteReview)
	r.GET("/account", authRequired, h.Account.GetAccount)
	r.PUT("/account", authRequired, h.Account.UpdateAccount)
}
