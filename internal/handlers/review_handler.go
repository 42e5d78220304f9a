package handlers

import (
	"net/http"

	"fairway_backend/internal/logger"
	"fairway_backend/internal/services"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

// CreateReview stores a review, recomputes the course rating and
// returns the course's refreshed review list so the client can
// re-render without a second round trip.
// POST /review
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	reviews, err := h.reviewService.CreateReview(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Review created", "course", req.Course, "rating", req.Rating)
	c.JSON(http.StatusCreated, gin.H{"review": reviews})
}

// DeleteReview removes the caller's own review and recomputes the
// course rating.
// DELETE /review/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reviewID := c.Param("id")
	if reviewID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Review ID is required"))
		return
	}

	db := h.GetDB(c)
	if err := h.reviewService.DeleteReview(db, reviewID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Review deleted", "reviewID", reviewID)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// RecentReviews returns the latest reviews across all courses.
// GET /reviews
func (h *ReviewHandler) RecentReviews(c *gin.Context) {
	db := h.GetDB(c)

	reviews, err := h.reviewService.RecentReviews(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
