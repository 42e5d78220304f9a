package services

import (
	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const recentReviewLimit = 3

type ReviewService interface {
	CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) ([]dto.ReviewResponse, error)
	DeleteReview(db *gorm.DB, reviewID, requesterID string) error
	RecentReviews(db *gorm.DB) ([]dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	courseRepo repositories.CourseRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, courseRepo repositories.CourseRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		courseRepo: courseRepo,
	}
}

// CreateReview inserts the review and restores the course's average
// rating inside one transaction: read all reviews for the course,
// compute the mean, write it back onto the course row. The course row
// is locked FOR UPDATE before the reviews are read, so concurrent
// recomputations on the same course serialize instead of writing a
// mean computed from a stale read.
// Returns the full refreshed review list for the course.
func (s *reviewService) CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) ([]dto.ReviewResponse, error) {
	if _, err := s.courseRepo.FindByID(db, req.Course); err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var courseReviews []models.Review

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByIDForUpdate(tx, req.Course); err != nil {
			return err
		}

		review := &models.Review{
			Title:    req.Title,
			Body:     req.Body,
			Rating:   req.Rating,
			UserID:   userID,
			CourseID: req.Course,
		}
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}

		reviews, err := s.reviewRepo.FindByCourse(tx, req.Course)
		if err != nil {
			return err
		}

		if err := s.courseRepo.UpdateAverageRating(tx, req.Course, averageRating(reviews)); err != nil {
			return err
		}

		courseReviews = reviews
		return nil
	})
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}

	return buildCourseReviewResponses(courseReviews), nil
}

// DeleteReview removes the review and recomputes the owning course's
// average in the same transaction, assigning 0 when no reviews remain.
// Only the review's author may delete it.
func (s *reviewService) DeleteReview(db *gorm.DB, reviewID, requesterID string) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.InternalError(err)
	}

	if review.UserID != requesterID {
		return apperrors.ErrNotReviewOwner
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByIDForUpdate(tx, review.CourseID); err != nil {
			return err
		}

		if err := s.reviewRepo.Delete(tx, reviewID); err != nil {
			return err
		}

		reviews, err := s.reviewRepo.FindByCourse(tx, review.CourseID)
		if err != nil {
			return err
		}

		return s.courseRepo.UpdateAverageRating(tx, review.CourseID, averageRating(reviews))
	})
	if err != nil {
		return apperrors.TransactionError(err)
	}

	return nil
}

// RecentReviews returns the newest reviews system-wide, enriched with
// author and course names.
func (s *reviewService) RecentReviews(db *gorm.DB) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindRecent(db, recentReviewLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		r := buildReviewResponse(&reviews[i])
		r.Course = reviews[i].Course.Name
		responses = append(responses, r)
	}
	return responses, nil
}

// averageRating is the arithmetic mean of the ratings, 0 when empty.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for i := range reviews {
		sum += reviews[i].Rating
	}
	return float64(sum) / float64(len(reviews))
}

func buildReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		Title:     review.Title,
		Body:      review.Body,
		Rating:    review.Rating,
		User:      review.User.Name,
		CreatedAt: review.CreatedAt,
	}
}

func buildCourseReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return responses
}
