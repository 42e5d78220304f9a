package services

import (
	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	featuredCourseLimit = 3
	// Courses rated at or above this backfill the featured list when
	// fewer than featuredCourseLimit courses are flagged.
	featuredFallbackRating = 4.0
)

type CourseService interface {
	ListCourses(db *gorm.DB) ([]dto.CourseResponse, error)
	FeaturedCourses(db *gorm.DB) ([]dto.CourseResponse, error)
	GetCourse(db *gorm.DB, id string) (*dto.CourseDetailResponse, error)
}

type courseService struct {
	courseRepo repositories.CourseRepository
	reviewRepo repositories.ReviewRepository
}

func NewCourseService(courseRepo repositories.CourseRepository, reviewRepo repositories.ReviewRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *courseService) ListCourses(db *gorm.DB) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCourseResponses(courses), nil
}

// FeaturedCourses returns up to three flagged courses ordered by rating,
// backfilled with top-rated unflagged courses when fewer are flagged.
func (s *courseService) FeaturedCourses(db *gorm.DB) ([]dto.CourseResponse, error) {
	featured, err := s.courseRepo.FindFeatured(db, featuredCourseLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(featured) < featuredCourseLimit {
		fallback, err := s.courseRepo.FindTopRated(db, featuredFallbackRating, featuredCourseLimit-len(featured))
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		featured = append(featured, fallback...)
	}

	return buildCourseResponses(featured), nil
}

func (s *courseService) GetCourse(db *gorm.DB, id string) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindByCourse(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CourseDetailResponse{
		CourseResponse: buildCourseResponse(course),
		Reviews:        buildCourseReviewResponses(reviews),
	}, nil
}

func buildCourseResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		Lat:           course.Lat,
		Lng:           course.Lng,
		Address:       course.Address,
		AverageRating: course.AverageRating,
		Featured:      course.Featured,
		CreatedAt:     course.CreatedAt,
	}
}

func buildCourseResponses(courses []models.Course) []dto.CourseResponse {
	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, buildCourseResponse(&courses[i]))
	}
	return responses
}
