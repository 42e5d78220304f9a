package repositories

import (
	"errors"

	"fairway_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository interface {
	FindAll(db *gorm.DB) ([]models.Course, error)
	FindByID(db *gorm.DB, id string) (*models.Course, error)
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Course, error)
	FindFeatured(db *gorm.DB, limit int) ([]models.Course, error)
	FindTopRated(db *gorm.DB, minRating float64, limit int) ([]models.Course, error)
	UpdateAverageRating(db *gorm.DB, courseID string, rating float64) error
	BulkInsert(db *gorm.DB, courses []models.Course) (int64, error)
}

type CourseRepositoryImpl struct{}

func NewCourseRepository() CourseRepository {
	return &CourseRepositoryImpl{}
}

func (r *CourseRepositoryImpl) FindAll(db *gorm.DB) ([]models.Course, error) {
	var courses []models.Course
	err := db.Order("name ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	err := db.First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// FindByIDForUpdate takes the course's row lock for the rest of the
// transaction, so concurrent rating recomputations run one at a time.
func (r *CourseRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) FindFeatured(db *gorm.DB, limit int) ([]models.Course, error) {
	var courses []models.Course
	err := db.Where("featured = ?", true).
		Order("average_rating DESC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

// FindTopRated returns non-featured courses rated at or above minRating,
// best first. Used to backfill the featured list.
func (r *CourseRepositoryImpl) FindTopRated(db *gorm.DB, minRating float64, limit int) ([]models.Course, error) {
	var courses []models.Course
	err := db.Where("featured = ? AND average_rating >= ?", false, minRating).
		Order("average_rating DESC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepositoryImpl) UpdateAverageRating(db *gorm.DB, courseID string, rating float64) error {
	result := db.Model(&models.Course{}).
		Where("id = ?", courseID).
		Update("average_rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// BulkInsert creates courses, skipping rows that collide on name+address.
func (r *CourseRepositoryImpl) BulkInsert(db *gorm.DB, courses []models.Course) (int64, error) {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&courses)
	return result.RowsAffected, result.Error
}
