package repositories

import (
	"errors"

	"fairway_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByCourse(db *gorm.DB, courseID string) ([]models.Review, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Review, error)
	FindRecent(db *gorm.DB, limit int) ([]models.Review, error)
	Delete(db *gorm.DB, id string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("User").Preload("Course").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByCourse(db *gorm.DB, courseID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("User").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindRecent(db *gorm.DB, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("User").Preload("Course").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
