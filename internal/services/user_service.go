package services

import (
	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetAccount(db *gorm.DB, userID string) (*dto.AccountResponse, error)
	UpdateAccount(db *gorm.DB, userID string, req *dto.UpdateAccountRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo   repositories.UserRepository
	reviewRepo repositories.ReviewRepository
}

func NewUserService(userRepo repositories.UserRepository, reviewRepo repositories.ReviewRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

// GetAccount returns the user with every review they authored, each
// carrying the reviewed course's name.
func (s *userService) GetAccount(db *gorm.DB, userID string) (*dto.AccountResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown user")
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		r := buildReviewResponse(&reviews[i])
		r.User = user.Name
		r.Course = reviews[i].Course.Name
		reviewResponses = append(reviewResponses, r)
	}

	return &dto.AccountResponse{
		UserResponse: buildUserResponse(user),
		Reviews:      reviewResponses,
	}, nil
}

// UpdateAccount applies a partial update. A changed email is re-checked
// for uniqueness before writing.
func (s *userService) UpdateAccount(db *gorm.DB, userID string, req *dto.UpdateAccountRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown user")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(db, *req.Email, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildUserResponse(user)
	return &resp, nil
}

func buildUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
