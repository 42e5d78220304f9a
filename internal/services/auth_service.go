package services

import (
	"fmt"
	"time"

	"fairway_backend/internal/auth"
	"fairway_backend/internal/config"
	"fairway_backend/internal/email"
	"fairway_backend/internal/logger"
	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtSecret     string
	tokenTTL      time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtSecret:     cfg.JWT.Secret,
		tokenTTL:      time.Duration(cfg.JWT.TTL) * time.Minute,
	}
}

// Register creates the user and returns a signed token. The token
// carries only the user ID; the record is looked up per request.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// sendWelcomeEmail is fire-and-forget; a mail failure never fails
// registration.
func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	go func() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to Fairway. Find a course, play a round, tell us how it went.</p>", user.Name)
		if err := s.emailProvider.Send(user.Email, "Welcome to Fairway", body); err != nil {
			logger.Warn("failed to send welcome email", "email", user.Email, "error", err)
		}
	}()
}
