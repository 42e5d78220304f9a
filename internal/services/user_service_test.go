package services

import (
	"testing"

	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/services/dto"
	"fairway_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	repositories.UserRepository
	byID        map[string]*models.User
	takenEmails map[string]bool
	updated     *models.User
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) EmailTaken(_ *gorm.DB, email, _ string) (bool, error) {
	return f.takenEmails[email], nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	f.updated = user
	return nil
}

type fakeUserReviewRepo struct {
	repositories.ReviewRepository
	byUser map[string][]models.Review
}

func (f *fakeUserReviewRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Review, error) {
	return f.byUser[userID], nil
}

func testUser(id, name, email string) *models.User {
	u := &models.User{Name: name, Email: email}
	u.ID = id
	return u
}

func strPtr(s string) *string { return &s }

func dtoUpdate(name, email string) *dto.UpdateAccountRequest {
	req := &dto.UpdateAccountRequest{}
	if name != "" {
		req.Name = strPtr(name)
	}
	if email != "" {
		req.Email = strPtr(email)
	}
	return req
}

func TestGetAccount_IncludesOwnedReviewsWithCourseName(t *testing.T) {
	users := &fakeUserRepo{byID: map[string]*models.User{
		"u1": testUser("u1", "Walter", "walter@example.com"),
	}}
	reviews := &fakeUserReviewRepo{byUser: map[string][]models.Review{
		"u1": {{Title: "Tough rough", Rating: 3, Course: models.Course{Name: "Oakmont"}}},
	}}
	svc := NewUserService(users, reviews)

	got, err := svc.GetAccount(nil, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Walter", got.Name)
	assert.Len(t, got.Reviews, 1)
	assert.Equal(t, "Oakmont", got.Reviews[0].Course)
	assert.Equal(t, "Walter", got.Reviews[0].User)
}

func TestUpdateAccount_PartialUpdateKeepsOtherFields(t *testing.T) {
	users := &fakeUserRepo{byID: map[string]*models.User{
		"u1": testUser("u1", "Walter", "walter@example.com"),
	}}
	svc := NewUserService(users, &fakeUserReviewRepo{})

	got, err := svc.UpdateAccount(nil, "u1", dtoUpdate("Gene", ""))
	assert.NoError(t, err)
	assert.Equal(t, "Gene", got.Name)
	assert.Equal(t, "walter@example.com", got.Email)
}

func TestUpdateAccount_DuplicateEmailConflict(t *testing.T) {
	users := &fakeUserRepo{
		byID:        map[string]*models.User{"u1": testUser("u1", "Walter", "walter@example.com")},
		takenEmails: map[string]bool{"gene@example.com": true},
	}
	svc := NewUserService(users, &fakeUserReviewRepo{})

	_, err := svc.UpdateAccount(nil, "u1", dtoUpdate("", "gene@example.com"))
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	assert.Nil(t, users.updated)
}
