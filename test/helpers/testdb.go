package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fairway_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password placed in
// PasswordHash.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "Failed to hash test password")
	user.PasswordHash = string(hashed)

	require.NoError(t, tx.Create(user).Error, "Failed to create test user")
}

// CreateAndLoginUser creates a user with a unique email and logs them
// in through the API, returning the token.
func CreateAndLoginUser(ts *TestServer, t *testing.T, tx *gorm.DB, name string) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	password := "password123"

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
	}
	CreateUser(t, tx, user)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// ClearCourses deletes every review and course inside the test
// transaction, for tests that assert exact listing contents.
func ClearCourses(t *testing.T, tx *gorm.DB) {
	t.Helper()

	require.NoError(t, tx.Exec("DELETE FROM reviews").Error)
	require.NoError(t, tx.Exec("DELETE FROM courses").Error)
}

// CreateCourse inserts a course row.
func CreateCourse(t *testing.T, tx *gorm.DB, name string, featured bool, rating float64) *models.Course {
	t.Helper()

	course := &models.Course{
		Name:          name,
		Lat:           43.238949,
		Lng:           76.889709,
		Address:       "1 Fairway Drive",
		Featured:      featured,
		AverageRating: rating,
	}
	require.NoError(t, tx.Create(course).Error, "Failed to create test course")
	return course
}

// CreateReview inserts a review row directly, bypassing the rating
// recompute. Tests that assert the rating invariant go through the API.
func CreateReview(t *testing.T, tx *gorm.DB, user *models.User, course *models.Course, rating int) *models.Review {
	t.Helper()

	review := &models.Review{
		Title:    "Great round",
		Body:     "Fast greens and friendly staff.",
		Rating:   rating,
		UserID:   user.ID,
		CourseID: course.ID,
	}
	require.NoError(t, tx.Create(review).Error, "Failed to create test review")
	return review
}
