package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fairway_backend/internal/services"
	"fairway_backend/internal/services/dto"
	"fairway_backend/internal/validator"
	"fairway_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReviewService struct {
	services.ReviewService
	created []dto.ReviewResponse
}

func (f *fakeReviewService) CreateReview(_ *gorm.DB, _ string, _ *dto.CreateReviewRequest) ([]dto.ReviewResponse, error) {
	return f.created, nil
}

func reviewRouter(svc services.ReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(NewBaseHandler(validator.New()), svc)

	r := gin.New()
	r.POST("/review", func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
	}, h.CreateReview)
	return r
}

// The response body must carry the course's refreshed review list, not
// any other collection.
func TestCreateReview_RespondsWithCourseReviewList(t *testing.T) {
	svc := &fakeReviewService{created: []dto.ReviewResponse{
		{ID: "r1", Title: "Solid track", User: "Walter", Rating: 4},
		{ID: "r2", Title: "Windy day", User: "Gene", Rating: 3},
	}}

	payload, err := json.Marshal(map[string]interface{}{
		"title":  "Solid track",
		"body":   "Greens were quick.",
		"rating": 4,
		"course": uuid.NewString(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/review", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	reviewRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Review []struct {
			Title  string `json:"title"`
			User   string `json:"user"`
			Rating int    `json:"rating"`
		} `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Review, 2)
	assert.Equal(t, "Solid track", env.Review[0].Title)
	assert.Equal(t, "Walter", env.Review[0].User)
	assert.Equal(t, 4, env.Review[0].Rating)
	assert.Equal(t, "Gene", env.Review[1].User)
}
