package services

import (
	"testing"

	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"
	"fairway_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeCourseRepo serves canned data; the db handle is ignored.
type fakeCourseRepo struct {
	repositories.CourseRepository
	featured []models.Course
	topRated []models.Course
	byID     map[string]*models.Course
}

func (f *fakeCourseRepo) FindFeatured(_ *gorm.DB, limit int) ([]models.Course, error) {
	if len(f.featured) > limit {
		return f.featured[:limit], nil
	}
	return f.featured, nil
}

func (f *fakeCourseRepo) FindTopRated(_ *gorm.DB, minRating float64, limit int) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.topRated {
		if c.AverageRating >= minRating && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindByID(_ *gorm.DB, id string) (*models.Course, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCourseNotFound
}

type fakeReviewRepo struct {
	repositories.ReviewRepository
	byCourse map[string][]models.Review
}

func (f *fakeReviewRepo) FindByCourse(_ *gorm.DB, courseID string) ([]models.Review, error) {
	return f.byCourse[courseID], nil
}

func course(id, name string, rating float64, featured bool) models.Course {
	c := models.Course{Name: name, AverageRating: rating, Featured: featured}
	c.ID = id
	return c
}

func TestFeaturedCourses_PrefersFlaggedOrdering(t *testing.T) {
	repo := &fakeCourseRepo{
		featured: []models.Course{
			course("a", "Augusta", 4.8, true),
			course("b", "Birkdale", 4.2, true),
			course("c", "Carnoustie", 3.9, true),
		},
	}
	svc := NewCourseService(repo, &fakeReviewRepo{})

	got, err := svc.FeaturedCourses(nil)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "Augusta", got[0].Name)
	assert.Equal(t, "Carnoustie", got[2].Name)
}

func TestFeaturedCourses_BackfillsWithTopRated(t *testing.T) {
	repo := &fakeCourseRepo{
		featured: []models.Course{
			course("a", "Augusta", 4.8, true),
		},
		topRated: []models.Course{
			course("d", "Dornoch", 5.0, false),
			course("e", "Erin Hills", 4.1, false),
			course("f", "Firestone", 4.0, false),
		},
	}
	svc := NewCourseService(repo, &fakeReviewRepo{})

	got, err := svc.FeaturedCourses(nil)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "Augusta", got[0].Name)
	assert.Equal(t, "Dornoch", got[1].Name)
	assert.Equal(t, "Erin Hills", got[2].Name)
}

func TestFeaturedCourses_NoFallbackBelowThreshold(t *testing.T) {
	repo := &fakeCourseRepo{
		topRated: []models.Course{
			course("g", "Gullane", 3.9, false),
		},
	}
	svc := NewCourseService(repo, &fakeReviewRepo{})

	got, err := svc.FeaturedCourses(nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCourse_NotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{byID: map[string]*models.Course{}}, &fakeReviewRepo{})

	_, err := svc.GetCourse(nil, "missing")
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetCourse_EnrichesReviewsWithAuthor(t *testing.T) {
	c := course("a", "Augusta", 4.0, false)
	reviews := []models.Review{
		{Title: "Great greens", Rating: 4, User: models.User{Name: "Bobby"}},
	}
	svc := NewCourseService(
		&fakeCourseRepo{byID: map[string]*models.Course{"a": &c}},
		&fakeReviewRepo{byCourse: map[string][]models.Review{"a": reviews}},
	)

	got, err := svc.GetCourse(nil, "a")
	assert.NoError(t, err)
	assert.Equal(t, "Augusta", got.Name)
	assert.Len(t, got.Reviews, 1)
	assert.Equal(t, "Bobby", got.Reviews[0].User)
}
