package handlers

import (
	"net/http"

	"fairway_backend/internal/services"
	"fairway_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

// ListCourses returns the full catalogue ordered by name.
// GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	db := h.GetDB(c)

	courses, err := h.courseService.ListCourses(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// FeaturedCourses returns up to three highlighted courses.
// GET /featured-courses
func (h *CourseHandler) FeaturedCourses(c *gin.Context) {
	db := h.GetDB(c)

	courses, err := h.courseService.FeaturedCourses(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetCourse returns one course with its reviews.
// GET /course/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Course ID is required"))
		return
	}

	db := h.GetDB(c)
	course, err := h.courseService.GetCourse(db, courseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}
