package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-api/internal/service"
)

// CourseHandler mantiene dependencias para endpoints de cursos.
type CourseHandler struct {
	logger     *zap.Logger
	courseServ *service.CourseService
}

func NewCourseHandler(logger *zap.Logger, courseServ *service.CourseService) *CourseHandler {
	return &CourseHandler{
		logger:     logger,
		courseServ: courseServ,
	}
}

// ListCourses maneja GET /courses.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseServ.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse maneja GET /courses/:id.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	detail, err := h.courseServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateCourse maneja POST /courses. El duenio siempre es el usuario autenticado.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		_ = c.Error(service.ErrInvalidCredentials)
		return
	}

	var req struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		EstimatedTime   string `json:"estimatedTime"`
		MaterialsNeeded string `json:"materialsNeeded"`
	}
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warn("invalid create course request", zap.Error(err))
		_ = c.Error(err)
		return
	}

	course, err := h.courseServ.Create(c.Request.Context(), identity, service.CreateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/api/courses/"+course.ID)
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse maneja PUT /courses/:id.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		_ = c.Error(service.ErrInvalidCredentials)
		return
	}

	var req struct {
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		EstimatedTime   *string `json:"estimatedTime"`
		MaterialsNeeded *string `json:"materialsNeeded"`
	}
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warn("invalid update course request", zap.Error(err))
		_ = c.Error(err)
		return
	}

	err := h.courseServ.Update(c.Request.Context(), identity, c.Param("id"), service.UpdateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCourse maneja DELETE /courses/:id.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		_ = c.Error(service.ErrInvalidCredentials)
		return
	}

	if err := h.courseServ.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
