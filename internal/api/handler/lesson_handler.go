package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/api/metrics"
	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// LessonHandler handles HTTP requests for lesson booking and lifecycle.
type LessonHandler struct {
	service ports.LessonService
}

func NewLessonHandler(service ports.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

type createLessonRequest struct {
	StudentID int64  `json:"student_id" validate:"required,gt=0"`
	SubjectID int64  `json:"subject_id" validate:"required,gt=0"`
	Date      string `json:"lesson_date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"lesson_time" validate:"required,datetime=15:04"`
}

type updateLessonStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /v1/lessons. The tutor is the authenticated caller.
//
// @Summary      Book a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLessonRequest  true  "Lesson details"
// @Success      201   {object}  domain.Lesson
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/lessons [post]
func (h *LessonHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson, err := h.service.Create(c.Request().Context(), ports.CreateLessonInput{
		CallerUserID: user.ID,
		StudentID:    req.StudentID,
		SubjectID:    req.SubjectID,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		return err
	}
	metrics.LessonsBookedTotal.Inc()

	return c.JSON(http.StatusCreated, lesson)
}

// ListByStudent handles GET /v1/lessons/student/:id.
//
// @Summary      List lessons for a student
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Student ID"
// @Success      200  {array}   domain.Lesson
// @Failure      401  {object}  map[string]string
// @Router       /v1/lessons/student/{id} [get]
func (h *LessonHandler) ListByStudent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	lessons, err := h.service.ListByStudent(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if lessons == nil {
		lessons = []*domain.Lesson{}
	}
	return c.JSON(http.StatusOK, lessons)
}

// ListByTutor handles GET /v1/lessons/tutor/:id.
//
// @Summary      List lessons for a tutor
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tutor ID"
// @Success      200  {array}   domain.Lesson
// @Failure      401  {object}  map[string]string
// @Router       /v1/lessons/tutor/{id} [get]
func (h *LessonHandler) ListByTutor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	lessons, err := h.service.ListByTutor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if lessons == nil {
		lessons = []*domain.Lesson{}
	}
	return c.JSON(http.StatusOK, lessons)
}

// UpdateStatus handles PUT /v1/lessons/:id/status. Only the owning tutor may
// move a lesson through its lifecycle.
//
// @Summary      Update a lesson's status
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Lesson ID"
// @Param        body  body      updateLessonStatusRequest  true  "New status"
// @Success      200   {object}  domain.Lesson
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/lessons/{id}/status [put]
func (h *LessonHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateLessonStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateLessonStatusInput{
		LessonID:     id,
		CallerUserID: user.ID,
		Status:       domain.LessonStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.LessonTransitionsTotal.WithLabelValues(string(lesson.Status)).Inc()

	return c.JSON(http.StatusOK, lesson)
}
