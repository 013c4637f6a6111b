package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// FeedbackHandler handles HTTP requests for lesson feedback.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type createFeedbackRequest struct {
	LessonID int64  `json:"lesson_id" validate:"required,gt=0"`
	TutorID  int64  `json:"tutor_id"  validate:"required,gt=0"`
	Rating   int    `json:"rating"    validate:"required,min=1,max=5"`
	Comment  string `json:"comment"   validate:"omitempty,max=2000"`
}

// Create handles POST /v1/feedbacks. The student is the authenticated caller.
//
// @Summary      Submit feedback for a lesson
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFeedbackRequest  true  "Feedback details"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/feedbacks [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	feedback, err := h.service.Create(c.Request().Context(), ports.CreateFeedbackInput{
		CallerUserID: user.ID,
		LessonID:     req.LessonID,
		TutorID:      req.TutorID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, feedback)
}

// ListByTutor handles GET /v1/feedbacks/tutor/:id.
//
// @Summary      List feedback for a tutor, most recent first
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tutor ID"
// @Success      200  {array}   domain.Feedback
// @Failure      401  {object}  map[string]string
// @Router       /v1/feedbacks/tutor/{id} [get]
func (h *FeedbackHandler) ListByTutor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	feedbacks, err := h.service.ListByTutor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if feedbacks == nil {
		feedbacks = []*domain.Feedback{}
	}
	return c.JSON(http.StatusOK, feedbacks)
}
