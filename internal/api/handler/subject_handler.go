package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// SubjectHandler serves the read-only subject catalogue.
type SubjectHandler struct {
	subjects ports.SubjectRepository
}

func NewSubjectHandler(subjects ports.SubjectRepository) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

// List handles GET /v1/subjects.
//
// @Summary      List all subjects
// @Tags         subjects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Subject
// @Failure      401  {object}  map[string]string
// @Router       /v1/subjects [get]
func (h *SubjectHandler) List(c echo.Context) error {
	subjects, err := h.subjects.List(c.Request().Context())
	if err != nil {
		return err
	}
	if subjects == nil {
		subjects = []*domain.Subject{}
	}
	return c.JSON(http.StatusOK, subjects)
}
