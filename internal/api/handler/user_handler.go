package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// UserHandler handles HTTP requests about accounts themselves.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type profileResponse struct {
	User      *domain.User `json:"user"`
	TutorID   *int64       `json:"tutor_id,omitempty"`
	StudentID *int64       `json:"student_id,omitempty"`
}

// Me handles GET /users/me.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		User:      profile.User,
		TutorID:   profile.TutorID,
		StudentID: profile.StudentID,
	})
}

// List handles GET /v1/users. Admin only, enforced by RequireRole.
//
// @Summary      List all registered users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}
