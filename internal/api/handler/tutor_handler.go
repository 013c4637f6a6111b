package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// TutorHandler handles HTTP requests for tutor profiles.
type TutorHandler struct {
	service ports.TutorService
}

func NewTutorHandler(service ports.TutorService) *TutorHandler {
	return &TutorHandler{service: service}
}

type tutorResponse struct {
	TutorID     int64   `json:"tutor_id"`
	UserID      int64   `json:"user_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	Experience  int     `json:"experience"`
	Rating      float64 `json:"rating"`
}

type updateTutorRequest struct {
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Experience  *int    `json:"experience"  validate:"omitempty,gte=0"`
}

func tutorDetailResponse(d ports.TutorDetail) tutorResponse {
	return tutorResponse{
		TutorID:     d.Tutor.ID,
		UserID:      d.User.ID,
		FirstName:   d.User.FirstName,
		LastName:    d.User.LastName,
		Email:       d.User.Email,
		Description: d.Tutor.Description,
		Experience:  d.Tutor.Experience,
		Rating:      d.Tutor.Rating,
	}
}

// List handles GET /v1/tutors.
//
// @Summary      List all tutors
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tutorResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/tutors [get]
func (h *TutorHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]tutorResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, tutorDetailResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/tutors/:id.
//
// @Summary      Get a tutor by id
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tutor ID"
// @Success      200  {object}  tutorResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/tutors/{id} [get]
func (h *TutorHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutorDetailResponse(*detail))
}

// Update handles PUT /v1/tutors/:id. Tutors may only edit their own profile.
//
// @Summary      Update a tutor profile
// @Tags         tutors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Tutor ID"
// @Param        body  body      updateTutorRequest  true  "Fields to update"
// @Success      200   {object}  domain.Tutor
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tutors/{id} [put]
func (h *TutorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateTutorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tutor, err := h.service.UpdateProfile(c.Request().Context(), ports.UpdateTutorInput{
		TutorID:      id,
		CallerUserID: user.ID,
		Description:  req.Description,
		Experience:   req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutor)
}
