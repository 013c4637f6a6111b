package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// StudentHandler handles HTTP requests for student profiles.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type studentResponse struct {
	StudentID      int64  `json:"student_id"`
	UserID         int64  `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	EducationLevel string `json:"education_level"`
	Interests      string `json:"interests"`
}

type updateStudentRequest struct {
	EducationLevel string `json:"education_level" validate:"required,oneof=Beginner Elementary Intermediate"`
}

// Get handles GET /v1/students/:id.
//
// @Summary      Get a student by id
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  studentResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studentResponse{
		StudentID:      detail.Student.ID,
		UserID:         detail.User.ID,
		FirstName:      detail.User.FirstName,
		LastName:       detail.User.LastName,
		Email:          detail.User.Email,
		EducationLevel: detail.Student.EducationLevel,
		Interests:      detail.Student.Interests,
	})
}

// Update handles PUT /v1/students/:id. Students may only edit their own profile.
//
// @Summary      Update a student's education level
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Student ID"
// @Param        body  body      updateStudentRequest  true  "New education level"
// @Success      200   {object}  domain.Student
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.UpdateEducationLevel(c.Request().Context(), ports.UpdateStudentInput{
		StudentID:      id,
		CallerUserID:   user.ID,
		EducationLevel: req.EducationLevel,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}
