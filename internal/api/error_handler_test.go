package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"lesson not found", domain.ErrLessonNotFound, http.StatusNotFound},
		{"tutor not found", domain.ErrTutorNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"lesson mismatch", domain.ErrLessonMismatch, http.StatusUnprocessableEntity},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			code, _ := resolveError(tc.err, zerolog.Nop(), c)
			if code != tc.code {
				t.Fatalf("resolveError(%v) = %d, want %d", tc.err, code, tc.code)
			}
		})
	}
}

func TestResolveError_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, msg := resolveError(errors.New("pq: connection reset"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("internal errors must not leak, got %q", msg)
	}
}

func TestResolveError_ConflictDoesNotNameField(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, msg := resolveError(domain.ErrUserExists, zerolog.Nop(), c)
	if msg != "account already exists" {
		t.Fatalf("unexpected conflict message: %q", msg)
	}
}
