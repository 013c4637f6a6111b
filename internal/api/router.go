package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tutorhub/tutoring-system/docs"
	"github.com/tutorhub/tutoring-system/internal/api/handler"
	"github.com/tutorhub/tutoring-system/internal/api/middleware"
	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// Deps bundles everything the router needs. Services are constructed in main
// so the rating pipeline can share them with the dispatcher.
type Deps struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Tutors   ports.TutorService
	Students ports.StudentService
	Lessons  ports.LessonService
	Feedback ports.FeedbackService
	Subjects ports.SubjectRepository

	Tokens     middleware.TokenVerifier
	UserLoader middleware.UserLoader

	Pool  *pgxpool.Pool
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tutoring"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	tutorHandler := handler.NewTutorHandler(deps.Tutors)
	studentHandler := handler.NewStudentHandler(deps.Students)
	lessonHandler := handler.NewLessonHandler(deps.Lessons)
	feedbackHandler := handler.NewFeedbackHandler(deps.Feedback)
	subjectHandler := handler.NewSubjectHandler(deps.Subjects)

	auth := middleware.Auth(deps.Tokens, deps.UserLoader)
	tutorOnly := middleware.RequireRole(domain.RoleTutor)
	studentOnly := middleware.RequireRole(domain.RoleStudent)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated account routes ---
	e.GET("/users/me", userHandler.Me, auth)

	// --- Versioned API ---
	v1 := e.Group("/v1", auth)

	v1.GET("/users", userHandler.List, adminOnly)

	v1.GET("/tutors", tutorHandler.List)
	v1.GET("/tutors/:id", tutorHandler.Get)
	v1.PUT("/tutors/:id", tutorHandler.Update, tutorOnly)

	v1.GET("/students/:id", studentHandler.Get)
	v1.PUT("/students/:id", studentHandler.Update, studentOnly)

	v1.POST("/lessons", lessonHandler.Create, tutorOnly)
	v1.GET("/lessons/student/:id", lessonHandler.ListByStudent)
	v1.GET("/lessons/tutor/:id", lessonHandler.ListByTutor)
	v1.PUT("/lessons/:id/status", lessonHandler.UpdateStatus, tutorOnly)

	v1.POST("/feedbacks", feedbackHandler.Create, studentOnly)
	v1.GET("/feedbacks/tutor/:id", feedbackHandler.ListByTutor)

	v1.GET("/subjects", subjectHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
