// Tutoring marketplace API server.
//
// @title           Tutoring System API
// @version         1.0
// @description     Backend for a tutoring marketplace: accounts, tutor and student profiles, lesson booking and feedback.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tutorhub/tutoring-system/internal/api"
	"github.com/tutorhub/tutoring-system/internal/core/service"
	"github.com/tutorhub/tutoring-system/internal/infrastructure/config"
	"github.com/tutorhub/tutoring-system/internal/infrastructure/db/postgres"
	redisdb "github.com/tutorhub/tutoring-system/internal/infrastructure/db/redis"
	"github.com/tutorhub/tutoring-system/internal/infrastructure/queue"
	"github.com/tutorhub/tutoring-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "tutoring-api"})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "tutoring-api",
	})

	// --- PostgreSQL ---
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Msg("database ready")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	tutorRepo := postgres.NewTutorRepository(pool)
	studentRepo := postgres.NewStudentRepository(pool)
	lessonRepo := postgres.NewLessonRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	subjectRepo := postgres.NewSubjectRepository(pool)

	// --- Services ---
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	authService := service.NewAuthService(userRepo, tutorRepo, studentRepo, hasher, tokens, throttle, log)
	userService := service.NewUserService(userRepo, tutorRepo, studentRepo)
	tutorService := service.NewTutorService(tutorRepo, userRepo, log)
	studentService := service.NewStudentService(studentRepo, userRepo, log)
	lessonService := service.NewLessonService(lessonRepo, tutorRepo, studentRepo, subjectRepo, log)
	ratingService := service.NewRatingService(feedbackRepo, tutorRepo, log)

	// --- Rating recompute pipeline ---
	dispatcher := queue.NewDispatcher(cfg.Rating.Workers, ratingService, log)
	dispatcher.Start(ctx)

	feedbackService := service.NewFeedbackService(feedbackRepo, studentRepo, dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Users:      userService,
		Tutors:     tutorService,
		Students:   studentService,
		Lessons:    lessonService,
		Feedback:   feedbackService,
		Subjects:   subjectRepo,
		Tokens:     tokens,
		UserLoader: userRepo,
		Pool:       pool,
		Redis:      rdb,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
