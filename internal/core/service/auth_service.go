package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// dummyDigest is compared against when the email is unknown so that login
// takes the same time whether or not the account exists.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// LoginThrottle limits failed login attempts per identifier.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tutors   ports.TutorRepository
	students ports.StudentRepository
	hasher   *PasswordHasher
	tokens   *TokenService
	throttle LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tutors ports.TutorRepository,
	students ports.StudentRepository,
	hasher *PasswordHasher,
	tokens *TokenService,
	throttle LoginThrottle,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tutors:   tutors,
		students: students,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

// Register creates the User and Credential atomically, then the role profile:
// tutors get an empty description with zero experience, students start at the
// Beginner level. Admins get no profile row.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisteredUser, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	}, digest)
	if err != nil {
		return nil, err
	}

	registered := &ports.RegisteredUser{User: user}

	switch input.Role {
	case domain.RoleTutor:
		tutor, err := s.tutors.Create(ctx, &domain.Tutor{UserID: user.ID})
		if err != nil {
			return nil, err
		}
		registered.TutorID = &tutor.ID
	case domain.RoleStudent:
		student, err := s.students.Create(ctx, &domain.Student{
			UserID:         user.ID,
			EducationLevel: domain.LevelBeginner,
		})
		if err != nil {
			return nil, err
		}
		registered.StudentID = &student.ID
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("user registered")

	return registered, nil
}

// Login verifies email+password and issues a token bound to the user id.
// An unknown email and a wrong password produce the same error and burn a
// comparable amount of time, so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if ok, err := s.throttle.Allow(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !ok {
		s.logger.Info().Str("email", email).Msg("login throttled")
		return "", nil, domain.ErrInvalidCredentials
	}

	user, cred, err := s.users.FindByEmail(ctx, email)
	if err != nil || cred == nil {
		s.hasher.Verify(password, dummyDigest)
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, cred.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, 0)
	if err != nil {
		return "", nil, err
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
