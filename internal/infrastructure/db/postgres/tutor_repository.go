package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// TutorRepository implements ports.TutorRepository on PostgreSQL.
type TutorRepository struct {
	pool *pgxpool.Pool
}

func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{pool: pool}
}

const tutorColumns = "tutor_id, user_id, description, experience, rating::float8"

func scanTutor(row pgx.Row) (*domain.Tutor, error) {
	var t domain.Tutor
	if err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Experience, &t.Rating); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TutorRepository) Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tutors (user_id, description, experience)
		VALUES ($1, $2, $3)
		RETURNING `+tutorColumns,
		tutor.UserID, tutor.Description, tutor.Experience)

	created, err := scanTutor(row)
	if err != nil {
		return nil, fmt.Errorf("insert tutor: %w", err)
	}
	return created, nil
}

func (r *TutorRepository) FindByID(ctx context.Context, id int64) (*domain.Tutor, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+tutorColumns+" FROM tutors WHERE tutor_id = $1", id)

	tutor, err := scanTutor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("find tutor: %w", err)
	}
	return tutor, nil
}

func (r *TutorRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Tutor, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+tutorColumns+" FROM tutors WHERE user_id = $1", userID)

	tutor, err := scanTutor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("find tutor by user: %w", err)
	}
	return tutor, nil
}

func (r *TutorRepository) List(ctx context.Context) ([]*domain.Tutor, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+tutorColumns+" FROM tutors ORDER BY tutor_id")
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*domain.Tutor
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}
	return tutors, rows.Err()
}

// UpdateProfile applies the non-nil fields; nil fields keep their value via
// COALESCE.
func (r *TutorRepository) UpdateProfile(ctx context.Context, id int64, update ports.TutorProfileUpdate) (*domain.Tutor, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tutors
		SET description = COALESCE($2, description),
		    experience  = COALESCE($3, experience)
		WHERE tutor_id = $1
		RETURNING `+tutorColumns,
		id, update.Description, update.Experience)

	tutor, err := scanTutor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("update tutor: %w", err)
	}
	return tutor, nil
}

func (r *TutorRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE tutors SET rating = $2 WHERE tutor_id = $1", id, rating)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTutorNotFound
	}
	return nil
}
