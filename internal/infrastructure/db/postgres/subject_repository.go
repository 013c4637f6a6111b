package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// SubjectRepository implements ports.SubjectRepository on PostgreSQL.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*domain.Subject, error) {
	var s domain.Subject
	err := r.pool.QueryRow(ctx,
		"SELECT subject_id, subject_name, COALESCE(description, '') FROM subjects WHERE subject_id = $1", id,
	).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return &s, nil
}

func (r *SubjectRepository) List(ctx context.Context) ([]*domain.Subject, error) {
	rows, err := r.pool.Query(ctx, "SELECT subject_id, subject_name, COALESCE(description, '') FROM subjects ORDER BY subject_id")
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, &s)
	}
	return subjects, rows.Err()
}
