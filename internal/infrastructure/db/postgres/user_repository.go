package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// userDB is the slice of pgxpool.Pool the repository uses. Tests substitute
// a fake to drive the transactional paths of Create.
type userDB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db userDB
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

const userColumns = "user_id, first_name, last_name, email, phone, role_id, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var roleID int
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &roleID, &u.CreatedAt); err != nil {
		return nil, err
	}
	role, err := domain.RoleFromID(roleID)
	if err != nil {
		return nil, err
	}
	u.Role = role
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE user_id = $1", id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

// FindByEmail joins the credential so the auth service can verify the
// password with a single round trip.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, *domain.Credential, error) {
	row := r.db.QueryRow(ctx, `
		SELECT u.user_id, u.first_name, u.last_name, u.email, u.phone, u.role_id, u.created_at,
		       a.auth_id, a.password_hash
		FROM users AS u
		JOIN authentication AS a ON a.user_id = u.user_id
		WHERE u.email = $1`, email)

	var u domain.User
	var c domain.Credential
	var roleID int
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &roleID, &u.CreatedAt,
		&c.AuthID, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("find user by email: %w", err)
	}

	role, err := domain.RoleFromID(roleID)
	if err != nil {
		return nil, nil, err
	}
	u.Role = role
	c.UserID = u.ID
	return &u, &c, nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE phone = $1", phone)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by phone: %w", err)
	}
	return user, nil
}

// Create inserts the user and its credential in one transaction. The unique
// constraints on email and phone reject duplicates; which field collided is
// deliberately not disclosed.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	created := *user
	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phone, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at`,
		user.FirstName, user.LastName, user.Email, user.Phone, user.Role.ID(),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapUserInsertErr(err)
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO authentication (user_id, password_hash) VALUES ($1, $2)",
		created.ID, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("insert credential: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func mapUserInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrUserExists
	}
	return fmt.Errorf("insert user: %w", err)
}
