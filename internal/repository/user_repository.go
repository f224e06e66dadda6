package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"accounts-be/internal/entities"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert loses the race against the
	// unique constraint on email. Callers treat it as "email already exists",
	// even when an earlier FindByEmail reported no user.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, fullName, email string, phoneNumber *string, dob *time.Time, passwordHash string) (int64, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail looks up a user by exact email match.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, full_name, email, phone_number, dob, password, created_at
		FROM users
		WHERE email = $1
	`

	var user entities.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.DOB,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user inside a transaction and returns the assigned id.
// The insert either fully commits or fully rolls back; a unique-constraint
// violation on email is reported as ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, fullName, email string, phoneNumber *string, dob *time.Time, passwordHash string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (full_name, email, phone_number, dob, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query, fullName, email, phoneNumber, dob, passwordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
