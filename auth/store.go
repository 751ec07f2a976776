package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/authsvc-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserStore is the credential store: it persists user records and enforces
// username uniqueness. AuthService depends on this interface rather than on
// pgx directly so the flows can be tested against a fake store.
type UserStore interface {
	// CreateUser inserts a new user record. A duplicate username fails
	// with a ConflictError backed by the table's unique constraint; the
	// caller's existence check and the insert are not atomic, so this is
	// the path a registration race takes.
	CreateUser(ctx context.Context, user *User) (*User, error)
	// GetUserByUsername returns the record for the given username, or a
	// NotFoundError if no such user exists. Side-effect-free.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// PostgresStore implements UserStore on top of a pgxpool connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

var _ UserStore = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore backed by the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateUser inserts the user and fills in the generated id and timestamp.
func (s *PostgresStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (username, password)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, user.Username, user.HashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("user already existed", err)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by their username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user '%s' not found", username), nil)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}
