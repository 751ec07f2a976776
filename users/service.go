// Business logic for the users module: reading user records out of the
// shared users table.
package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/authsvc-go/apperror"
)

// UserService provides read access to user records.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// ListUsers returns every user record, unpaginated. The full-table read is
// an accepted limit at current user counts.
func (s *UserService) ListUsers(ctx context.Context) ([]UserRecord, error) {
	query := `SELECT id, username, password, created_at FROM users ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	records := []UserRecord{}
	for rows.Next() {
		var rec UserRecord
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Password, &rec.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read user rows", err)
	}

	return records, nil
}
