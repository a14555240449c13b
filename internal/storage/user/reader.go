package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ ITable = (*Reader)(nil)

// Reader provides read access to the users table.
type Reader struct {
	exec sqlconfig.Executor
}

// NewReader creates a Reader running against the given executor.
func NewReader(exec sqlconfig.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a user. Returns (nil, nil) when absent.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u := &User{}
	err := r.exec.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

// Exists reports whether a user record exists.
func (r *Reader) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.exec.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
