package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. Users are an external collaborator here:
// the budget subsystem only ever reads them.
type User struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ITable defines the read-only user storage operations the budget subsystem
// needs.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
