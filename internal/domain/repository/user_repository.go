package repository

import (
	"context"
	"errors"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Absence of a document is a legitimate steady state for most lookups (a new
// user has no friend graph, no posts), so callers usually fold it into an
// empty result instead of failing.
var ErrNotFound = errors.New("not found")

// UserRepository defines user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error

	// ListIDs returns the id of every registered user. The feed engine uses
	// it to build the rest-of-world pool.
	ListIDs(ctx context.Context) ([]string, error)
}
