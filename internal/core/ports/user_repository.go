package ports

import (
	"context"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns an error wrapping errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// ListByRoles returns every user holding one of roles, in no particular
	// order. An empty result is not an error.
	ListByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error)
}
