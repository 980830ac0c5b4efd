package users

import (
	"context"
)

// Repository is the user store contract. Implementations must return
// common.ErrorConflict from Create when the email is already registered,
// and common.ErrorNotFound from the lookups when no user matches.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
