package statements

import (
	"context"
)

// Repository is the append-only statement store contract.
//
// ListByUser must return statements in insertion order; the balance policy
// depends on it. GetByID is ownership-scoped: a statement id that exists but
// belongs to a different user is reported as common.ErrorNotFound,
// indistinguishable from a missing id.
type Repository interface {
	Create(ctx context.Context, statement *Statement) (*Statement, error)
	ListByUser(ctx context.Context, userID string) ([]*Statement, error)
	GetByID(ctx context.Context, userID, id string) (*Statement, error)
}
