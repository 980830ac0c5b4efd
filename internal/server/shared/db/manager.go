// Package db wires repositories to a storage backend. Any persistence engine
// implementing the repository interfaces can serve; the Postgres and
// in-memory managers are interchangeable variants.
package db

import (
	"context"

	"github.com/dmitrijs2005/finledger/internal/server/statements"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Close() error
	Users() users.Repository
	Statements() statements.Repository
}
