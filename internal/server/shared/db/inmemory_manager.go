package db

import (
	"context"

	"github.com/dmitrijs2005/finledger/internal/server/statements"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

// InMemoryRepositoryManager serves the same repository interfaces from
// process memory. Nothing survives a restart; it backs tests and DSN-less
// server runs.
type InMemoryRepositoryManager struct {
	users      users.Repository
	statements statements.Repository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:      users.NewInMemoryRepository(),
		statements: statements.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Statements() statements.Repository {
	return m.statements
}
