package statements

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/finledger/internal/common"
)

// InMemoryRepository is an interchangeable Repository variant backed by maps.
// Per-user slices preserve insertion order. The mutex protects individual
// operations only; it does not serialize a caller's check-then-append
// sequence.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]Statement
	byUser map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:   make(map[string]Statement),
		byUser: make(map[string][]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, statement *Statement) (*Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	statement.ID = uuid.NewString()
	statement.CreatedAt = time.Now()

	r.byID[statement.ID] = *statement
	r.byUser[statement.UserID] = append(r.byUser[statement.UserID], statement.ID)

	return statement, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	result := make([]*Statement, 0, len(ids))
	for _, id := range ids {
		st := r.byID[id]
		result = append(result, &st)
	}

	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, userID, id string) (*Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byID[id]
	if !ok || st.UserID != userID {
		return nil, common.ErrorNotFound
	}

	return &st, nil
}
