package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/finledger/internal/common"
)

// InMemoryRepository is an interchangeable Repository variant backed by maps.
// It is used by tests and by server runs without a database DSN. The mutex
// protects individual operations only; it provides no cross-operation
// serialization.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorConflict
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	user := r.byID[id]
	return &user, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &user, nil
}
