package cart

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Repository stores one cart per session.
type Repository interface {
	Get(sessionID string) State
	// Update applies fn to the session's current state and stores the result
	// atomically with respect to other updates of the same store.
	Update(sessionID string, fn func(State) State) State
	Delete(sessionID string)
}

// InMemoryRepository keeps carts in an expiring cache. A cart that is not
// touched for the TTL disappears with its session.
type InMemoryRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewInMemoryRepository(ttl time.Duration) *InMemoryRepository {
	return &InMemoryRepository{cache: cache.New(ttl, 10*time.Minute)}
}

func (r *InMemoryRepository) Get(sessionID string) State {
	if x, found := r.cache.Get(sessionID); found {
		return x.(State)
	}
	return State{Items: []Item{}}
}

func (r *InMemoryRepository) Update(sessionID string, fn func(State) State) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := fn(r.Get(sessionID))
	r.cache.Set(sessionID, next, cache.DefaultExpiration)
	return next
}

func (r *InMemoryRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
