package product

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("duplicate product name")
)

type Repository interface {
	// List returns every product in catalog declaration order.
	List() []Product
	GetByName(name string) (Product, error)
	// Reset replaces all products with the provided list (used for dev / seeding)
	Reset(products []Product) error
}

// InMemoryRepository is the default catalog store and the one used by tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByName(name string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(products []Product) error {
	if err := checkUniqueNames(products); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(products))
	r.storage = append(r.storage, products...)
	return nil
}

func checkUniqueNames(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Name]; ok {
			return ErrDuplicateName
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
