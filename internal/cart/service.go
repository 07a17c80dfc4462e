package cart

import (
	"errors"
	"strings"

	"github.com/abuhisan/coffee-backend/internal/product"
)

var ErrInvalidItem = errors.New("cart item requires a name")

// Catalog resolves product names to their current catalog entry.
type Catalog interface {
	GetByName(name string) (product.Product, error)
}

// Service orchestrates cart operations. Every mutation goes through Reduce.
type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) Get(sessionID string) State {
	return s.repo.Get(sessionID)
}

// AddByName snapshots the named catalog product into the cart.
func (s *Service) AddByName(sessionID, name string) (State, error) {
	p, err := s.catalog.GetByName(strings.TrimSpace(name))
	if err != nil {
		return State{}, err
	}
	return s.Apply(sessionID, Add{Item: NewItem(p)}), nil
}

// AddItem appends a line exactly as described by the caller, the way a
// product card on the page describes itself.
func (s *Service) AddItem(sessionID string, it Item) (State, error) {
	if strings.TrimSpace(it.Name) == "" {
		return State{}, ErrInvalidItem
	}
	return s.Apply(sessionID, Add{Item: it}), nil
}

func (s *Service) Remove(sessionID string, index int) State {
	return s.Apply(sessionID, Remove{Index: index})
}

func (s *Service) Clear(sessionID string) {
	s.Apply(sessionID, Clear{})
}

func (s *Service) Apply(sessionID string, a Action) State {
	return s.repo.Update(sessionID, func(cur State) State {
		return Reduce(cur, a)
	})
}
