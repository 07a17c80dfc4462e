package category

import "github.com/abuhisan/coffee-backend/internal/product"

// Catalog is the slice of the product service the tabs need.
type Catalog interface {
	List() []product.Product
}

// Service provides business logic for categories.
type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{catalog: c}
}

// List returns the "all" tab followed by every category in menu order, each
// with the number of products currently in it.
func (s *Service) List() []CategoryItem {
	counts := map[product.Category]int{}
	products := s.catalog.List()
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]CategoryItem, 0, len(product.AllowedCategories)+1)
	out = append(out, CategoryItem{CategoryID: AllID, CategoryName: labels[AllID], Count: len(products)})
	for _, c := range product.AllowedCategories {
		out = append(out, CategoryItem{
			CategoryID:   string(c),
			CategoryName: labels[string(c)],
			Count:        counts[c],
		})
	}
	return out
}
