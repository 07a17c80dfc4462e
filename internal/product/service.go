package product

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByName(name string) (Product, error) {
	return s.repo.GetByName(name)
}

// Filter keeps products of the given category. "all" or an empty string
// returns the whole catalog.
func (s *Service) Filter(category string) []Product {
	return s.Query(category, "")
}

// Search keeps products whose name or description contains q, ignoring case
// and surrounding whitespace. An empty query matches everything.
func (s *Service) Search(q string) []Product {
	return s.Query("", q)
}

// Query applies the category filter and the text search together, keeping
// catalog order.
func (s *Service) Query(category, q string) []Product {
	category = strings.ToLower(strings.TrimSpace(category))
	q = strings.ToLower(strings.TrimSpace(q))

	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
