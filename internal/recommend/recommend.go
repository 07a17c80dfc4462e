package recommend

import (
	"math"
	"sort"

	"github.com/abuhisan/coffee-backend/internal/cart"
	"github.com/abuhisan/coffee-backend/internal/product"
)

// Catalog is the product list the scorer ranks.
type Catalog interface {
	List() []product.Product
}

// Recommender ranks catalog products against a cart. It holds no state
// between calls: the same cart and catalog always give the same answer.
type Recommender struct {
	catalog Catalog
	weights Weights
}

func New(catalog Catalog, w Weights) *Recommender {
	return &Recommender{catalog: catalog, weights: w}
}

// Scored is a candidate with its score, exposed for debugging responses.
type Scored struct {
	product.Product
	Score float64 `json:"score"`
}

// Recommend returns up to Limit products that are not already in the cart,
// best first.
func (r *Recommender) Recommend(items []cart.Item) []product.Product {
	scored := r.Rank(items)
	out := make([]product.Product, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Product)
	}
	return out
}

// Rank is Recommend with scores attached.
func (r *Recommender) Rank(items []cart.Item) []Scored {
	if len(items) == 0 {
		return []Scored{}
	}
	catalog := r.catalog.List()
	ctx := newCartContext(items, catalog, r.weights.PairingBoosts)

	scored := make([]Scored, 0, len(catalog))
	for _, p := range catalog {
		if ctx.names[p.Name] {
			continue
		}
		scored = append(scored, Scored{Product: p, Score: r.score(p, ctx)})
	}

	// ties keep catalog order
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if limit := r.weights.Limit; limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

type cartContext struct {
	names    map[string]bool
	cats     []product.Category
	tags     map[string]bool
	boosts   map[string]bool
	avgPrice float64
}

func newCartContext(items []cart.Item, catalog []product.Product, pairing map[product.Category][]string) cartContext {
	byName := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		if _, dup := byName[p.Name]; !dup {
			byName[p.Name] = p
		}
	}

	ctx := cartContext{
		names:  map[string]bool{},
		tags:   map[string]bool{},
		boosts: map[string]bool{},
	}
	seenCat := map[product.Category]bool{}
	sum := 0
	for _, it := range items {
		ctx.names[it.Name] = true
		sum += int(it.Price)
		if it.Category != "" && !seenCat[it.Category] {
			seenCat[it.Category] = true
			ctx.cats = append(ctx.cats, it.Category)
		}
		// lines unknown to the catalog carry no tags
		if p, ok := byName[it.Name]; ok {
			for _, t := range p.Tags {
				ctx.tags[t] = true
			}
		}
	}
	for _, c := range ctx.cats {
		for _, t := range pairing[c] {
			ctx.boosts[t] = true
		}
	}
	ctx.avgPrice = float64(sum) / float64(len(items))
	return ctx
}

func (r *Recommender) score(p product.Product, ctx cartContext) float64 {
	w := r.weights
	s := 0.0
	for _, t := range p.Tags {
		if ctx.tags[t] {
			s += w.TagOverlap
		}
		if ctx.boosts[t] {
			s += w.PairingBoost
		}
	}

	if p.Category == product.CategoryExtras {
		for _, c := range ctx.cats {
			if c != product.CategoryExtras {
				s += w.ExtrasBonus
				break
			}
		}
	}

	if len(ctx.cats) > 0 {
		dominant := ctx.cats[0]
		if p.Category != dominant && p.Category != product.CategoryExtras {
			s += w.DiversityBonus
		}
	}

	if math.Abs(float64(p.Price)-ctx.avgPrice) <= w.PriceWindow {
		s += w.PriceBonus
	}
	return s
}
