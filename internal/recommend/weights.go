package recommend

import (
	"errors"
	"fmt"
	"os"

	"github.com/abuhisan/coffee-backend/internal/product"
	"gopkg.in/yaml.v3"
)

// Weights are the scoring knobs. A YAML file only needs the keys it changes;
// a key set to 0 turns that rule off. Limit 0 means no cap.
type Weights struct {
	TagOverlap     float64 `yaml:"tag_overlap"`
	PairingBoost   float64 `yaml:"pairing_boost"`
	ExtrasBonus    float64 `yaml:"extras_bonus"`
	DiversityBonus float64 `yaml:"diversity_bonus"`
	PriceBonus     float64 `yaml:"price_bonus"`
	PriceWindow    float64 `yaml:"price_window"`
	Limit          int     `yaml:"limit"`

	// PairingBoosts maps a cart category to tags that pair well with it.
	PairingBoosts map[product.Category][]string `yaml:"pairing_boosts"`
}

func DefaultWeights() Weights {
	return Weights{
		TagOverlap:     1.5,
		PairingBoost:   2.5,
		ExtrasBonus:    1.5,
		DiversityBonus: 1.5,
		PriceBonus:     0.5,
		PriceWindow:    6,
		Limit:          3,
		PairingBoosts: map[product.Category][]string{
			product.CategoryArabic:   {"spiced", "traditional", "floral", "extra"},
			product.CategoryEspresso: {"milky", "sweet", "creamy", "extra", "chocolate"},
			product.CategoryCold:     {"cold", "refreshing", "sweet", "extra"},
			product.CategoryTea:      {"healthy", "floral", "minty", "extra"},
			product.CategoryExtras:   {},
		},
	}
}

// LoadWeights reads overrides from a YAML file on top of the defaults. A
// missing file is not an error.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return w, nil
		}
		return w, fmt.Errorf("read recommend config: %w", err)
	}

	var o override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return w, fmt.Errorf("parse recommend config: %w", err)
	}
	if o.Limit != nil && *o.Limit < 0 {
		return w, fmt.Errorf("parse recommend config: limit must not be negative, got %d", *o.Limit)
	}
	return w.merge(o), nil
}

// override mirrors Weights with pointer fields so a key set to 0 is told
// apart from a key that is absent.
type override struct {
	TagOverlap     *float64                      `yaml:"tag_overlap"`
	PairingBoost   *float64                      `yaml:"pairing_boost"`
	ExtrasBonus    *float64                      `yaml:"extras_bonus"`
	DiversityBonus *float64                      `yaml:"diversity_bonus"`
	PriceBonus     *float64                      `yaml:"price_bonus"`
	PriceWindow    *float64                      `yaml:"price_window"`
	Limit          *int                          `yaml:"limit"`
	PairingBoosts  map[product.Category][]string `yaml:"pairing_boosts"`
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (w Weights) merge(o override) Weights {
	setFloat(&w.TagOverlap, o.TagOverlap)
	setFloat(&w.PairingBoost, o.PairingBoost)
	setFloat(&w.ExtrasBonus, o.ExtrasBonus)
	setFloat(&w.DiversityBonus, o.DiversityBonus)
	setFloat(&w.PriceBonus, o.PriceBonus)
	setFloat(&w.PriceWindow, o.PriceWindow)
	if o.Limit != nil {
		w.Limit = *o.Limit
	}
	if o.PairingBoosts != nil {
		boosts := make(map[product.Category][]string, len(w.PairingBoosts))
		for k, v := range w.PairingBoosts {
			boosts[k] = v
		}
		for k, v := range o.PairingBoosts {
			if v == nil {
				v = []string{}
			}
			boosts[k] = v
		}
		w.PairingBoosts = boosts
	}
	return w
}
