package cart

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/abuhisan/coffee-backend/internal/product"
)

// DefaultEmoji is shown for lines added without an icon.
const DefaultEmoji = "☕"

// Price is a whole-riyal amount. It decodes from a JSON number or a string
// and reads only the leading integer, so "12 ريال" is 12 and "abc" is 0.
// Negative or malformed values decode to 0.
type Price int

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*p = 0
			return nil
		}
		raw = s
	}
	*p = ParsePrice(raw)
	return nil
}

// ParsePrice reads the leading base-10 integer of s.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return Price(n)
}

// Item is a snapshot of a product at the time it was added. Later catalog
// edits do not change lines already in a cart.
type Item struct {
	Name     string           `json:"name"`
	Price    Price            `json:"price"`
	Emoji    string           `json:"emoji"`
	Category product.Category `json:"category"`
}

func NewItem(p product.Product) Item {
	return Item{Name: p.Name, Price: Price(p.Price), Emoji: p.Emoji, Category: p.Category}
}

func (i Item) normalized() Item {
	i.Name = strings.TrimSpace(i.Name)
	if i.Emoji == "" {
		i.Emoji = DefaultEmoji
	}
	if i.Price < 0 {
		i.Price = 0
	}
	return i
}

// State is the ordered list of cart lines. Duplicates are kept as separate
// lines.
type State struct {
	Items []Item `json:"items"`
}

func (s State) Total() int {
	total := 0
	for _, it := range s.Items {
		total += int(it.Price)
	}
	return total
}

func (s State) Count() int { return len(s.Items) }

// Action is a cart transition.
type Action interface {
	apply(State) State
}

// Add appends one line.
type Add struct{ Item Item }

// Remove deletes the line at Index. Out of range indices leave the cart
// unchanged.
type Remove struct{ Index int }

// Clear empties the cart.
type Clear struct{}

func (a Add) apply(s State) State {
	items := make([]Item, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	return State{Items: append(items, a.Item.normalized())}
}

func (a Remove) apply(s State) State {
	if a.Index < 0 || a.Index >= len(s.Items) {
		return s
	}
	items := make([]Item, 0, len(s.Items)-1)
	items = append(items, s.Items[:a.Index]...)
	items = append(items, s.Items[a.Index+1:]...)
	return State{Items: items}
}

func (Clear) apply(State) State { return State{Items: []Item{}} }

// Reduce returns the state after applying a. The input state is never
// modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
