package cart

import (
	"encoding/json"
	"testing"

	"github.com/abuhisan/coffee-backend/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_AddKeepsDuplicatesAsSeparateLines(t *testing.T) {
	latte := Item{Name: "كافيه لاتيه", Price: 18, Emoji: "🥛", Category: product.CategoryEspresso}

	s := Reduce(State{}, Add{Item: latte})
	s = Reduce(s, Add{Item: latte})

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 36, s.Total())
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := State{Items: []Item{{Name: "موكا", Price: 20, Emoji: "🍫"}, {Name: "كابتشينو", Price: 18, Emoji: "☁️"}}}

	_ = Reduce(before, Add{Item: Item{Name: "صوص الكراميل", Price: 3}})
	_ = Reduce(before, Remove{Index: 0})
	_ = Reduce(before, Clear{})

	require.Len(t, before.Items, 2)
	assert.Equal(t, "موكا", before.Items[0].Name)
	assert.Equal(t, "كابتشينو", before.Items[1].Name)
}

func TestReduce_RemoveByIndex(t *testing.T) {
	s := State{Items: []Item{{Name: "a", Price: 1}, {Name: "b", Price: 2}, {Name: "c", Price: 3}}}

	got := Reduce(s, Remove{Index: 1})

	require.Len(t, got.Items, 2)
	assert.Equal(t, "a", got.Items[0].Name)
	assert.Equal(t, "c", got.Items[1].Name)
	assert.Equal(t, 4, got.Total())
}

func TestReduce_RemoveOutOfRangeIsNoop(t *testing.T) {
	s := State{Items: []Item{{Name: "a", Price: 1}}}

	assert.Equal(t, s, Reduce(s, Remove{Index: 5}))
	assert.Equal(t, s, Reduce(s, Remove{Index: -1}))
}

func TestReduce_Clear(t *testing.T) {
	s := State{Items: []Item{{Name: "a", Price: 1}}}

	got := Reduce(s, Clear{})

	assert.Equal(t, 0, got.Count())
	assert.Equal(t, 0, got.Total())
	assert.NotNil(t, got.Items)
}

func TestReduce_AddDefaultsEmoji(t *testing.T) {
	got := Reduce(State{}, Add{Item: Item{Name: "قهوة", Price: 10}})

	assert.Equal(t, DefaultEmoji, got.Items[0].Emoji)
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	cases := map[string]Price{
		`15`:          15,
		`15.7`:        15,
		`"12"`:        12,
		`"12 ريال"`:   12,
		`"abc"`:       0,
		`""`:          0,
		`-4`:          0,
		`null`:        0,
		`"  7"`:       7,
	}
	for in, want := range cases {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(in), &p), in)
		assert.Equal(t, want, p, in)
	}
}

func TestNewItem_SnapshotsProduct(t *testing.T) {
	p := product.Product{Name: "موكا", Price: 20, Emoji: "🍫", Category: product.CategoryEspresso, Tags: []string{"sweet"}}

	it := NewItem(p)
	p.Price = 99

	assert.Equal(t, Item{Name: "موكا", Price: 20, Emoji: "🍫", Category: product.CategoryEspresso}, it)
}
