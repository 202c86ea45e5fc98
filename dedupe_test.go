package cardex_test

import (
	"testing"

	"github.com/stefw/cardex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(identity string) *cardex.Product {
	return &cardex.Product{
		Identity: identity,
		Title:    "Item",
		Price:    "$9.99",
	}
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("filters records already in the set", func(t *testing.T) {
		t.Parallel()

		set := cardex.NewIdentitySet("https://example.com/p/a")
		novel := cardex.Dedupe(set, []*cardex.Product{
			product("https://example.com/p/a"),
			product("https://example.com/p/b"),
		})

		require.Len(t, novel, 1)
		assert.Equal(t, "https://example.com/p/b", novel[0].Identity)
	})

	t.Run("accepted identities grow the set within one batch", func(t *testing.T) {
		t.Parallel()

		set := cardex.NewIdentitySet()
		novel := cardex.Dedupe(set, []*cardex.Product{
			product("https://example.com/p/a"),
			product("https://example.com/p/a"),
		})

		require.Len(t, novel, 1)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("is monotone across batches", func(t *testing.T) {
		t.Parallel()

		set := cardex.NewIdentitySet()
		records := []*cardex.Product{
			product("https://example.com/p/a"),
			product("https://example.com/p/b"),
		}

		first := cardex.Dedupe(set, records)
		second := cardex.Dedupe(set, records)

		assert.Len(t, first, 2)
		assert.Empty(t, second)
	})

	t.Run("same identity across two documents yields one record", func(t *testing.T) {
		t.Parallel()

		set := cardex.NewIdentitySet()
		page1 := cardex.Dedupe(set, []*cardex.Product{product("https://example.com/p/a")})
		page2 := cardex.Dedupe(set, []*cardex.Product{product("https://example.com/p/a")})

		assert.Len(t, page1, 1)
		assert.Empty(t, page2)
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		t.Parallel()

		set := cardex.NewIdentitySet()
		assert.Empty(t, cardex.Dedupe(set, nil))
	})
}

func TestIdentitySet(t *testing.T) {
	t.Parallel()

	set := cardex.NewIdentitySet("a", "b")

	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("c"))
	assert.Equal(t, 2, set.Len())

	set.Add("c")
	assert.True(t, set.Contains("c"))
	assert.Equal(t, 3, set.Len())
}
