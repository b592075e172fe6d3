package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("non_empty_selects_first", func(t *testing.T) {
		c := New([]string{"a", "b", "c"})
		idx, ok := c.Index()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
		current, ok := c.Current()
		assert.True(t, ok)
		assert.Equal(t, "a", current)
	})

	t.Run("empty_has_no_selection", func(t *testing.T) {
		c := New[string](nil)
		_, ok := c.Index()
		assert.False(t, ok)
		_, ok = c.Current()
		assert.False(t, ok)
	})
}

func TestCursor_wrap(t *testing.T) {
	t.Parallel()

	t.Run("next_wraps_to_start", func(t *testing.T) {
		c := New([]int{10, 20, 30})
		for start := 0; start < c.Len(); start++ {
			c.Select(start)
			for i := 0; i < c.Len(); i++ {
				_, ok := c.Next()
				assert.True(t, ok)
			}
			idx, _ := c.Index()
			assert.Equal(t, start, idx, "n calls to Next should return to the original index")
		}
	})

	t.Run("previous_wraps_to_end", func(t *testing.T) {
		c := New([]int{10, 20, 30})
		for start := 0; start < c.Len(); start++ {
			c.Select(start)
			for i := 0; i < c.Len(); i++ {
				_, ok := c.Previous()
				assert.True(t, ok)
			}
			idx, _ := c.Index()
			assert.Equal(t, start, idx)
		}
	})

	t.Run("single_item_stays_put", func(t *testing.T) {
		c := New([]int{42})
		idx, ok := c.Next()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
		idx, ok = c.Previous()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})
}

func TestCursor_empty(t *testing.T) {
	t.Parallel()
	c := New[int](nil)

	_, ok := c.Next()
	assert.False(t, ok)
	_, ok = c.Previous()
	assert.False(t, ok)
	_, ok = c.Current()
	assert.False(t, ok)

	c.Select(3)
	_, ok = c.Index()
	assert.False(t, ok, "selecting on an empty cursor keeps no selection")
}

func TestCursor_Select_clamps(t *testing.T) {
	t.Parallel()
	c := New([]string{"a", "b", "c"})

	c.Select(99)
	idx, ok := c.Index()
	assert.True(t, ok)
	assert.Equal(t, 2, idx, "out-of-range selects the last valid index")

	c.Select(-5)
	idx, _ = c.Index()
	assert.Equal(t, 0, idx)

	c.Select(1)
	current, _ := c.Current()
	assert.Equal(t, "b", current)
}

func TestCursor_ClearSelection(t *testing.T) {
	t.Parallel()
	c := New([]string{"a", "b"})
	c.ClearSelection()
	_, ok := c.Current()
	assert.False(t, ok)

	// Movement re-establishes a selection on a non-empty sequence.
	idx, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	c.ClearSelection()
	idx, ok = c.Previous()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
