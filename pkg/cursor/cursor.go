// Package cursor provides an ordered sequence with a movable,
// wrap-around selection index.
package cursor

const noSelection = -1

type Cursor[T any] struct {
	items []T
	index int
}

// New builds a cursor over items, selecting index 0 when non-empty.
func New[T any](items []T) *Cursor[T] {
	c := &Cursor[T]{items: items, index: noSelection}
	if len(items) > 0 {
		c.index = 0
	}
	return c
}

func (c *Cursor[T]) Len() int {
	return len(c.items)
}

func (c *Cursor[T]) Items() []T {
	return c.items
}

// Index returns the selected index, or false when nothing is selected.
func (c *Cursor[T]) Index() (int, bool) {
	if c.index == noSelection {
		return 0, false
	}
	return c.index, true
}

// Current returns the selected item, or false when nothing is selected.
func (c *Cursor[T]) Current() (T, bool) {
	if c.index == noSelection {
		var zero T
		return zero, false
	}
	return c.items[c.index], true
}

// Select sets the selection, clamping out-of-range requests to the nearest
// valid index. On an empty sequence the selection stays cleared.
func (c *Cursor[T]) Select(i int) {
	if len(c.items) == 0 {
		c.index = noSelection
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.items) {
		i = len(c.items) - 1
	}
	c.index = i
}

// ClearSelection drops the selection without touching the items.
func (c *Cursor[T]) ClearSelection() {
	c.index = noSelection
}

// Next advances the selection by one, wrapping past the last index to 0.
// Returns the new index, or false on an empty sequence.
func (c *Cursor[T]) Next() (int, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	switch {
	case c.index == noSelection:
		c.index = 0
	case c.index >= len(c.items)-1:
		c.index = 0
	default:
		c.index++
	}
	return c.index, true
}

// Previous retreats the selection by one, wrapping past 0 to the last index.
// Returns the new index, or false on an empty sequence.
func (c *Cursor[T]) Previous() (int, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	switch {
	case c.index == noSelection:
		c.index = 0
	case c.index == 0:
		c.index = len(c.items) - 1
	default:
		c.index--
	}
	return c.index, true
}
