// Package slots provides a fixed-capacity, ordered collection of profile
// slots with a single edit surface. Occupied slots are always a contiguous
// prefix; the edit surface may point one past the end to append.
package slots

import (
	"context"

	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"golang.org/x/sync/errgroup"
)

// NoEdit is the edit index when no edit surface is open
const NoEdit = -1

// Cell is the rendered form of one slot
type Cell struct {
	Index   int
	Sprite  string
	Label   string
	Caption string
	Empty   bool
}

// Validator checks a value about to be committed at index. existing holds the
// current occupied slots. It may return a normalized copy of the value.
type Validator[T any] func(value T, index int, existing []T) (T, error)

// RenderFunc renders one cell. ok is false for an empty slot.
type RenderFunc[T any] func(ctx context.Context, index int, value T, ok bool) Cell

// Sink receives every cell re-rendered by a mutation
type Sink func(Cell)

// Config configures a collection
type Config[T any] struct {
	Capacity int
	Validate Validator[T]
	Render   RenderFunc[T]
	Sink     Sink
}

// Collection is a capacity-bounded list of slots with one edit surface
type Collection[T any] struct {
	capacity  int
	values    []T
	editIndex int

	validate Validator[T]
	render   RenderFunc[T]
	sink     Sink
}

// New creates an empty collection
func New[T any](cfg *Config[T]) *Collection[T] {
	if cfg == nil {
		panic("slots: config is required")
	}
	if cfg.Capacity <= 0 {
		panic("slots: capacity must be positive")
	}

	return &Collection[T]{
		capacity:  cfg.Capacity,
		values:    make([]T, 0, cfg.Capacity),
		editIndex: NoEdit,
		validate:  cfg.Validate,
		render:    cfg.Render,
		sink:      cfg.Sink,
	}
}

// SetSink replaces the render sink
func (c *Collection[T]) SetSink(sink Sink) {
	c.sink = sink
}

// Size is the number of occupied slots
func (c *Collection[T]) Size() int {
	return len(c.values)
}

// Capacity is the fixed number of slots
func (c *Collection[T]) Capacity() int {
	return c.capacity
}

// EditIndex is the slot under edit, or NoEdit
func (c *Collection[T]) EditIndex() int {
	return c.editIndex
}

// Editing reports whether the edit surface is open
func (c *Collection[T]) Editing() bool {
	return c.editIndex != NoEdit
}

// Full reports whether every slot is occupied
func (c *Collection[T]) Full() bool {
	return len(c.values) >= c.capacity
}

// Get returns the value at i
func (c *Collection[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.values) {
		return zero, false
	}
	return c.values[i], true
}

// Values returns a copy of the occupied slots in order
func (c *Collection[T]) Values() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

// BeginEdit opens the edit surface on slot i. An index past the occupied
// prefix selects the next free slot; the returned bool is false in that case.
func (c *Collection[T]) BeginEdit(i int) (T, bool) {
	idx := min(i, len(c.values), c.capacity)
	if idx < 0 {
		idx = 0
	}
	c.editIndex = idx

	return c.Get(idx)
}

// CommitEdit validates value and writes it to the slot under edit. On error
// nothing changes and the surface stays open.
func (c *Collection[T]) CommitEdit(ctx context.Context, value T) error {
	if !c.Editing() {
		return dnderr.InvalidArgument("no slot is being edited")
	}
	if c.editIndex >= c.capacity {
		return dnderr.Validation("collection is full").
			WithMeta("capacity", c.capacity)
	}

	if c.validate != nil {
		normalized, err := c.validate(value, c.editIndex, c.Values())
		if err != nil {
			if !dnderr.IsValidation(err) {
				return dnderr.Validation(err.Error())
			}
			return err
		}
		value = normalized
	}

	idx := c.editIndex
	if idx < len(c.values) {
		c.values[idx] = value
	} else {
		c.values = append(c.values, value)
	}

	c.emit(c.RenderCell(ctx, idx))
	c.editIndex = NoEdit

	return nil
}

// CancelEdit closes the edit surface without changes
func (c *Collection[T]) CancelEdit() {
	c.editIndex = NoEdit
}

// RemoveCurrent deletes the slot under edit and shifts later slots down. The
// cells from the removed index to the old end are re-rendered, the last one
// as empty. Without an occupied slot under edit it only closes the surface.
func (c *Collection[T]) RemoveCurrent(ctx context.Context) {
	k := c.editIndex
	c.editIndex = NoEdit
	if k < 0 || k >= len(c.values) {
		return
	}

	oldSize := len(c.values)
	c.values = append(c.values[:k], c.values[k+1:]...)

	for i := k; i < oldSize; i++ {
		c.emit(c.RenderCell(ctx, i))
	}
}

// RenderCell renders slot i. It does not change state.
func (c *Collection[T]) RenderCell(ctx context.Context, i int) Cell {
	value, ok := c.Get(i)
	if c.render == nil {
		return Cell{Index: i, Empty: !ok}
	}
	cell := c.render(ctx, i, value, ok)
	cell.Index = i
	cell.Empty = !ok
	return cell
}

// RenderAll renders every slot concurrently, returned in index order
func (c *Collection[T]) RenderAll(ctx context.Context) []Cell {
	cells := make([]Cell, c.capacity)

	g, ctx := errgroup.WithContext(ctx)
	for i := range cells {
		g.Go(func() error {
			cells[i] = c.RenderCell(ctx, i)
			return nil
		})
	}
	// renderers never fail
	_ = g.Wait()

	return cells
}

// Restore replaces the contents, e.g. after loading a profile or a stored
// editor session. Values beyond capacity are dropped and an out-of-range
// edit index closes the surface.
func (c *Collection[T]) Restore(values []T, editIndex int) {
	if len(values) > c.capacity {
		values = values[:c.capacity]
	}
	c.values = make([]T, len(values), c.capacity)
	copy(c.values, values)

	if editIndex < 0 || editIndex > min(len(c.values), c.capacity) {
		editIndex = NoEdit
	}
	c.editIndex = editIndex
}

func (c *Collection[T]) emit(cell Cell) {
	if c.sink != nil {
		c.sink(cell)
	}
}
