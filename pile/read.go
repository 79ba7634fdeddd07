package pile

import (
	"context"
	"fmt"

	"github.com/hupe1980/pilekit/core"
)

// Get returns the item with the given id, or ErrNotFound.
func (p *Pile[T]) Get(id core.ID) (T, error) {
	p.g.Lock()
	defer p.g.Unlock()
	return p.getLocked(id)
}

// GetContext is the suspension-capable mirror of Get.
func (p *Pile[T]) GetContext(ctx context.Context, id core.ID) (T, error) {
	var zero T
	if err := p.g.Acquire(ctx); err != nil {
		return zero, err
	}
	defer p.g.Unlock()
	return p.getLocked(id)
}

func (p *Pile[T]) getLocked(id core.ID) (T, error) {
	item, exists := p.items[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	return item, nil
}

// GetOr returns the item with the given id, or def when absent.
func (p *Pile[T]) GetOr(id core.ID, def T) T {
	item, err := p.Get(id)
	if err != nil {
		return def
	}
	return item
}

// GetAt returns the item at the given order position. Negative indices count
// from the end; out-of-range indices return ErrInvalidKey.
func (p *Pile[T]) GetAt(index int) (T, error) {
	p.g.Lock()
	defer p.g.Unlock()
	var zero T
	id, err := p.order.At(index)
	if err != nil {
		return zero, err
	}
	return p.items[id], nil
}

// GetRange returns the items in order positions [from, to) as a new pile
// preserving order and the receiver's type constraint. The receiver is not
// modified. Bounds follow standard slice clamping.
func (p *Pile[T]) GetRange(from, to int) *Pile[T] {
	p.g.Lock()
	defer p.g.Unlock()

	ids := p.order.Slice(from, to)
	out := p.derived(len(ids))
	for _, id := range ids {
		out.items[id] = p.items[id]
		out.order.Include(id)
	}
	return out
}

// Keys returns the ids in current order.
func (p *Pile[T]) Keys() []core.ID {
	p.g.Lock()
	defer p.g.Unlock()
	return p.order.IDs()
}

// Values returns the items in current order.
func (p *Pile[T]) Values() []T {
	ids, items := p.snapshot()
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, items[id])
	}
	return out
}

// Entry pairs an id with its stored item.
type Entry[T core.Identifiable] struct {
	ID   core.ID
	Item T
}

// Entries returns ordered (id, item) pairs.
func (p *Pile[T]) Entries() []Entry[T] {
	ids, items := p.snapshot()
	out := make([]Entry[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry[T]{ID: id, Item: items[id]})
	}
	return out
}

// Len returns the number of stored items.
func (p *Pile[T]) Len() int {
	p.g.Lock()
	defer p.g.Unlock()
	return len(p.items)
}

// IsEmpty reports whether the pile holds no items.
func (p *Pile[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Contains reports whether an item with the given id is present.
func (p *Pile[T]) Contains(id core.ID) bool {
	p.g.Lock()
	defer p.g.Unlock()
	_, exists := p.items[id]
	return exists
}

// ContainsItem reports whether the item's id is present.
func (p *Pile[T]) ContainsItem(item T) bool {
	return p.Contains(item.Identity())
}
