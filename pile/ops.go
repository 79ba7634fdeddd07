package pile

import (
	"context"
	"fmt"

	"github.com/hupe1980/pilekit/core"
)

// Include adds each item whose id is not already present, appending new ids
// at the end in argument order. The whole batch is validated against the
// type constraint before any mutation, so a failing batch changes nothing.
// Already-present items are left untouched.
func (p *Pile[T]) Include(items ...T) error {
	p.g.Lock()
	defer p.g.Unlock()
	return p.includeLocked(items)
}

// IncludeContext is the suspension-capable mirror of Include.
func (p *Pile[T]) IncludeContext(ctx context.Context, items ...T) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	return p.includeLocked(items)
}

func (p *Pile[T]) includeLocked(items []T) error {
	if err := p.checkTypes(items); err != nil {
		return err
	}
	for _, item := range items {
		id := item.Identity()
		if _, exists := p.items[id]; exists {
			continue
		}
		p.items[id] = item
		p.order.Include(id)
	}
	return nil
}

// Exclude removes each item if present. Absent items are silently skipped.
func (p *Pile[T]) Exclude(items ...T) {
	p.g.Lock()
	defer p.g.Unlock()
	p.excludeLocked(items)
}

// ExcludeContext is the suspension-capable mirror of Exclude.
func (p *Pile[T]) ExcludeContext(ctx context.Context, items ...T) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	p.excludeLocked(items)
	return nil
}

func (p *Pile[T]) excludeLocked(items []T) {
	for _, item := range items {
		id := item.Identity()
		if _, exists := p.items[id]; !exists {
			continue
		}
		delete(p.items, id)
		p.order.Exclude(id)
	}
}

// Remove removes a single item, returning ErrNotFound if it is absent.
func (p *Pile[T]) Remove(item T) error {
	p.g.Lock()
	defer p.g.Unlock()
	return p.removeLocked(item.Identity())
}

// RemoveContext is the suspension-capable mirror of Remove.
func (p *Pile[T]) RemoveContext(ctx context.Context, item T) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	return p.removeLocked(item.Identity())
}

func (p *Pile[T]) removeLocked(id core.ID) error {
	if _, exists := p.items[id]; !exists {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	delete(p.items, id)
	p.order.Exclude(id)
	return nil
}

// Pop removes and returns the item with the given id, or ErrNotFound.
func (p *Pile[T]) Pop(id core.ID) (T, error) {
	p.g.Lock()
	defer p.g.Unlock()
	return p.popLocked(id)
}

// PopContext is the suspension-capable mirror of Pop.
func (p *Pile[T]) PopContext(ctx context.Context, id core.ID) (T, error) {
	var zero T
	if err := p.g.Acquire(ctx); err != nil {
		return zero, err
	}
	defer p.g.Unlock()
	return p.popLocked(id)
}

func (p *Pile[T]) popLocked(id core.ID) (T, error) {
	item, exists := p.items[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	delete(p.items, id)
	p.order.Exclude(id)
	return item, nil
}

// PopOr removes and returns the item with the given id, or returns def
// unchanged when the id is absent.
func (p *Pile[T]) PopOr(id core.ID, def T) T {
	item, err := p.Pop(id)
	if err != nil {
		return def
	}
	return item
}

// PopAt removes and returns the item at the given order position. Negative
// indices count from the end. Popping from an empty pile returns
// ErrEmptyPile; an out-of-range index returns ErrInvalidKey.
func (p *Pile[T]) PopAt(index int) (T, error) {
	p.g.Lock()
	defer p.g.Unlock()
	return p.popAtLocked(index)
}

// PopAtContext is the suspension-capable mirror of PopAt.
func (p *Pile[T]) PopAtContext(ctx context.Context, index int) (T, error) {
	var zero T
	if err := p.g.Acquire(ctx); err != nil {
		return zero, err
	}
	defer p.g.Unlock()
	return p.popAtLocked(index)
}

func (p *Pile[T]) popAtLocked(index int) (T, error) {
	var zero T
	if p.order.IsEmpty() {
		return zero, fmt.Errorf("%w: cannot pop by position", core.ErrEmptyPile)
	}
	id, err := p.order.PopAt(index)
	if err != nil {
		return zero, err
	}
	item := p.items[id]
	delete(p.items, id)
	return item, nil
}

// PopRange removes the items in order positions [from, to) and returns them
// as a new pile preserving the removed order and the receiver's type
// constraint. Bounds follow standard slice clamping.
func (p *Pile[T]) PopRange(from, to int) *Pile[T] {
	p.g.Lock()
	defer p.g.Unlock()
	return p.popRangeLocked(from, to)
}

// PopRangeContext is the suspension-capable mirror of PopRange.
func (p *Pile[T]) PopRangeContext(ctx context.Context, from, to int) (*Pile[T], error) {
	if err := p.g.Acquire(ctx); err != nil {
		return nil, err
	}
	defer p.g.Unlock()
	return p.popRangeLocked(from, to), nil
}

func (p *Pile[T]) popRangeLocked(from, to int) *Pile[T] {
	ids := p.order.Slice(from, to)
	out := p.derived(len(ids))
	for _, id := range ids {
		out.items[id] = p.items[id]
		out.order.Include(id)
		delete(p.items, id)
		p.order.Exclude(id)
	}
	return out
}

// Insert places item at the given order position, shifting later items right
// by one. It rejects duplicate ids with ErrDuplicate and validates the type
// constraint before mutating.
func (p *Pile[T]) Insert(index int, item T) error {
	p.g.Lock()
	defer p.g.Unlock()
	return p.insertLocked(index, item)
}

// InsertContext is the suspension-capable mirror of Insert.
func (p *Pile[T]) InsertContext(ctx context.Context, index int, item T) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	return p.insertLocked(index, item)
}

func (p *Pile[T]) insertLocked(index int, item T) error {
	if err := p.checkTypes([]T{item}); err != nil {
		return err
	}
	id := item.Identity()
	if err := p.order.Insert(index, id); err != nil {
		return err
	}
	p.items[id] = item
	return nil
}

// Append includes exactly one item at the end. Idempotent like Include.
func (p *Pile[T]) Append(item T) error {
	return p.Include(item)
}

// AppendContext is the suspension-capable mirror of Append.
func (p *Pile[T]) AppendContext(ctx context.Context, item T) error {
	return p.IncludeContext(ctx, item)
}

// Update applies each incoming item: an existing id has its stored item
// replaced in place (position unchanged), a new id is appended. The whole
// batch is validated first; one invalid item aborts the entire call.
func (p *Pile[T]) Update(items ...T) error {
	p.g.Lock()
	defer p.g.Unlock()
	return p.updateLocked(items)
}

// UpdateContext is the suspension-capable mirror of Update.
func (p *Pile[T]) UpdateContext(ctx context.Context, items ...T) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	return p.updateLocked(items)
}

func (p *Pile[T]) updateLocked(items []T) error {
	if err := p.checkTypes(items); err != nil {
		return err
	}
	for _, item := range items {
		id := item.Identity()
		if _, exists := p.items[id]; exists {
			p.items[id] = item
			continue
		}
		p.items[id] = item
		p.order.Include(id)
	}
	return nil
}

// Clear atomically empties the map and the progression.
func (p *Pile[T]) Clear() {
	p.g.Lock()
	defer p.g.Unlock()
	p.items = make(map[core.ID]T)
	p.order.Clear()
}

// ClearContext is the suspension-capable mirror of Clear.
func (p *Pile[T]) ClearContext(ctx context.Context) error {
	if err := p.g.Acquire(ctx); err != nil {
		return err
	}
	defer p.g.Unlock()
	p.items = make(map[core.ID]T)
	p.order.Clear()
	return nil
}
