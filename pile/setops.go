package pile

import "github.com/hupe1980/pilekit/core"

// Set algebra. Result order is uniform across all three operations: items
// contributed by the receiver keep the receiver's order, items contributed
// only by the other pile are appended in the other pile's order. Results
// carry the receiver's type constraint.

// clone returns a new pile with the receiver's contents, order and
// constraint.
func (p *Pile[T]) clone() *Pile[T] {
	ids, items := p.snapshot()
	out := p.derived(len(ids))
	for _, id := range ids {
		out.items[id] = items[id]
		out.order.Include(id)
	}
	return out
}

// Union returns a new pile holding every item present in either pile.
func (p *Pile[T]) Union(other *Pile[T]) *Pile[T] {
	if other == p {
		return p.clone()
	}
	oIDs, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	out := p.derived(len(p.items) + len(oIDs))
	for _, id := range p.order.IDs() {
		out.items[id] = p.items[id]
		out.order.Include(id)
	}
	for _, id := range oIDs {
		if _, exists := out.items[id]; exists {
			continue
		}
		out.items[id] = oItems[id]
		out.order.Include(id)
	}
	return out
}

// Intersection returns a new pile holding the items present in both piles,
// in the receiver's order.
func (p *Pile[T]) Intersection(other *Pile[T]) *Pile[T] {
	if other == p {
		return p.clone()
	}
	_, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	out := p.derived(min(len(p.items), len(oItems)))
	for _, id := range p.order.IDs() {
		if _, exists := oItems[id]; !exists {
			continue
		}
		out.items[id] = p.items[id]
		out.order.Include(id)
	}
	return out
}

// SymmetricDifference returns a new pile holding the items present in
// exactly one of the two piles.
func (p *Pile[T]) SymmetricDifference(other *Pile[T]) *Pile[T] {
	if other == p {
		return p.derived(0)
	}
	oIDs, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	out := p.derived(len(p.items) + len(oIDs))
	for _, id := range p.order.IDs() {
		if _, exists := oItems[id]; exists {
			continue
		}
		out.items[id] = p.items[id]
		out.order.Include(id)
	}
	for _, id := range oIDs {
		if _, exists := p.items[id]; exists {
			continue
		}
		out.items[id] = oItems[id]
		out.order.Include(id)
	}
	return out
}

// Merge is the in-place union: items only in other are validated as a batch
// and appended in other's order. Nothing changes when validation fails.
func (p *Pile[T]) Merge(other *Pile[T]) error {
	if other == p {
		return nil
	}
	oIDs, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	incoming := make([]T, 0, len(oIDs))
	for _, id := range oIDs {
		if _, exists := p.items[id]; !exists {
			incoming = append(incoming, oItems[id])
		}
	}
	return p.includeLocked(incoming)
}

// Retain is the in-place intersection: items absent from other are removed.
func (p *Pile[T]) Retain(other *Pile[T]) {
	if other == p {
		return
	}
	_, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	for _, id := range p.order.IDs() {
		if _, exists := oItems[id]; exists {
			continue
		}
		delete(p.items, id)
		p.order.Exclude(id)
	}
}

// Toggle is the in-place symmetric difference: items present in both piles
// are removed, items only in other are appended in other's order. Incoming
// items are validated as a batch before any change.
func (p *Pile[T]) Toggle(other *Pile[T]) error {
	if other == p {
		p.Clear()
		return nil
	}
	oIDs, oItems := other.snapshot()
	p.g.Lock()
	defer p.g.Unlock()

	incoming := make([]T, 0, len(oIDs))
	var common []core.ID
	for _, id := range oIDs {
		if _, exists := p.items[id]; exists {
			common = append(common, id)
		} else {
			incoming = append(incoming, oItems[id])
		}
	}
	if err := p.checkTypes(incoming); err != nil {
		return err
	}
	for _, id := range common {
		delete(p.items, id)
		p.order.Exclude(id)
	}
	return p.includeLocked(incoming)
}
