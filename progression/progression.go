package progression

import (
	"fmt"
	"slices"

	"github.com/hupe1980/pilekit/core"
)

// Progression maintains order over a set of identifiers. The zero value is an
// empty progression ready for use.
type Progression struct {
	order []core.ID
}

// New creates a progression seeded with the given ids. Duplicate ids in the
// seed are kept once, at their first position.
func New(ids ...core.ID) *Progression {
	p := &Progression{}
	for _, id := range ids {
		p.Include(id)
	}
	return p
}

// Len returns the number of ids in the progression.
func (p *Progression) Len() int { return len(p.order) }

// IsEmpty reports whether the progression holds no ids.
func (p *Progression) IsEmpty() bool { return len(p.order) == 0 }

// Contains reports whether id is present.
func (p *Progression) Contains(id core.ID) bool {
	return slices.Contains(p.order, id)
}

// IndexOf returns the position of id, or -1 if absent.
func (p *Progression) IndexOf(id core.ID) int {
	return slices.Index(p.order, id)
}

// Append adds id at the end. It returns ErrDuplicate if id is already
// present.
func (p *Progression) Append(id core.ID) error {
	if p.Contains(id) {
		return fmt.Errorf("%w: %s", core.ErrDuplicate, id)
	}
	p.order = append(p.order, id)
	return nil
}

// Insert places id at the given position, shifting ids at or after that
// position right by one. Negative indices count from the end; the resolved
// position is clamped to [0, Len]. It returns ErrDuplicate if id is already
// present.
func (p *Progression) Insert(index int, id core.ID) error {
	if p.Contains(id) {
		return fmt.Errorf("%w: %s", core.ErrDuplicate, id)
	}
	if index < 0 {
		index += len(p.order)
	}
	index = min(max(index, 0), len(p.order))
	p.order = slices.Insert(p.order, index, id)
	return nil
}

// Remove deletes id from the progression. It returns ErrNotFound if absent.
func (p *Progression) Remove(id core.ID) error {
	i := p.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	p.order = slices.Delete(p.order, i, i+1)
	return nil
}

// Include adds id at the end if it is not already present. It reports
// whether the progression changed.
func (p *Progression) Include(id core.ID) bool {
	if p.Contains(id) {
		return false
	}
	p.order = append(p.order, id)
	return true
}

// Exclude removes id if present. It reports whether the progression changed.
func (p *Progression) Exclude(id core.ID) bool {
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}
	p.order = slices.Delete(p.order, i, i+1)
	return true
}

// At returns the id at index. Negative indices count from the end. An index
// outside the valid range returns ErrInvalidKey.
func (p *Progression) At(index int) (core.ID, error) {
	i, err := p.resolve(index)
	if err != nil {
		return "", err
	}
	return p.order[i], nil
}

// PopAt removes and returns the id at index, with At's index semantics.
func (p *Progression) PopAt(index int) (core.ID, error) {
	i, err := p.resolve(index)
	if err != nil {
		return "", err
	}
	id := p.order[i]
	p.order = slices.Delete(p.order, i, i+1)
	return id, nil
}

// Slice returns a copy of the ids in [from, to). Negative bounds count from
// the end and out-of-range bounds are clamped, mirroring list slicing.
func (p *Progression) Slice(from, to int) []core.ID {
	n := len(p.order)
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	from = min(max(from, 0), n)
	to = min(max(to, 0), n)
	if from >= to {
		return []core.ID{}
	}
	return slices.Clone(p.order[from:to])
}

// IDs returns a defensive copy of the full order.
func (p *Progression) IDs() []core.ID {
	return slices.Clone(p.order)
}

// Clear removes all ids.
func (p *Progression) Clear() {
	p.order = p.order[:0]
}

// Reverse returns a new progression with the order reversed.
func (p *Progression) Reverse() *Progression {
	out := slices.Clone(p.order)
	slices.Reverse(out)
	return &Progression{order: out}
}

// Equal reports whether two progressions hold the same ids in the same
// order.
func (p *Progression) Equal(other *Progression) bool {
	return slices.Equal(p.order, other.order)
}

// String returns a short human-readable form for debugging.
func (p *Progression) String() string {
	return fmt.Sprintf("Progression(%d ids)", len(p.order))
}

// resolve normalizes a possibly negative index and validates range.
func (p *Progression) resolve(index int) (int, error) {
	i := index
	if i < 0 {
		i += len(p.order)
	}
	if i < 0 || i >= len(p.order) {
		return 0, fmt.Errorf("%w: index %d out of range for length %d", core.ErrInvalidKey, index, len(p.order))
	}
	return i, nil
}
