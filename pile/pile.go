package pile

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/guard"
	"github.com/hupe1980/pilekit/progression"
)

// Options configures construction of a Pile.
type Options struct {
	// ItemTypes restricts stored items to the listed type tags. Empty means
	// no constraint.
	ItemTypes []string

	// Strict requires an exact tag match against ItemTypes. When false,
	// registered subtypes of an allowed tag are accepted too.
	Strict bool

	// Order fixes the initial order explicitly. When set it must cover
	// exactly the ids of the seed items.
	Order []core.ID
}

// Pile is a concurrency-safe, optionally type-checked, ordered keyed
// container. It exclusively owns its map and progression; all access goes
// through its guarded methods. Stored items are shared references: the pile
// owns their membership and position, never their internal state.
type Pile[T core.Identifiable] struct {
	g      *guard.Guard
	items  map[core.ID]T
	order  *progression.Progression
	types  []string
	strict bool
}

// New creates a pile seeded with the given items. Seed items are validated
// against the configured type constraint before anything is stored, and
// duplicate ids are rejected with ErrDuplicate.
//
//	p, err := pile.New(msgs, func(o *pile.Options) {
//		o.ItemTypes = []string{"message"}
//		o.Strict = true
//	})
func New[T core.Identifiable](items []T, optFns ...func(o *Options)) (*Pile[T], error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	p := &Pile[T]{
		g:      guard.New(),
		items:  make(map[core.ID]T, len(items)),
		order:  progression.New(),
		types:  slices.Clone(opts.ItemTypes),
		strict: opts.Strict,
	}

	if err := p.checkTypes(items); err != nil {
		return nil, err
	}
	for _, item := range items {
		id := item.Identity()
		if _, exists := p.items[id]; exists {
			return nil, fmt.Errorf("%w: seed contains id %s twice", core.ErrDuplicate, id)
		}
		p.items[id] = item
		p.order.Include(id)
	}

	if opts.Order != nil {
		ordered, err := reorder(p.items, opts.Order)
		if err != nil {
			return nil, err
		}
		p.order = ordered
	}
	return p, nil
}

// Of creates an unconstrained pile from the given items, panicking on
// duplicate ids. Convenience for literals and tests.
func Of[T core.Identifiable](items ...T) *Pile[T] {
	p, err := New(items)
	if err != nil {
		panic(err)
	}
	return p
}

// reorder validates that an explicit order covers exactly the seeded key set.
func reorder[T core.Identifiable](items map[core.ID]T, order []core.ID) (*progression.Progression, error) {
	if len(order) != len(items) {
		return nil, fmt.Errorf("%w: explicit order has %d ids for %d items", core.ErrInvalidKey, len(order), len(items))
	}
	prog := progression.New()
	for _, id := range order {
		if _, ok := items[id]; !ok {
			return nil, fmt.Errorf("%w: order references unknown id %s", core.ErrInvalidKey, id)
		}
		if !prog.Include(id) {
			return nil, fmt.Errorf("%w: order lists id %s twice", core.ErrInvalidKey, id)
		}
	}
	return prog, nil
}

// checkTypes validates a whole incoming batch against the type constraint.
// It runs before any mutation so a failing batch leaves the pile untouched.
func (p *Pile[T]) checkTypes(items []T) error {
	if len(p.types) == 0 {
		return nil
	}
	for _, item := range items {
		tagged, ok := any(item).(core.Tagged)
		if !ok {
			return fmt.Errorf("%w: %T carries no type tag", core.ErrTypeMismatch, item)
		}
		if !p.allows(tagged.TypeTag()) {
			return fmt.Errorf("%w: tag %q not allowed", core.ErrTypeMismatch, tagged.TypeTag())
		}
	}
	return nil
}

func (p *Pile[T]) allows(tag string) bool {
	for _, want := range p.types {
		if p.strict {
			if tag == want {
				return true
			}
		} else if core.Conforms(tag, want) {
			return true
		}
	}
	return false
}

// derived creates an empty pile carrying the receiver's type constraint.
// Used by slicing and set algebra so results keep a uniform contract.
func (p *Pile[T]) derived(capacity int) *Pile[T] {
	return &Pile[T]{
		g:      guard.New(),
		items:  make(map[core.ID]T, capacity),
		order:  progression.New(),
		types:  slices.Clone(p.types),
		strict: p.strict,
	}
}

// snapshot captures a consistent (order, contents) view under the guard.
func (p *Pile[T]) snapshot() ([]core.ID, map[core.ID]T) {
	p.g.Lock()
	defer p.g.Unlock()
	return p.snapshotLocked()
}

func (p *Pile[T]) snapshotLocked() ([]core.ID, map[core.ID]T) {
	items := make(map[core.ID]T, len(p.items))
	maps.Copy(items, p.items)
	return p.order.IDs(), items
}

// String returns a short human-readable form for debugging.
func (p *Pile[T]) String() string {
	return fmt.Sprintf("Pile(%d items)", p.Len())
}
