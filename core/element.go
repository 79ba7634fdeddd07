package core

import "time"

// Element is the base identity unit embedded by stored items. It owns an
// immutable ID, a creation timestamp and a mutable metadata map. Equality of
// elements is defined solely by ID; two elements with the same ID refer to
// the same logical item regardless of their other state.
//
// The metadata map belongs to the element's owner and is not synchronized;
// callers sharing an element across goroutines must coordinate metadata
// mutation themselves. Membership and position in a pile are synchronized by
// the pile, not the element.
type Element struct {
	id        ID
	createdAt time.Time
	meta      map[string]any
}

// NewElement creates an element with a fresh random ID and the current UTC
// creation timestamp.
func NewElement() Element {
	return Element{id: NewID(), createdAt: time.Now().UTC(), meta: map[string]any{}}
}

// RestoreElement rebuilds an element from previously captured identity and
// creation time, e.g. when reconstructing items received from a collaborator.
func RestoreElement(id ID, createdAt time.Time) Element {
	return Element{id: id, createdAt: createdAt, meta: map[string]any{}}
}

// Identity returns the element's immutable ID.
func (e Element) Identity() ID { return e.id }

// CreatedAt returns the element's creation timestamp.
func (e Element) CreatedAt() time.Time { return e.createdAt }

// Meta returns the metadata value for key and whether it was present.
func (e Element) Meta(key string) (any, bool) {
	v, ok := e.meta[key]
	return v, ok
}

// SetMeta stores a metadata key/value pair on the element.
func (e *Element) SetMeta(key string, value any) {
	if e.meta == nil {
		e.meta = map[string]any{}
	}
	e.meta[key] = value
}

// MetaKeys returns the metadata keys currently set, in unspecified order.
func (e Element) MetaKeys() []string {
	keys := make([]string, 0, len(e.meta))
	for k := range e.meta {
		keys = append(keys, k)
	}
	return keys
}

// Same reports whether two identifiable values denote the same item.
func Same(a, b Identifiable) bool { return a.Identity() == b.Identity() }
