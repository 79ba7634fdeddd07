package core

import "sync"

// Tagged is implemented by items that participate in runtime type
// constraints. The tag names a registered variant; subtype relationships are
// declared through RegisterType rather than discovered by reflection.
type Tagged interface {
	TypeTag() string
}

// typeRegistry records single-parent subtype links between tags. A tag with
// an empty parent is a root. Reads vastly outnumber writes, so the map is
// guarded by an RWMutex.
type typeRegistry struct {
	mu      sync.RWMutex
	parents map[string]string
}

var registry = &typeRegistry{parents: map[string]string{}}

// RegisterType declares a tag and its parent tag. Pass an empty parent for a
// root tag. Re-registering a tag overwrites its parent link, which keeps the
// call idempotent for init-time registration.
func RegisterType(tag, parent string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.parents[tag] = parent
}

// KnownType reports whether the tag has been registered.
func KnownType(tag string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.parents[tag]
	return ok
}

// Conforms reports whether tag is want or a registered descendant of want.
// The ancestor walk is bounded by the registry size so a malformed cyclic
// registration cannot loop forever.
func Conforms(tag, want string) bool {
	if tag == want {
		return true
	}
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	limit := len(registry.parents)
	for i := 0; i < limit; i++ {
		parent, ok := registry.parents[tag]
		if !ok || parent == "" {
			return false
		}
		if parent == want {
			return true
		}
		tag = parent
	}
	return false
}
