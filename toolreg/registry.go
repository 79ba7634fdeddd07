package toolreg

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/pile"
)

// Tag is the registered type tag for tools.
const Tag = "tool"

func init() {
	core.RegisterType(Tag, "")
}

// Handler executes a tool with already-decoded arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool is one registered capability. Name should follow function naming
// conventions (snake_case recommended); Parameters is a minimal
// JSON-Schema-like map describing the accepted arguments.
type Tool struct {
	core.Element
	Name        string
	Description string
	Parameters  map[string]any
	Handler     Handler
}

// TypeTag implements core.Tagged.
func (t *Tool) TypeTag() string { return Tag }

// NewTool constructs a tool from explicit metadata and handler.
func NewTool(name, description string, parameters map[string]any, handler Handler) *Tool {
	return &Tool{
		Element:     core.NewElement(),
		Name:        name,
		Description: description,
		Parameters:  parameters,
		Handler:     handler,
	}
}

// Registry holds tools in registration order and resolves them by name.
// The pile keeps individual operations atomic; mu makes the check-then-add
// of name uniqueness atomic across concurrent registrations.
type Registry struct {
	mu    sync.Mutex
	tools *pile.Pile[*Tool]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	tools, err := pile.New([]*Tool{}, func(o *pile.Options) {
		o.ItemTypes = []string{Tag}
		o.Strict = true
	})
	if err != nil {
		// Unreachable: an empty seed cannot fail validation.
		panic(err)
	}
	return &Registry{tools: tools}
}

// Register adds tools. A tool whose name is already taken is rejected with
// ErrDuplicate before anything in the batch is added.
func (r *Registry) Register(tools ...*Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := map[string]bool{}
	for _, t := range r.tools.Values() {
		names[t.Name] = true
	}
	for _, t := range tools {
		if names[t.Name] {
			return fmt.Errorf("%w: tool %q", core.ErrDuplicate, t.Name)
		}
		names[t.Name] = true
	}
	return r.tools.Include(tools...)
}

// Deregister removes the tool with the given name, or ErrNotFound.
func (r *Registry) Deregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.Get(name)
	if err != nil {
		return err
	}
	return r.tools.Remove(t)
}

// Get resolves a tool by name, or ErrNotFound.
func (r *Registry) Get(name string) (*Tool, error) {
	for _, t := range r.tools.Values() {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: tool %q", core.ErrNotFound, name)
}

// Invoke resolves a tool by name and runs its handler.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if t.Handler == nil {
		return nil, fmt.Errorf("tool %q has no handler", name)
	}
	return t.Handler(ctx, args)
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	tools := r.tools.Values()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return r.tools.Len() }
