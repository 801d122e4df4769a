package layout

import (
	"fmt"
	"sync"

	"github.com/axwm/axwm/internal/geometry"
)

// Algorithm is the extension point for layouts that are not among the nine
// built-ins. Unlike Kind, which dispatches through Arrange as a total
// function over a closed tag set (spec.md §9), Algorithm is virtual
// dispatch deliberately reserved for user-supplied layouts — the one place
// the design allows it.
type Algorithm interface {
	Name() string
	Tile(workArea geometry.Rect, count int, opts Options) []geometry.Rect
}

// Registry holds custom Algorithm implementations registered by name,
// looked up by the workspace layer when a workspace's layout kind is
// Custom rather than one of the nine built-ins.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Algorithm
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Algorithm)}
}

func (r *Registry) Register(a Algorithm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a == nil || a.Name() == "" {
		return fmt.Errorf("layout: cannot register an algorithm with an empty name")
	}
	if _, exists := r.items[a.Name()]; exists {
		return fmt.Errorf("layout: algorithm %q already registered", a.Name())
	}
	r.items[a.Name()] = a
	return nil
}

func (r *Registry) Lookup(name string) (Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[name]
	return a, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for n := range r.items {
		names = append(names, n)
	}
	return names
}
