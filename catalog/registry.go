package catalog

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Registry holds demos by name. Build one at startup and pass it to whoever
// needs it.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds demo. Names must be unique.
func (r *Registry) Register(demo Demo) error {
	if demo == nil {
		return ErrDemoNil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := demo.Name()
	if _, ok := r.demos[name]; ok {
		return fmt.Errorf("%w: %s", ErrDemoRegistered, name)
	}
	r.demos[name] = demo
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(demos ...Demo) {
	for _, demo := range demos {
		if err := r.Register(demo); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Lookup(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	demo, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDemoNotFound, name)
	}
	return demo, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
