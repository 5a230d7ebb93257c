package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores generators by name, providing discovery and duplication
// safeguards. The orchestrator consults it to resolve the requested template
// set.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator by its Name(). Duplicate names return an error.
func (r *Registry) Register(generator Generator) error {
	if generator == nil {
		return fmt.Errorf("render: generator is required")
	}
	name := generator.Name()
	if name == "" {
		return fmt.Errorf("render: generator name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("render: generator %q already registered", name)
	}

	r.generators[name] = generator
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(generator Generator) {
	if err := r.Register(generator); err != nil {
		panic(err)
	}
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	generator, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("render: generator %q not found", name)
	}
	return generator, nil
}

// MustGet panics if the generator is missing.
func (r *Registry) MustGet(name string) Generator {
	generator, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return generator
}

// List returns a sorted list of generator names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a generator is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.generators[name]
	return ok
}
