package steps

import (
	"sort"

	"github.com/arthur-debert/wpconf/pkg/errors"
)

// Registry holds the steps a host knows about
type Registry struct {
	items map[string]Step
}

// NewRegistry creates a registry holding the given steps
func NewRegistry(items ...Step) (*Registry, error) {
	r := &Registry{items: make(map[string]Step)}
	for _, s := range items {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a step
func (r *Registry) Register(s Step) error {
	name := s.Name()
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "step name cannot be empty")
	}
	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrInvalidInput, "step '%s' is already registered", name)
	}
	r.items[name] = s
	return nil
}

// Get retrieves a step by name
func (r *Registry) Get(name string) (Step, error) {
	s, ok := r.items[name]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "unknown step '%s'", name).
			WithDetail("step", name).
			WithDetail("known", r.List())
	}
	return s, nil
}

// Has checks if a step is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the steps named in order, failing on unknown or repeated names
func (r *Registry) Resolve(names []string) ([]Step, error) {
	seen := make(map[string]bool, len(names))
	out := make([]Step, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, errors.Newf(errors.ErrConfigValid, "step '%s' is enabled twice", name).
				WithDetail("step", name)
		}
		seen[name] = true
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
