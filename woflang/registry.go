package woflang

import (
	"slices"

	"github.com/samber/lo"
)

type Handler func(ctx Context) error

// Plugin registers a set of operations.
type Plugin func(registry *Registry)

type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

func (r *Registry) Alias(alias string, target string) error {
	handler, ok := r.handlers[target]
	if !ok {
		return InvalidArgument{
			Message: "cannot alias unknown operation " + target,
		}
	}
	r.handlers[alias] = handler
	return nil
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	handler, ok := r.handlers[name]
	return handler, ok
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

func (r *Registry) Remove(name string) bool {
	if _, ok := r.handlers[name]; !ok {
		return false
	}
	delete(r.handlers, name)
	return true
}

func (r *Registry) Names() []string {
	names := lo.Keys(r.handlers)
	slices.Sort(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.handlers)
}

// Merge copies every handler of other, replacing existing names.
func (r *Registry) Merge(other *Registry) {
	for name, handler := range other.handlers {
		r.handlers[name] = handler
	}
}
