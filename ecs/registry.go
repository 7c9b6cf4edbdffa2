package ecs

import "reflect"

// ComponentRegistry manages component kind registration for an ECS instance.
// Each Store has its own registry, allowing multiple independent worlds to
// coexist without interference. Registration gives a kind a typed table and
// a stable wire name used by the snapshot codec; kinds that are never
// registered still work through a type-erased fallback table, but cannot be
// restored from a snapshot.
type ComponentRegistry struct {
	factories map[reflect.Type]func() kindTable
	names     map[reflect.Type]string
	kinds     map[string]reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() kindTable),
		names:     make(map[reflect.Type]string),
		kinds:     make(map[string]reflect.Type),
	}
}

// RegisterComponent registers the component kind T with the given registry.
// The kind's wire name is the unqualified type name, so two registered kinds
// may not share a type name; doing so panics at registration time.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	name := t.Name()
	if name == "" {
		panic("component kinds must be named types")
	}
	if existing, ok := r.kinds[name]; ok && existing != t {
		panic("component kind name " + name + " already registered for " + existing.String())
	}
	r.factories[t] = newGenericTable[T]
	r.names[t] = name
	r.kinds[name] = t
}

// getFactory returns the table factory for a kind, or nil if the kind was
// never registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() kindTable {
	return r.factories[t]
}

// KindName returns the wire name for a kind. Unregistered kinds fall back to
// the unqualified type name.
func (r *ComponentRegistry) KindName(t reflect.Type) string {
	if name, ok := r.names[t]; ok {
		return name
	}
	return t.Name()
}

// KindByName resolves a wire name back to its registered kind.
func (r *ComponentRegistry) KindByName(name string) (reflect.Type, bool) {
	t, ok := r.kinds[name]
	return t, ok
}

// RegisteredKinds returns all registered kinds in unspecified order.
func (r *ComponentRegistry) RegisteredKinds() []reflect.Type {
	kinds := make([]reflect.Type, 0, len(r.factories))
	for t := range r.factories {
		kinds = append(kinds, t)
	}
	return kinds
}
