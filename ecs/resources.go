package ecs

import "reflect"

// ResourceRegistry holds world-scoped singleton values such as config,
// tuning tables, or loaded assets, keyed by type. Resources are not
// attached to entities and do not participate in queries.
type ResourceRegistry struct {
	data map[reflect.Type]any
}

// NewResourceRegistry creates an empty registry.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		data: make(map[reflect.Type]any),
	}
}

// Register stores a resource under its type, replacing any previous value
// of the same type. Values are stored behind pointers so readers share one
// mutable instance.
func (r *ResourceRegistry) Register(resource any) {
	r.data[kindOfValue(resource)] = normalize(resource)
}

// Get returns the resource of the given type as a pointer, or false if none
// is registered.
func (r *ResourceRegistry) Get(kind reflect.Type) (any, bool) {
	resource, ok := r.data[kind]
	return resource, ok
}

// Has reports whether a resource of the given type is registered.
func (r *ResourceRegistry) Has(kind reflect.Type) bool {
	_, ok := r.data[kind]
	return ok
}

// All returns a copy of the registry's contents.
func (r *ResourceRegistry) All() map[reflect.Type]any {
	out := make(map[reflect.Type]any, len(r.data))
	for kind, resource := range r.data {
		out[kind] = resource
	}
	return out
}

// GetResource returns the registered resource of type T as a mutable
// pointer, or false if none is registered.
func GetResource[T any](r *ResourceRegistry) (*T, bool) {
	resource, ok := r.data[KindOf[T]()]
	if !ok {
		return nil, false
	}
	ptr, ok := resource.(*T)
	if !ok {
		return nil, false
	}
	return ptr, true
}

// Resource provides a system-field accessor for a registered resource,
// initialized by the Scheduler the same way Query fields are. Use it for
// shared state a system reads every step.
type Resource[T any] struct {
	registry *ResourceRegistry
}

// Init binds the accessor to a registry. Called by the Scheduler during
// system registration.
func (res *Resource[T]) Init(registry *ResourceRegistry) {
	res.registry = registry
}

// Get returns a pointer to the resource, or nil if it has not been
// registered.
func (res *Resource[T]) Get() *T {
	if res.registry == nil {
		return nil
	}
	ptr, ok := GetResource[T](res.registry)
	if !ok {
		return nil
	}
	return ptr
}

// Exists reports whether the resource has been registered.
func (res *Resource[T]) Exists() bool {
	return res.registry != nil && res.registry.Has(KindOf[T]())
}
