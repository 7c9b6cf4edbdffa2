package ecs

import (
	"reflect"
	"sort"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Store owns all component tables and entity identity allocation for one
// simulation world. All operations are synchronous and run to completion;
// the Store is exclusively owned by its world and performs no internal
// locking. Side effects stay inside the Store's own tables and allocator,
// so observation layers (events, logging) belong to the host.
type Store struct {
	registry *ComponentRegistry
	alloc    *idAllocator
	tables   map[reflect.Type]kindTable
}

// NewStore creates an empty store backed by the given component registry.
func NewStore(registry *ComponentRegistry) *Store {
	return &Store{
		registry: registry,
		alloc:    newIDAllocator(),
		tables:   make(map[reflect.Type]kindTable),
	}
}

// Registry returns the component registry this store was built with.
func (s *Store) Registry() *ComponentRegistry {
	return s.registry
}

// CreateEntity issues a new entity id with no components attached. Ids of
// destroyed entities are recycled oldest-first.
func (s *Store) CreateEntity() EntityId {
	return s.alloc.allocate()
}

// DestroyEntity removes the entity's entries from every component table and
// recycles its id. Destroying an id that is not live is a no-op, so double
// destroy never corrupts the recycling pool. Queries never observe an
// entity with only part of its components removed.
func (s *Store) DestroyEntity(id EntityId) {
	if !s.alloc.isAlive(id) {
		return
	}
	for _, table := range s.tables {
		table.Delete(id)
	}
	s.alloc.release(id)
}

// Alive reports whether id currently refers to a live entity.
func (s *Store) Alive(id EntityId) bool {
	return s.alloc.isAlive(id)
}

// EntityCount returns the number of currently-live entities.
func (s *Store) EntityCount() int {
	return s.alloc.liveCount()
}

// AddComponent attaches component to the entity, overwriting any existing
// component of the same kind. The kind is the value's dynamic type, with
// pointers dereferenced, so Add(id, Position{...}) and Add(id, &Position{...})
// address the same table. No liveness check is performed: attaching to a
// never-created or destroyed id simply stores the entry.
func (s *Store) AddComponent(id EntityId, component any) {
	kind := kindOfValue(component)
	table, ok := s.tables[kind]
	if !ok {
		table = s.newTable(kind)
		s.tables[kind] = table
	}
	table.Put(id, normalize(component))
}

// HasComponent reports whether the entity has a component of the given kind.
func (s *Store) HasComponent(id EntityId, kind reflect.Type) bool {
	table, ok := s.tables[kind]
	return ok && table.Has(id)
}

// RemoveComponent removes the entity's component of the given kind and
// reports whether a removal occurred. Absence is a routine outcome, not an
// error.
func (s *Store) RemoveComponent(id EntityId, kind reflect.Type) bool {
	table, ok := s.tables[kind]
	if !ok {
		return false
	}
	return table.Delete(id)
}

// GetComponents returns a copy of the entire table for a kind, mapping
// entity id to the stored component pointer. Unknown kinds yield an empty
// map, never an error. Mutating the map does not affect the store; mutating
// the pointed-to components does, which is how systems write state.
func (s *Store) GetComponents(kind reflect.Type) map[EntityId]any {
	table, ok := s.tables[kind]
	if !ok {
		return map[EntityId]any{}
	}
	return table.All()
}

// Kinds returns every kind with a table, sorted by type name.
func (s *Store) Kinds() []reflect.Type {
	kinds := make([]reflect.Type, 0, len(s.tables))
	for t := range s.tables {
		kinds = append(kinds, t)
	}
	sort.Sort(byTypeName(kinds))
	return kinds
}

func (s *Store) newTable(kind reflect.Type) kindTable {
	if factory := s.registry.getFactory(kind); factory != nil {
		return factory()
	}
	return newAnyTable()
}

func (s *Store) table(kind reflect.Type) (kindTable, bool) {
	table, ok := s.tables[kind]
	return table, ok
}

// replaceState swaps in fully-built state from a snapshot load. Existing
// tables and allocator state are discarded wholesale, which is what makes a
// failed load side-effect free: the loader only calls this after every
// component has decoded.
func (s *Store) replaceState(nextID EntityId, tables map[reflect.Type]kindTable) {
	live := make(map[EntityId]struct{})
	for _, table := range tables {
		for _, id := range table.IDs() {
			live[id] = struct{}{}
		}
	}
	ids := make([]EntityId, 0, len(live))
	for id := range live {
		ids = append(ids, id)
	}
	s.tables = tables
	s.alloc.reset(nextID, ids)
}

// KindOf returns the reflect.Type kind tag for a component type.
func KindOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// GetComponent returns the entity's component of kind T as a mutable
// pointer, or false if the entity has no such component.
func GetComponent[T any](s *Store, id EntityId) (*T, bool) {
	table, ok := s.table(KindOf[T]())
	if !ok {
		return nil, false
	}
	v, ok := table.Get(id)
	if !ok {
		return nil, false
	}
	ptr, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return ptr, true
}

// kindOfValue maps a component value to its kind tag, dereferencing one
// level of pointer.
func kindOfValue(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// normalize boxes non-pointer component values so tables always hold
// pointers and reads always alias the stored component.
func normalize(component any) any {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		return component
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr.Interface()
}
