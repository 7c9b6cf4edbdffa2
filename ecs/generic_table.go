package ecs

import (
	"github.com/kamstrup/intmap"
)

const tableCapacityHint = 64

// genericTable is the typed kindTable implementation. Components are stored
// behind pointers so systems can mutate them in place through views and
// queries without a write-back step.
type genericTable[T any] struct {
	entries *intmap.Map[EntityId, *T]
}

func newGenericTable[T any]() kindTable {
	return &genericTable[T]{
		entries: intmap.New[EntityId, *T](tableCapacityHint),
	}
}

func (t *genericTable[T]) Put(id EntityId, component any) {
	if ptr, ok := component.(*T); ok {
		t.entries.Put(id, ptr)
		return
	}
	if val, ok := component.(T); ok {
		boxed := val
		t.entries.Put(id, &boxed)
		return
	}
	panic("component value does not match table kind")
}

func (t *genericTable[T]) Get(id EntityId) (any, bool) {
	ptr, ok := t.entries.Get(id)
	if !ok {
		return nil, false
	}
	return ptr, true
}

func (t *genericTable[T]) Delete(id EntityId) bool {
	if !t.entries.Has(id) {
		return false
	}
	t.entries.Del(id)
	return true
}

func (t *genericTable[T]) Has(id EntityId) bool {
	return t.entries.Has(id)
}

func (t *genericTable[T]) Len() int {
	return t.entries.Len()
}

func (t *genericTable[T]) IDs() []EntityId {
	ids := make([]EntityId, 0, t.entries.Len())
	t.entries.ForEach(func(id EntityId, _ *T) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

func (t *genericTable[T]) All() map[EntityId]any {
	out := make(map[EntityId]any, t.entries.Len())
	t.entries.ForEach(func(id EntityId, ptr *T) bool {
		out[id] = ptr
		return true
	})
	return out
}

// anyTable stores components of kinds that were never registered. It keeps
// the loose "attach anything" ergonomics of dynamically typed hosts at the
// cost of the typed fast path.
type anyTable struct {
	entries *intmap.Map[EntityId, any]
}

func newAnyTable() kindTable {
	return &anyTable{
		entries: intmap.New[EntityId, any](tableCapacityHint),
	}
}

func (t *anyTable) Put(id EntityId, component any) {
	t.entries.Put(id, component)
}

func (t *anyTable) Get(id EntityId) (any, bool) {
	return t.entries.Get(id)
}

func (t *anyTable) Delete(id EntityId) bool {
	if !t.entries.Has(id) {
		return false
	}
	t.entries.Del(id)
	return true
}

func (t *anyTable) Has(id EntityId) bool {
	return t.entries.Has(id)
}

func (t *anyTable) Len() int {
	return t.entries.Len()
}

func (t *anyTable) IDs() []EntityId {
	ids := make([]EntityId, 0, t.entries.Len())
	t.entries.ForEach(func(id EntityId, _ any) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

func (t *anyTable) All() map[EntityId]any {
	out := make(map[EntityId]any, t.entries.Len())
	t.entries.ForEach(func(id EntityId, v any) bool {
		out[id] = v
		return true
	})
	return out
}
