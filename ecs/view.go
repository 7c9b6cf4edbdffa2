package ecs

import (
	"iter"
	"reflect"
)

// View is a typed query over entities with a specific combination of
// component kinds. The type T must be a struct whose fields are pointers to
// component types; embedded fields are always required, and named fields can
// be marked optional with the `ecs:"optional"` struct tag. Iteration yields
// view structs whose fields alias the stored components, so writes through
// them are visible to the store.
type View[T any] struct {
	store    *Store
	kinds    []reflect.Type
	optional []bool
	fields   []int
}

// NewView creates a view for the struct type T against the given store.
func NewView[T any](store *Store) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{store: store}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.kinds = append(v.kinds, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fields = append(v.fields, i)
	}
	return v
}

// Fill populates the struct with the entity's components. It returns false
// if any required component is missing; optional fields are set to nil when
// absent.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	structValue := reflect.ValueOf(ptr).Elem()
	for i, kind := range v.kinds {
		field := structValue.Field(v.fields[i])

		table, ok := v.store.table(kind)
		var comp any
		if ok {
			comp, ok = table.Get(id)
		}
		if !ok {
			if !v.optional[i] {
				return false
			}
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		field.Set(reflect.ValueOf(comp))
	}
	return true
}

// Get returns a populated view struct for the entity, or nil if the entity
// is missing a required component.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter yields (id, view struct) for every entity that has all required
// components, in ascending id order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	required := v.requiredKinds()
	return func(yield func(EntityId, T) bool) {
		for id := range v.store.QueryEntities(required...) {
			var result T
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values yields the view structs only, in the same order as Iter.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Spawn creates a new entity carrying the view's components. Nil fields are
// skipped, so optional components can be omitted.
func (v *View[T]) Spawn(data T) EntityId {
	id := v.store.CreateEntity()
	structValue := reflect.ValueOf(&data).Elem()
	for i := range v.kinds {
		field := structValue.Field(v.fields[i])
		if field.IsNil() {
			continue
		}
		v.store.AddComponent(id, field.Interface())
	}
	return id
}

func (v *View[T]) requiredKinds() []reflect.Type {
	required := make([]reflect.Type, 0, len(v.kinds))
	for i, kind := range v.kinds {
		if !v.optional[i] {
			required = append(required, kind)
		}
	}
	return required
}
