package ecs

import "iter"

// Query is the system-field form of View. Declare a Query field on a system
// struct and the Scheduler initializes it during registration. Every Iter
// call evaluates the match set fresh at that point in time; results are
// never carried across frames.
type Query[T any] struct {
	view *View[T]
}

// NewQuery creates a Query bound to a store, for use outside the Scheduler.
func NewQuery[T any](store *Store) *Query[T] {
	return &Query[T]{view: NewView[T](store)}
}

// Init binds the Query to a store. Called by the Scheduler during system
// registration.
func (q *Query[T]) Init(store *Store) {
	q.view = NewView[T](store)
}

// Iter yields (id, view struct) pairs in ascending id order.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	return q.view.Iter()
}

// Values yields view structs only, in the same order as Iter.
func (q *Query[T]) Values() iter.Seq[T] {
	return q.view.Values()
}

// Get returns the view struct for a single entity, or nil if the entity is
// missing a required component.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}
