package ecs

import (
	"iter"
	"reflect"
	"slices"
)

// QueryEntities returns the ids of entities that have components of every
// listed kind, in ascending numeric order. Ordering is deterministic:
// repeated calls against unchanged state yield identical sequences,
// independent of table iteration order or insertion history.
//
// A query with no kinds yields nothing: a meaningful query names at least
// one kind. A kind that was never populated short-circuits to an empty
// sequence, since intersecting with an empty set cannot match.
//
// Each call evaluates the intersection at the point of the call and returns
// a fresh sequence; consuming one sequence does not affect another. Mutating
// the store while iterating is undefined behavior; collect the ids first if
// destruction during iteration is needed.
func (s *Store) QueryEntities(kinds ...reflect.Type) iter.Seq[EntityId] {
	ids := s.matchingIDs(kinds)
	return func(yield func(EntityId) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Query returns matching entities together with their components, one slot
// per requested kind in the order the kinds were given. Ordering matches
// QueryEntities. Membership is verified before a tuple is built, so every
// slot is populated.
func (s *Store) Query(kinds ...reflect.Type) iter.Seq2[EntityId, []any] {
	ids := s.matchingIDs(kinds)
	return func(yield func(EntityId, []any) bool) {
		for _, id := range ids {
			tuple := make([]any, len(kinds))
			for i, kind := range kinds {
				tuple[i], _ = s.tables[kind].Get(id)
			}
			if !yield(id, tuple) {
				return
			}
		}
	}
}

// matchingIDs runs the intersection: pick the smallest table as the pivot
// candidate set, keep candidates present in every other table, sort
// ascending.
func (s *Store) matchingIDs(kinds []reflect.Type) []EntityId {
	if len(kinds) == 0 {
		return nil
	}

	tables := make([]kindTable, len(kinds))
	pivot := -1
	for i, kind := range kinds {
		table, ok := s.tables[kind]
		if !ok || table.Len() == 0 {
			return nil
		}
		tables[i] = table
		if pivot == -1 || table.Len() < tables[pivot].Len() {
			pivot = i
		}
	}

	ids := tables[pivot].IDs()
	matched := ids[:0]
candidates:
	for _, id := range ids {
		for i, table := range tables {
			if i == pivot {
				continue
			}
			if !table.Has(id) {
				continue candidates
			}
		}
		matched = append(matched, id)
	}

	slices.Sort(matched)
	return matched
}
