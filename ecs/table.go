package ecs

// kindTable is the per-kind storage contract: a mapping from entity id to
// the component value attached under that kind. One table exists per
// component kind; tables never share entries.
type kindTable interface {
	// Put inserts or overwrites the component for id. The value must be
	// assignable to the table's kind (the Store guarantees this by
	// selecting the table from the value's dynamic type).
	Put(id EntityId, component any)
	// Get returns the stored component, as a pointer to the table's kind.
	Get(id EntityId) (any, bool)
	// Delete removes the entry if present and reports whether it did.
	Delete(id EntityId) bool
	Has(id EntityId) bool
	Len() int
	// IDs returns the keys in unspecified order. Callers needing
	// determinism sort the result.
	IDs() []EntityId
	// All returns a fresh id-to-component copy of the table.
	All() map[EntityId]any
}
