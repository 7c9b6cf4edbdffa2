package ecs

import (
	"github.com/rotisserie/eris"
)

var (
	// ErrSerialization is returned when a component kind cannot be encoded
	// to the snapshot tree: no codec is registered for it and it is not
	// structurally decomposable.
	ErrSerialization = eris.New("component kind cannot be serialized")

	// ErrDeserialization is returned when a snapshot tree references a kind
	// that cannot be decoded: the kind name is not registered, or the
	// serialized form does not match the kind's shape.
	ErrDeserialization = eris.New("component kind cannot be deserialized")

	// ErrHandlerRegistered is returned when a command handler is registered
	// for a kind that already has one.
	ErrHandlerRegistered = eris.New("handler already registered for command kind")
)
