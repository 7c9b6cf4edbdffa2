package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// CommandHandler processes one routed command against the runtime.
type CommandHandler func(command any, rt *Runtime)

// CommandRouter maps command dynamic types to handlers, so hosts process
// queued commands without type switches at the call site.
type CommandRouter struct {
	handlers map[reflect.Type]CommandHandler
}

// NewCommandRouter creates an empty router.
func NewCommandRouter() *CommandRouter {
	return &CommandRouter{
		handlers: make(map[reflect.Type]CommandHandler),
	}
}

// Register installs a handler for a command kind. Registering a kind twice
// is an error; use Unregister first to replace a handler.
func (r *CommandRouter) Register(kind reflect.Type, handler CommandHandler) error {
	if _, ok := r.handlers[kind]; ok {
		return eris.Wrapf(ErrHandlerRegistered, "kind %s", kind.String())
	}
	r.handlers[kind] = handler
	return nil
}

// RegisterHandler is the typed form of CommandRouter.Register.
func RegisterHandler[T any](r *CommandRouter, handler func(command T, rt *Runtime)) error {
	return r.Register(KindOf[T](), func(command any, rt *Runtime) {
		handler(command.(T), rt)
	})
}

// Unregister removes a handler and reports whether one was present.
func (r *CommandRouter) Unregister(kind reflect.Type) bool {
	if _, ok := r.handlers[kind]; !ok {
		return false
	}
	delete(r.handlers, kind)
	return true
}

// Route hands a single command to its registered handler. It reports
// whether a handler was found; unrouted commands are not an error.
func (r *CommandRouter) Route(command any, rt *Runtime) bool {
	handler, ok := r.handlers[reflect.TypeOf(command)]
	if !ok {
		return false
	}
	handler(command, rt)
	return true
}

// HandleAll routes a batch of commands in order and returns how many of
// each kind were routed.
func (r *CommandRouter) HandleAll(commands []any, rt *Runtime) map[reflect.Type]int {
	counts := make(map[reflect.Type]int)
	for _, command := range commands {
		if r.Route(command, rt) {
			counts[reflect.TypeOf(command)]++
		}
	}
	return counts
}

// HasHandler reports whether a handler is registered for the kind.
func (r *CommandRouter) HasHandler(kind reflect.Type) bool {
	_, ok := r.handlers[kind]
	return ok
}

// RegisteredKinds returns the kinds with handlers, in unspecified order.
func (r *CommandRouter) RegisteredKinds() []reflect.Type {
	kinds := make([]reflect.Type, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	return kinds
}
