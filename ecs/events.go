package ecs

import (
	"reflect"
	"slices"

	"github.com/rs/zerolog"
)

// EventHandler receives one emitted event. The runtime pointer is nil when
// events are emitted outside a runtime.
type EventHandler func(event any, rt *Runtime)

// Token identifies a subscription so it can be removed later.
type Token struct {
	kind reflect.Type
	id   uint64
}

type subscription struct {
	token   Token
	handler EventHandler
}

// EventBus is a synchronous publish/subscribe bus keyed by event dynamic
// type. Handlers run immediately on Emit, in subscription order. A handler
// that panics is recovered and logged so the remaining handlers still run.
type EventBus struct {
	subs   map[reflect.Type][]subscription
	nextID uint64
	logger zerolog.Logger
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subs:   make(map[reflect.Type][]subscription),
		logger: zerolog.Nop(),
	}
}

// SetLogger installs a logger for recovered handler panics.
func (b *EventBus) SetLogger(logger zerolog.Logger) {
	b.logger = logger
}

// On subscribes a handler to an event kind and returns a removal token.
func (b *EventBus) On(kind reflect.Type, handler EventHandler) Token {
	token := Token{kind: kind, id: b.nextID}
	b.nextID++
	b.subs[kind] = append(b.subs[kind], subscription{token: token, handler: handler})
	return token
}

// Subscribe is the typed form of EventBus.On.
func Subscribe[T any](b *EventBus, handler func(event T, rt *Runtime)) Token {
	return b.On(KindOf[T](), func(event any, rt *Runtime) {
		handler(event.(T), rt)
	})
}

// Off removes a subscription and reports whether it was present.
func (b *EventBus) Off(token Token) bool {
	handlers := b.subs[token.kind]
	for i, sub := range handlers {
		if sub.token == token {
			b.subs[token.kind] = append(handlers[:i], handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Emit delivers the event to every handler subscribed to its dynamic type.
// The subscription list is copied first, so handlers may subscribe or
// unsubscribe during delivery without affecting the current emit.
func (b *EventBus) Emit(event any, rt *Runtime) {
	kind := reflect.TypeOf(event)
	handlers := slices.Clone(b.subs[kind])
	for _, sub := range handlers {
		b.call(sub.handler, event, rt, kind)
	}
}

func (b *EventBus) call(handler EventHandler, event any, rt *Runtime, kind reflect.Type) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", kind.String()).
				Any("panic", r).
				Msg("event handler panicked")
		}
	}()
	handler(event, rt)
}
