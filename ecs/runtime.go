package ecs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Runtime orchestrates one simulation world: it owns the Store, runs
// systems through the Scheduler, routes queued commands to handlers, and
// carries the event bus and resource registry. Logic units never bypass the
// Store; the Runtime is the thin layer that sequences them.
type Runtime struct {
	store      *Store
	scheduler  *Scheduler
	dispatcher *CommandDispatcher
	router     *CommandRouter
	events     *EventBus
	resources  *ResourceRegistry
	steps      int64
	logger     zerolog.Logger
}

// RuntimeOption configures a Runtime at construction.
type RuntimeOption func(*Runtime)

// WithLogger installs a logger on the runtime and its collaborators. The
// store and query engine never log; diagnostics come from the scheduler,
// event bus, and snapshot plumbing.
func WithLogger(logger zerolog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// NewRuntime creates a runtime with a fresh store over the given registry.
func NewRuntime(registry *ComponentRegistry, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		store:      NewStore(registry),
		dispatcher: NewCommandDispatcher(),
		router:     NewCommandRouter(),
		events:     NewEventBus(),
		resources:  NewResourceRegistry(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.scheduler = NewScheduler(rt.store, rt.resources, rt.events, rt.dispatcher)
	rt.scheduler.SetLogger(rt.logger)
	rt.events.SetLogger(rt.logger)
	return rt
}

// Store returns the world's entity and component store.
func (rt *Runtime) Store() *Store {
	return rt.store
}

// Scheduler returns the system scheduler.
func (rt *Runtime) Scheduler() *Scheduler {
	return rt.scheduler
}

// Router returns the command router for registering handlers.
func (rt *Runtime) Router() *CommandRouter {
	return rt.router
}

// Dispatcher returns the command queue systems emit into.
func (rt *Runtime) Dispatcher() *CommandDispatcher {
	return rt.dispatcher
}

// Events returns the world's event bus.
func (rt *Runtime) Events() *EventBus {
	return rt.events
}

// Resources returns the world's resource registry.
func (rt *Runtime) Resources() *ResourceRegistry {
	return rt.resources
}

// Steps returns how many steps have executed.
func (rt *Runtime) Steps() int64 {
	return rt.steps
}

// Register adds a system to the scheduler with the given priority.
func (rt *Runtime) Register(system System, priority int) {
	rt.scheduler.Register(system, priority)
}

// Emit publishes an event on the world's bus with this runtime attached.
func (rt *Runtime) Emit(event any) {
	rt.events.Emit(event, rt)
}

// Step executes one simulation step: systems run and may queue commands,
// then queued commands are routed to their handlers.
func (rt *Runtime) Step(dt float64) {
	rt.scheduler.Once(dt)

	commands := rt.dispatcher.PopAll()
	if len(commands) > 0 {
		rt.router.HandleAll(commands, rt)
	}

	rt.steps++
}

// Run steps the runtime at the given interval until the context is
// cancelled.
func (rt *Runtime) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			rt.Step(dt)
		}
	}
}

// Snapshot captures the store plus every encodable resource. Resources
// without a registered serializer that fail structural encoding are skipped
// rather than failing the snapshot, since hosts routinely register opaque
// live handles as resources.
func (rt *Runtime) Snapshot(codec *SnapshotCodec) (*StateTree, error) {
	tree, err := codec.Snapshot(rt.store)
	if err != nil {
		return nil, err
	}

	for kind, resource := range rt.resources.All() {
		encoded, err := codec.encodeComponent(kind, resource)
		if err != nil {
			rt.logger.Debug().
				Str("resource", kind.String()).
				Msg("skipping unserializable resource")
			continue
		}
		if tree.Resources == nil {
			tree.Resources = make(map[string]any)
		}
		tree.Resources[codec.registry.KindName(kind)] = encoded
	}
	return tree, nil
}

// Restore replaces the store's state from the tree and re-registers every
// resource it carries. Resource kinds the registry cannot resolve are
// skipped with a log, matching Snapshot's lenient handling.
func (rt *Runtime) Restore(codec *SnapshotCodec, tree *StateTree) error {
	if err := codec.LoadIntoStore(tree, rt.store); err != nil {
		return err
	}

	for name, serialized := range tree.Resources {
		kind, ok := codec.registry.KindByName(name)
		if !ok {
			rt.logger.Debug().
				Str("resource", name).
				Msg("skipping unknown resource kind")
			continue
		}
		resource, err := codec.decodeComponent(kind, serialized)
		if err != nil {
			rt.logger.Debug().
				Str("resource", name).
				Msg("skipping undecodable resource")
			continue
		}
		rt.resources.Register(resource)
	}
	return nil
}
