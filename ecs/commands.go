package ecs

import "reflect"

// Commands buffers structural changes requested during a step so tables are
// never modified while systems iterate them. The Scheduler flushes the
// buffer after every system has run.
type Commands struct {
	spawns   []spawnCommand
	destroys []EntityId
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity EntityId
	kind   reflect.Type
}

// Spawn queues creation of a new entity carrying the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues destruction of an entity and all its components.
func (c *Commands) Destroy(entity EntityId) {
	c.destroys = append(c.destroys, entity)
}

// AddComponent queues attaching a component to an entity.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues removal of an entity's component of the given kind.
func (c *Commands) RemoveComponent(entity EntityId, kind reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, kind: kind})
}

// Defer queues an arbitrary function to run during the flush, after all
// structural changes have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all buffered operations to the store and resets the buffer.
// Destroys run first; adds and removes against a just-destroyed entity are
// dropped rather than resurrecting its id.
func (c *Commands) Flush(store *Store) {
	destroyed := make(map[EntityId]bool)

	for _, id := range c.destroys {
		store.DestroyEntity(id)
		destroyed[id] = true
	}

	for _, cmd := range c.removes {
		if !destroyed[cmd.entity] {
			store.RemoveComponent(cmd.entity, cmd.kind)
		}
	}

	for _, cmd := range c.adds {
		if !destroyed[cmd.entity] {
			store.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		id := store.CreateEntity()
		for _, component := range cmd.components {
			store.AddComponent(id, component)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
