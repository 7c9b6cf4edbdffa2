package ecs_test

import (
	"fmt"

	"github.com/plus3/hive/ecs"
)

// ExampleSnapshotCodec demonstrates capturing a store into a state tree and
// loading it into a fresh store.
func ExampleSnapshotCodec() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Name](registry)

	store := ecs.NewStore(registry)
	id := store.CreateEntity()
	store.AddComponent(id, Position{X: 3, Y: 7})
	store.AddComponent(id, Name{Value: "scout"})

	codec := ecs.NewSnapshotCodec(registry)
	tree, err := codec.Snapshot(store)
	if err != nil {
		panic(err)
	}

	restored := ecs.NewStore(registry)
	if err := codec.LoadIntoStore(tree, restored); err != nil {
		panic(err)
	}

	name, _ := ecs.GetComponent[Name](restored, id)
	pos, _ := ecs.GetComponent[Position](restored, id)
	fmt.Printf("%s at (%.0f, %.0f)\n", name.Value, pos.X, pos.Y)
	fmt.Println("next fresh id:", restored.CreateEntity())

	// Output:
	// scout at (3, 7)
	// next fresh id: 1
}
