package ecs_test

import (
	"testing"

	"github.com/plus3/hive/ecs"
)

func BenchmarkCreateEntity(b *testing.B) {
	store := ecs.NewStore(newTestRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.CreateEntity()
	}
}

func BenchmarkAddComponent(b *testing.B) {
	store := ecs.NewStore(newTestRegistry())
	ids := make([]ecs.EntityId, b.N)
	for i := range ids {
		ids[i] = store.CreateEntity()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.AddComponent(ids[i], Position{X: 1, Y: 2})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	store := ecs.NewStore(newTestRegistry())
	id := store.CreateEntity()
	store.AddComponent(id, Position{X: 1, Y: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.GetComponent[Position](store, id)
	}
}

func BenchmarkQueryTwoKinds(b *testing.B) {
	store := ecs.NewStore(newTestRegistry())
	for i := 0; i < 10000; i++ {
		id := store.CreateEntity()
		store.AddComponent(id, Position{})
		if i%4 == 0 {
			store.AddComponent(id, Velocity{})
		}
	}
	posKind := ecs.KindOf[Position]()
	velKind := ecs.KindOf[Velocity]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range store.QueryEntities(posKind, velKind) {
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)
	for i := 0; i < 1000; i++ {
		id := store.CreateEntity()
		store.AddComponent(id, Position{X: float64(i)})
		store.AddComponent(id, Health{Current: i, Max: 100})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Snapshot(store); err != nil {
			b.Fatal(err)
		}
	}
}
