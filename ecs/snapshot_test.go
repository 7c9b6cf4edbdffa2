package ecs_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/plus3/hive/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	a := store.CreateEntity()
	b := store.CreateEntity()
	store.AddComponent(a, Position{X: 1.5, Y: 2.5})
	store.AddComponent(a, Name{Value: "alpha"})
	store.AddComponent(b, Position{X: -3, Y: 0})
	store.AddComponent(b, Health{Current: 40, Max: 100})

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)

	restored := ecs.NewStore(registry)
	require.NoError(t, codec.LoadIntoStore(tree, restored))

	assert.Equal(t, 2, restored.EntityCount())

	pos, ok := ecs.GetComponent[Position](restored, a)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1.5, Y: 2.5}, *pos)

	name, ok := ecs.GetComponent[Name](restored, a)
	require.True(t, ok)
	assert.Equal(t, "alpha", name.Value)

	hp, ok := ecs.GetComponent[Health](restored, b)
	require.True(t, ok)
	assert.Equal(t, Health{Current: 40, Max: 100}, *hp)
}

func TestSnapshotPreservesNextId(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	for i := 0; i < 5; i++ {
		store.AddComponent(store.CreateEntity(), Position{})
	}

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)
	assert.Equal(t, int64(5), tree.NextID)

	restored := ecs.NewStore(registry)
	require.NoError(t, codec.LoadIntoStore(tree, restored))

	// Fresh ids continue where the source left off.
	assert.Equal(t, ecs.EntityId(5), restored.CreateEntity())
}

func TestSnapshotTreeShape(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	id := store.CreateEntity()
	store.AddComponent(id, Position{X: 3, Y: 7})

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)

	// Kinds keyed by unqualified name, entities keyed by decimal string.
	require.Contains(t, tree.Components, "Position")
	entry, ok := tree.Components["Position"][fmt.Sprintf("%d", id)]
	require.True(t, ok)

	fields, ok := entry.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3.0, fields["X"])
	assert.Equal(t, 7.0, fields["Y"])
}

func TestSnapshotSkipsEmptyTables(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	id := store.CreateEntity()
	store.AddComponent(id, Position{})
	store.AddComponent(id, Velocity{})
	store.RemoveComponent(id, ecs.KindOf[Velocity]())

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)
	assert.Contains(t, tree.Components, "Position")
	assert.NotContains(t, tree.Components, "Velocity")
}

func TestSnapshotRegisteredSerializer(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	// Pack the position into a compact pair instead of the structural form.
	ecs.RegisterSerializer(codec,
		func(p Position) (any, error) {
			return []any{p.X, p.Y}, nil
		},
		func(tree any) (Position, error) {
			pair, ok := tree.([]any)
			if !ok || len(pair) != 2 {
				return Position{}, errors.New("expected a pair")
			}
			return Position{X: pair[0].(float64), Y: pair[1].(float64)}, nil
		},
	)

	id := store.CreateEntity()
	store.AddComponent(id, Position{X: 8, Y: 9})

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)

	entry := tree.Components["Position"][fmt.Sprintf("%d", id)]
	assert.Equal(t, []any{8.0, 9.0}, entry)

	restored := ecs.NewStore(registry)
	require.NoError(t, codec.LoadIntoStore(tree, restored))
	pos, ok := ecs.GetComponent[Position](restored, id)
	require.True(t, ok)
	assert.Equal(t, Position{X: 8, Y: 9}, *pos)
}

func TestSnapshotOpaqueKindFails(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	id := store.CreateEntity()
	store.AddComponent(id, Opaque{Fn: func() {}})

	_, err := codec.Snapshot(store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrSerialization))
}

func TestLoadUnknownKindFails(t *testing.T) {
	registry := newTestRegistry()
	codec := ecs.NewSnapshotCodec(registry)

	tree := &ecs.StateTree{
		NextID: 1,
		Components: map[string]map[string]any{
			"Ghost": {"0": map[string]any{"N": 1.0}},
		},
	}

	err := codec.LoadIntoStore(tree, ecs.NewStore(registry))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrDeserialization))
}

func TestFailedLoadLeavesStoreUntouched(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	id := store.CreateEntity()
	store.AddComponent(id, Position{X: 1, Y: 2})

	bad := &ecs.StateTree{
		NextID: 99,
		Components: map[string]map[string]any{
			"Position": {"0": map[string]any{"X": 5.0, "Y": 5.0}},
			"Ghost":    {"0": map[string]any{}},
		},
	}

	require.Error(t, codec.LoadIntoStore(bad, store))

	// Original state survives the failed load.
	assert.Equal(t, 1, store.EntityCount())
	pos, ok := ecs.GetComponent[Position](store, id)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)
	assert.Equal(t, ecs.EntityId(1), store.CreateEntity())
}

func TestLoadBadEntityIdFails(t *testing.T) {
	registry := newTestRegistry()
	codec := ecs.NewSnapshotCodec(registry)

	tree := &ecs.StateTree{
		NextID: 1,
		Components: map[string]map[string]any{
			"Position": {"not-a-number": map[string]any{"X": 1.0, "Y": 2.0}},
		},
	}

	err := codec.LoadIntoStore(tree, ecs.NewStore(registry))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrDeserialization))
}

func TestLoadReplacesExistingState(t *testing.T) {
	registry := newTestRegistry()
	codec := ecs.NewSnapshotCodec(registry)

	source := ecs.NewStore(registry)
	a := source.CreateEntity()
	source.AddComponent(a, Name{Value: "kept"})
	tree, err := codec.Snapshot(source)
	require.NoError(t, err)

	target := ecs.NewStore(registry)
	stale := target.CreateEntity()
	target.AddComponent(stale, Health{Current: 1, Max: 1})
	target.CreateEntity()

	require.NoError(t, codec.LoadIntoStore(tree, target))

	assert.Equal(t, 1, target.EntityCount())
	assert.False(t, target.HasComponent(stale, ecs.KindOf[Health]()))
	name, ok := ecs.GetComponent[Name](target, a)
	require.True(t, ok)
	assert.Equal(t, "kept", name.Value)
}

func TestFreePoolNotRoundTripped(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	a := store.CreateEntity()
	b := store.CreateEntity()
	store.AddComponent(b, Position{})
	store.DestroyEntity(a)

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)

	restored := ecs.NewStore(registry)
	require.NoError(t, codec.LoadIntoStore(tree, restored))

	// The source would recycle a; the restored store issues a fresh id.
	assert.Equal(t, a, store.CreateEntity())
	assert.Equal(t, ecs.EntityId(2), restored.CreateEntity())
}

func TestStateTreeJSONRoundTrip(t *testing.T) {
	registry := newTestRegistry()
	store := ecs.NewStore(registry)
	codec := ecs.NewSnapshotCodec(registry)

	id := store.CreateEntity()
	store.AddComponent(id, Inventory{Items: []string{"sword", "rope"}})
	store.AddComponent(id, Tag("npc"))

	tree, err := codec.Snapshot(store)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tree.WriteJSON(&buf))

	// Wire keys match the documented shape.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Contains(t, raw, "next_id")
	assert.Contains(t, raw, "components")

	decoded, err := ecs.ReadStateTree(&buf)
	require.NoError(t, err)

	restored := ecs.NewStore(registry)
	require.NoError(t, codec.LoadIntoStore(decoded, restored))

	inv, ok := ecs.GetComponent[Inventory](restored, id)
	require.True(t, ok)
	assert.Equal(t, []string{"sword", "rope"}, inv.Items)

	tag, ok := ecs.GetComponent[Tag](restored, id)
	require.True(t, ok)
	assert.Equal(t, Tag("npc"), *tag)
}

func TestReadStateTreeBadJSON(t *testing.T) {
	_, err := ecs.ReadStateTree(bytes.NewBufferString("{not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrDeserialization))
}
