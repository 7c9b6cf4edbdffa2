package ecs_test

import (
	"testing"

	"github.com/plus3/hive/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	store := ecs.NewStore(newTestRegistry())

	a := store.CreateEntity()
	b := store.CreateEntity()
	store.AddComponent(a, Position{})
	store.AddComponent(a, Velocity{})
	store.AddComponent(b, Position{})

	stats := store.CollectStats()
	assert.Equal(t, 2, stats.EntityCount)
	assert.Equal(t, 2, stats.KindCount)

	require.Len(t, stats.Tables, 2)
	byKind := make(map[string]int)
	for _, table := range stats.Tables {
		byKind[table.Kind] = table.Entries
	}
	assert.Equal(t, 2, byKind["Position"])
	assert.Equal(t, 1, byKind["Velocity"])

	// Tables are reported in sorted kind order.
	for i := 1; i < len(stats.Tables); i++ {
		assert.Less(t, stats.Tables[i-1].Kind, stats.Tables[i].Kind)
	}
}

func TestCollectStatsEmptyStore(t *testing.T) {
	store := ecs.NewStore(newTestRegistry())

	stats := store.CollectStats()
	assert.Equal(t, 0, stats.EntityCount)
	assert.Equal(t, 0, stats.KindCount)
	assert.Empty(t, stats.Tables)
}
