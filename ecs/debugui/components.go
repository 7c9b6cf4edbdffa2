package debugui

import (
	"github.com/plus3/hive/ecs"
)

type EntityBrowserComponent struct {
	cache              *entityBrowserCache
	selectedEntityId   ecs.EntityId
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityId ecs.EntityId
	hasSelection     bool
}

type TableViewerComponent struct {
	selectedKind string
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedKinds map[string]bool
	maxResults    int
}
