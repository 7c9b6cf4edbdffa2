package debugui

import "github.com/plus3/hive/ecs"

// SpawnDebugUI creates one entity per debug window, each carrying its window
// component plus an ImguiItem closure that renders it. The ImguiSystem picks
// the closures up every step; pass nil for scheduler to omit system timings
// from the performance window.
func SpawnDebugUI(store *ecs.Store, scheduler *ecs.Scheduler) {
	browser := store.CreateEntity()
	store.AddComponent(browser, NewEntityBrowserComponent(100))
	eb, _ := ecs.GetComponent[EntityBrowserComponent](store, browser)
	store.AddComponent(browser, ImguiItem{Render: func() {
		eb.Render(store)
	}})

	inspector := store.CreateEntity()
	store.AddComponent(inspector, NewComponentInspectorComponent())
	ci, _ := ecs.GetComponent[ComponentInspectorComponent](store, inspector)
	store.AddComponent(inspector, ImguiItem{Render: func() {
		selected, ok := eb.SelectedEntity()
		ci.Render(store, selected, ok)
	}})

	tables := store.CreateEntity()
	store.AddComponent(tables, NewTableViewerComponent())
	tv, _ := ecs.GetComponent[TableViewerComponent](store, tables)
	store.AddComponent(tables, ImguiItem{Render: func() {
		tv.Render(store)
	}})

	perf := store.CreateEntity()
	store.AddComponent(perf, NewPerformanceStatsComponent(120))
	ps, _ := ecs.GetComponent[PerformanceStatsComponent](store, perf)
	timer := NewFrameTimer()
	store.AddComponent(perf, ImguiItem{Render: func() {
		ps.Render(store, scheduler, timer.GetDeltaTime())
	}})

	query := store.CreateEntity()
	store.AddComponent(query, NewQueryDebuggerComponent())
	qd, _ := ecs.GetComponent[QueryDebuggerComponent](store, query)
	store.AddComponent(query, ImguiItem{Render: func() {
		qd.Render(store)
	}})
}

// RegisterDebugUIComponents registers the debug window component kinds.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[TableViewerComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[QueryDebuggerComponent](registry)
}
