package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/hive/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedKinds: make(map[string]bool),
		maxResults:    50,
	}
}

// Render runs a live intersection query over the kinds ticked in the window
// and shows the matching entity ids.
func (qd *QueryDebuggerComponent) Render(store *ecs.Store) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Kinds:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedKinds = make(map[string]bool)
	}

	kinds := store.Kinds()
	for _, kind := range kinds {
		name := store.Registry().KindName(kind)
		selected := qd.selectedKinds[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selectedKinds[name] = true
			} else {
				delete(qd.selectedKinds, name)
			}
		}
	}

	imgui.Separator()

	queryKinds := make([]reflect.Type, 0, len(qd.selectedKinds))
	for _, kind := range kinds {
		if qd.selectedKinds[store.Registry().KindName(kind)] {
			queryKinds = append(queryKinds, kind)
		}
	}

	if len(queryKinds) == 0 {
		imgui.Text("No component kinds selected")
		imgui.End()
		return
	}

	matched := make([]ecs.EntityId, 0)
	for id := range store.QueryEntities(queryKinds...) {
		matched = append(matched, id)
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matched)))

	if imgui.TreeNodeStr("Results") {
		shown := len(matched)
		if shown > qd.maxResults {
			shown = qd.maxResults
		}
		for _, id := range matched[:shown] {
			imgui.Text(fmt.Sprintf("%d", id))
		}
		if shown < len(matched) {
			imgui.Text(fmt.Sprintf("... and %d more", len(matched)-shown))
		}
		imgui.TreePop()
	}

	imgui.End()
}
