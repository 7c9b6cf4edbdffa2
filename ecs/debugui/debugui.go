// Package debugui provides immediate-mode GUI inspection for hive worlds
// using Dear ImGui. It exposes windows for browsing live entities, viewing
// per-kind component tables, inspecting and editing component values, and
// running ad-hoc kind-set queries against a store.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/hive/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each step.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a world
// resource. Use this to determine if ImGui is consuming mouse or keyboard
// input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render
// functions. It also updates the ImguiInputState resource with current
// input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Resource[ImguiInputState]
}

// Update refreshes input state and queues all ImGui render functions.
func (i *ImguiSystem) Update(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}
