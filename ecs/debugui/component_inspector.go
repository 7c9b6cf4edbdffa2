package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/hive/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(store *ecs.Store, selected ecs.EntityId, hasSelection bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selected
	ci.hasSelection = hasSelection

	if !ci.hasSelection {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selectedEntityId))
	if !store.Alive(ci.selectedEntityId) {
		imgui.SameLine()
		imgui.Text("(not live)")
	}
	imgui.Separator()

	for _, kind := range store.Kinds() {
		components := store.GetComponents(kind)
		component, ok := components[ci.selectedEntityId]
		if !ok {
			continue
		}

		if imgui.TreeNodeStr(store.Registry().KindName(kind)) {
			ci.renderComponent(component, kind)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent edits the stored component in place: tables hand out
// pointers to live component values, so writes through the reflect values
// are immediately visible to systems.
func (ci *ComponentInspectorComponent) renderComponent(component any, kind reflect.Type) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		ci.renderScalar(kind.Name(), val)
		return
	}

	for _, field := range globalReflectionCache.getFields(kind) {
		fieldVal := val.Field(field.Index)
		ci.renderField(field.Name, fieldVal, field)
	}
}

func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value, field fieldInfo) {
	if field.IsPointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, sub := range globalReflectionCache.getFields(val.Type()) {
				ci.renderField(sub.Name, val.Field(sub.Index), sub)
			}
			imgui.TreePop()
		}
	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: %d items", name, val.Len()))
	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: %d entries", name, val.Len()))
	default:
		ci.renderScalar(name, val)
	}
}

func (ci *ComponentInspectorComponent) renderScalar(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
