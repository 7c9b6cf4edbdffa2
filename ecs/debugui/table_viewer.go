package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/hive/ecs"
)

func NewTableViewerComponent() TableViewerComponent {
	return TableViewerComponent{}
}

// Render lists every component table with its entry count, and shows the
// entity ids held by the selected table.
func (tv *TableViewerComponent) Render(store *ecs.Store) {
	if !imgui.BeginV("Table Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := store.CollectStats()

	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Component Tables: %d", stats.KindCount))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("KindTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Entries")
		imgui.TableHeadersRow()

		for _, table := range stats.Tables {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := tv.selectedKind == table.Kind
			if imgui.SelectableBoolV(table.Kind, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tv.selectedKind = table.Kind
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", table.Entries))
		}

		imgui.EndTable()
	}

	if tv.selectedKind != "" {
		if kind, ok := store.Registry().KindByName(tv.selectedKind); ok {
			ids := make([]ecs.EntityId, 0)
			for id := range store.GetComponents(kind) {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

			if imgui.TreeNodeStr(fmt.Sprintf("%s entities", tv.selectedKind)) {
				for _, id := range ids {
					imgui.Text(fmt.Sprintf("%d", id))
				}
				imgui.TreePop()
			}
		}
	}

	imgui.End()
}
