package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/hive/ecs"
)

type entityInfo struct {
	ID        ecs.EntityId
	Kinds     []string
	KindCount int
}

type entityBrowserCache struct {
	entities []entityInfo
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache:              &entityBrowserCache{},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(store *ecs.Store) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCache(store)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Kinds")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx >= len(filtered) {
			startIdx = 0
			eb.currentPage = 0
		}
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Kinds, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.KindCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()
	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowserComponent) rebuildCache(store *ecs.Store) {
	kindsByEntity := make(map[ecs.EntityId][]string)
	for _, kind := range store.Kinds() {
		name := store.Registry().KindName(kind)
		for id := range store.GetComponents(kind) {
			kindsByEntity[id] = append(kindsByEntity[id], name)
		}
	}

	eb.cache.entities = eb.cache.entities[:0]
	for id, kinds := range kindsByEntity {
		eb.cache.entities = append(eb.cache.entities, entityInfo{
			ID:        id,
			Kinds:     kinds,
			KindCount: len(kinds),
		})
	}

	sort.Slice(eb.cache.entities, func(i, j int) bool {
		return eb.cache.entities[i].ID < eb.cache.entities[j].ID
	})
}

func (eb *EntityBrowserComponent) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityInfo, 0, len(eb.cache.entities))
	for _, entity := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		kindsStr := strings.ToLower(strings.Join(entity.Kinds, " "))
		if !strings.Contains(idStr, filterLower) && !strings.Contains(kindsStr, filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}
	return filtered
}

// SelectedEntity returns the entity picked in the browser, if any.
func (eb *EntityBrowserComponent) SelectedEntity() (ecs.EntityId, bool) {
	return eb.selectedEntityId, eb.hasSelection
}
