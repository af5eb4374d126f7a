package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/ecs"
)

const maxListedMatches = 50

type QueryDebuggerCache struct {
	componentTypes []string
	typesByName    map[string]reflect.Type
	matches        []ecs.EntityId
	version        uint64
	selectionKey   string
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache:                  &QueryDebuggerCache{},
	}
}

func (qd *QueryDebuggerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.rebuildTypesIfNeeded(storage)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range qd.cache.componentTypes {
		selected := qd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				qd.selectedComponentTypes[compType] = true
			} else {
				delete(qd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	selected := qd.selectedTypes()
	if len(selected) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matches := qd.findMatches(storage, selected)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Entities") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for i, id := range matches {
				if i == maxListedMatches {
					break
				}
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", id))

				imgui.TableSetColumnIndex(1)
				types := storage.ComponentTypes(id)
				componentNames := make([]string, len(types))
				for i, t := range types {
					componentNames[i] = t.String()
				}
				imgui.Text(fmt.Sprintf("%v", componentNames))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// rebuildTypesIfNeeded lists registered component types. The registry is
// closed once the storage is in use, so the list is built once.
func (qd *QueryDebuggerComponent) rebuildTypesIfNeeded(storage *ecs.Storage) {
	if qd.cache.typesByName != nil {
		return
	}

	qd.cache.typesByName = make(map[string]reflect.Type)
	for _, t := range storage.Registry().Types() {
		qd.cache.typesByName[t.String()] = t
		qd.cache.componentTypes = append(qd.cache.componentTypes, t.String())
	}

	sort.Strings(qd.cache.componentTypes)
}

func (qd *QueryDebuggerComponent) selectedTypes() []reflect.Type {
	var types []reflect.Type
	for _, name := range qd.cache.componentTypes {
		if qd.selectedComponentTypes[name] {
			types = append(types, qd.cache.typesByName[name])
		}
	}
	return types
}

// findMatches returns the entities carrying every required type, reusing the
// previous result while neither the storage nor the selection changed.
func (qd *QueryDebuggerComponent) findMatches(storage *ecs.Storage, requiredTypes []reflect.Type) []ecs.EntityId {
	key := fmt.Sprint(requiredTypes)
	if qd.cache.selectionKey == key && qd.cache.version == storage.Version() && qd.cache.matches != nil {
		return qd.cache.matches
	}

	matches := make([]ecs.EntityId, 0)
	for id := range storage.Iter() {
		if hasAllTypes(storage, id, requiredTypes) {
			matches = append(matches, id)
		}
	}

	qd.cache.matches = matches
	qd.cache.selectionKey = key
	qd.cache.version = storage.Version()
	return matches
}

func hasAllTypes(storage *ecs.Storage, id ecs.EntityId, requiredTypes []reflect.Type) bool {
	for _, required := range requiredTypes {
		if !storage.HasComponent(id, required) {
			return false
		}
	}
	return true
}
