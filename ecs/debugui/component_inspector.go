package debugui

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

// Render shows every component of the selected entity. Edits are written
// straight into the component's storage cell.
func (ci *ComponentInspectorComponent) Render(storage *ecs.Storage, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		return
	}
	if !storage.Alive(ci.selectedEntityId) {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", ci.selectedEntityId))
		return
	}

	types := storage.ComponentTypes(ci.selectedEntityId)
	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selectedEntityId))
	imgui.Text(fmt.Sprintf("Components: %d", len(types)))
	imgui.Separator()

	for _, compType := range types {
		val, ok := componentValue(storage, ci.selectedEntityId, compType)
		if !ok {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			ci.renderStruct(compType.String(), val)
			imgui.TreePop()
		}
	}
}

// componentValue returns the addressable struct stored for the entity.
func componentValue(storage *ecs.Storage, id ecs.EntityId, compType reflect.Type) (reflect.Value, bool) {
	component := storage.GetComponent(id, compType)
	if component == nil {
		return reflect.Value{}, false
	}
	val := reflect.ValueOf(component)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return reflect.Value{}, false
	}
	return val.Elem(), true
}

func (ci *ComponentInspectorComponent) renderStruct(path string, val reflect.Value) {
	if val.Kind() != reflect.Struct {
		t := val.Type()
		ci.renderField(path, FieldInfo{Name: t.Name(), Type: t, Kind: kindOf(t), Named: t.Implements(stringerType)}, val)
		return
	}
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		ci.renderField(path+"."+field.Name, field, val.Field(field.Index))
	}
}

// renderField draws the widget for one field. id is unique within the
// window so that equally named fields of different components don't clash.
func (ci *ComponentInspectorComponent) renderField(id string, field FieldInfo, val reflect.Value) {
	switch field.Kind {
	case fieldStruct:
		if imgui.TreeNodeStr(field.Name) {
			ci.renderStruct(id, val)
			imgui.TreePop()
		}
		return
	case fieldColor:
		rgba := val.Interface().(color.RGBA)
		c := rgbaToFloats(rgba)
		if imgui.ColorEdit4(fmt.Sprintf("%s##%s", field.Name, id), &c) && val.CanSet() {
			val.Set(reflect.ValueOf(floatsToRGBA(c)))
		}
		return
	case fieldCollection:
		imgui.Text(fmt.Sprintf("%s: [%d items]", field.Name, val.Len()))
		return
	case fieldPointer:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", field.Name))
		} else {
			imgui.Text(fmt.Sprintf("%s: %s", field.Name, val.Type()))
		}
		return
	}

	label := fmt.Sprintf("##%s", id)
	imgui.Text(fmt.Sprintf("%s:", field.Name))
	imgui.SameLine()

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 {
			setUint(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(label, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	default:
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
	}

	if field.Named {
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprint(val.Interface()))
	}
}

// setInt writes v unless it overflows the field's type.
func setInt(val reflect.Value, v int64) bool {
	if !val.CanSet() || val.OverflowInt(v) {
		return false
	}
	val.SetInt(v)
	return true
}

func setUint(val reflect.Value, v uint64) bool {
	if !val.CanSet() || val.OverflowUint(v) {
		return false
	}
	val.SetUint(v)
	return true
}

func rgbaToFloats(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func floatsToRGBA(c [4]float32) color.RGBA {
	channel := func(f float32) uint8 {
		return uint8(min(max(f, 0), 1)*255 + 0.5)
	}
	return color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}
