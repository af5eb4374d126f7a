// Package debugui renders Dear ImGui windows that inspect an ecs.Storage:
// an entity browser, a component inspector, a component filter and
// frame statistics. Windows are ordinary entities, so they live in the
// storage they inspect and are driven by systems like everything else.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/ecs"
)

// ImguiItem holds an ImGui render function. Every ImguiItem is drawn once per
// frame, in creation order.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors whether ImGui wants the mouse or keyboard this
// frame. Hosts should not forward captured input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem's Render.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
