package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/ecs"
	"github.com/plus3/brickfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/brickfall/ecs/debugui/ebiten"
)

// debugOverlay draws the ECS debug windows over the game. It runs its own
// scheduler against the engine's storage so the gameplay schedule is left
// untouched.
type debugOverlay struct {
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
	dt        float64
}

func newDebugOverlay(engine *breakout.Engine, title string, width, height, tps int) *debugOverlay {
	storage := engine.Storage()
	backend := ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(title, width, height))
	debugui.SpawnDebugUI(storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(&debugui.DebugWindowSystem{Scheduler: engine.Scheduler()})

	return &debugOverlay{
		scheduler: scheduler,
		backend:   backend,
		input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
		dt:        1 / float64(tps),
	}
}

func (o *debugOverlay) Update() {
	o.backend.Get().Frame(func() { o.scheduler.Once(o.dt) })
}

// WantsKeyboard reports whether a debug window has keyboard focus.
func (o *debugOverlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

func (o *debugOverlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *debugOverlay) Layout(width, height int) {
	o.backend.Get().Layout(width, height)
}
