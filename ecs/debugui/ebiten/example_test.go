package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/brickfall/ecs"
	"github.com/plus3/brickfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/brickfall/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	storage      *ecs.Storage
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Execute all ECS systems (including ImguiSystem) inside one ImGui frame
	g.imguiBackend.Get().Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Set up ECS component registry
	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)

	// Create ECS storage
	storage := ecs.NewStorage(registry)

	// Register ImGui backend as a singleton
	ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720))

	// Spawn entities with ImGui render functions
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	// Spawn the storage inspection windows
	debugui.SpawnDebugUI(storage)

	// Create scheduler and register the ImGui systems
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(&debugui.DebugWindowSystem{Scheduler: scheduler})

	// Create game instance
	game := &Game{
		storage:      storage,
		scheduler:    scheduler,
		imguiBackend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
