package debugui

import "github.com/plus3/brickfall/ecs"

// SpawnDebugUI creates one entity per debug window, plus the singletons the
// debug systems read.
func SpawnDebugUI(storage *ecs.Storage) {
	storage.Spawn(NewEntityBrowserComponent(100))
	storage.Spawn(NewComponentInspectorComponent())
	storage.Spawn(NewPerformanceStatsComponent(120))
	storage.Spawn(NewQueryDebuggerComponent())
	ecs.NewSingleton[FrameTimer](storage, *NewFrameTimer())
	ecs.NewSingleton[ImguiInputState](storage)
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[QueryDebuggerComponent](registry)
}

// DebugWindowSystem renders the windows created by SpawnDebugUI. Rendering is
// deferred to the end of the frame, after every other system has run.
type DebugWindowSystem struct {
	Browsers   ecs.Query[struct{ *EntityBrowserComponent }]
	Inspectors ecs.Query[struct{ *ComponentInspectorComponent }]
	Stats      ecs.Query[struct{ *PerformanceStatsComponent }]
	Debuggers  ecs.Query[struct{ *QueryDebuggerComponent }]
	Timer      ecs.Singleton[FrameTimer]

	// Scheduler, when set, feeds per-system timings to the stats window.
	Scheduler *ecs.Scheduler
}

func (d *DebugWindowSystem) Execute(frame *ecs.UpdateFrame) {
	storage := frame.Storage
	var dt float32
	if timer := d.Timer.Get(); timer != nil {
		dt = timer.GetDeltaTime()
	}

	var selected ecs.EntityId
	for item := range d.Browsers.Values() {
		browser := item.EntityBrowserComponent
		selected = browser.GetSelectedEntity()
		frame.Commands.Defer(func() { browser.Render(storage) })
	}
	for item := range d.Inspectors.Values() {
		inspector := item.ComponentInspectorComponent
		frame.Commands.Defer(func() { inspector.Render(storage, selected) })
	}
	for item := range d.Stats.Values() {
		stats := item.PerformanceStatsComponent
		frame.Commands.Defer(func() {
			var schedulerStats *ecs.SchedulerStats
			if d.Scheduler != nil {
				schedulerStats = d.Scheduler.GetStats()
			}
			stats.Render(storage, dt, schedulerStats)
		})
	}
	for item := range d.Debuggers.Values() {
		debugger := item.QueryDebuggerComponent
		frame.Commands.Defer(func() { debugger.Render(storage) })
	}
}
