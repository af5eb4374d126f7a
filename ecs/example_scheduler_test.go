package ecs_test

import (
	"fmt"

	"github.com/plus3/brickfall/ecs"
)

type FrameLog struct {
	Lines []string
}

type DrainSystem struct {
	Bodies ecs.Query[struct {
		Id ecs.EntityId
		*Health
	}]
}

func (s *DrainSystem) Execute(frame *ecs.UpdateFrame) {
	for id, item := range s.Bodies.Iter() {
		item.Health.Current--
		if item.Health.Current <= 0 {
			frame.Storage.Delete(id)
		}
	}
}

type CountSystem struct {
	Bodies ecs.Query[struct{ *Health }]
	Log    ecs.Singleton[FrameLog]
}

func (s *CountSystem) Execute(frame *ecs.UpdateFrame) {
	log := s.Log.Get()
	log.Lines = append(log.Lines, fmt.Sprintf("tick %d: %d alive", frame.Tick, s.Bodies.Len()))
}

// ExampleScheduler runs systems in registration order. Each system's
// queries are refreshed right before it runs, so CountSystem sees the
// deletes DrainSystem made earlier in the same tick.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)
	log := ecs.NewSingleton[FrameLog](storage)

	storage.Spawn(Health{Current: 1})
	storage.Spawn(Health{Current: 2})
	storage.Spawn(Health{Current: 3})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&DrainSystem{})
	scheduler.Register(&CountSystem{})

	for range 3 {
		scheduler.Once(1.0)
	}

	for _, line := range log.Get().Lines {
		fmt.Println(line)
	}

	// Output:
	// tick 1: 2 alive
	// tick 2: 1 alive
	// tick 3: 0 alive
}
