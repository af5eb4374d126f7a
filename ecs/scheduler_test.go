package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/brickfall/ecs"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for _, item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities    ecs.Query[struct{ *Health }]
	TotalHealth int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.TotalHealth = 0
	for _, item := range s.Entities.Iter() {
		s.TotalHealth += item.Health.Current
	}
}

// reaperSystem deletes wounded entities directly so later systems see it.
type reaperSystem struct {
	Entities ecs.Query[struct {
		Id ecs.EntityId
		*Health
	}]
}

func (s *reaperSystem) Execute(frame *ecs.UpdateFrame) {
	for _, item := range s.Entities.Iter() {
		if item.Health.Current < item.Health.Max {
			frame.Storage.Delete(item.Id)
		}
	}
}

type tickRecorder struct {
	Counter ecs.Singleton[Score]
	ticks   []uint64
}

func (s *tickRecorder) Execute(frame *ecs.UpdateFrame) {
	*s.Counter.Get() += 1
	s.ticks = append(s.ticks, frame.Tick)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		if movement.ExecuteCount != 2 {
			t.Errorf("expected MovementSystem to execute twice, got %d", movement.ExecuteCount)
		}
		if scheduler.Tick() != 2 {
			t.Errorf("expected tick 2, got %d", scheduler.Tick())
		}
	})

	t.Run("queries refresh between systems", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		storage.Spawn(Health{Current: 50, Max: 100})
		storage.Spawn(Health{Current: 75, Max: 75})

		health := &HealthSystem{}
		scheduler.Register(&reaperSystem{})
		scheduler.Register(health)

		scheduler.Once(1.0)

		if health.TotalHealth != 75 {
			t.Errorf("expected TotalHealth=75, got %d", health.TotalHealth)
		}
	})

	t.Run("singleton fields and frame ticks", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Score](storage, 10)
		scheduler := ecs.NewScheduler(storage)

		recorder := &tickRecorder{}
		scheduler.Register(recorder)
		scheduler.Once(0)
		scheduler.Once(0)

		var score *Score
		if !storage.ReadSingleton(&score) || *score != 12 {
			t.Errorf("expected singleton score 12, got %v", score)
		}
		if len(recorder.ticks) != 2 || recorder.ticks[0] != 1 || recorder.ticks[1] != 2 {
			t.Errorf("unexpected ticks %v", recorder.ticks)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if movement.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("delta time calculation", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 10, DY: 20})

		scheduler.Register(&MovementSystem{})
		scheduler.Once(0.5)

		pos := ecs.MustGet[Position](storage, id)
		if pos.X != 5.0 || pos.Y != 10.0 {
			t.Errorf("expected position (5, 10), got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("stats", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&MovementSystem{})
		scheduler.Register(&HealthSystem{})

		for range 3 {
			scheduler.Once(1)
		}

		stats := scheduler.GetStats()
		if stats.SystemCount != 2 || stats.TotalExecutions != 6 {
			t.Errorf("unexpected stats %+v", stats)
		}
		if stats.Systems[0].Name != "MovementSystem" {
			t.Errorf("expected MovementSystem, got %s", stats.Systems[0].Name)
		}
	})
}
