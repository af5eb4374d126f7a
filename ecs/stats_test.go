package ecs

import (
	"testing"
)

type statsPosition struct{ X, Y float64 }

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[statsPosition](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	if stats.TotalEntityCount != 0 || stats.ComponentKindCount != 0 || stats.SingletonCount != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	doomed := storage.Spawn(statsPosition{X: 1}, "test")
	storage.Delete(doomed)

	NewSingleton[float64](storage, 3.14)
	NewSingleton[string](storage, "singleton")

	stats = storage.CollectStats()

	if stats.TotalEntityCount != 2 {
		t.Errorf("expected 2 entities, got %d", stats.TotalEntityCount)
	}
	if stats.SlotCount != 3 || stats.FreeSlotCount != 1 {
		t.Errorf("expected 3 slots with 1 free, got %d/%d", stats.SlotCount, stats.FreeSlotCount)
	}
	if stats.ComponentKindCount != 2 {
		t.Errorf("expected 2 populated component kinds, got %d", stats.ComponentKindCount)
	}
	for _, comp := range stats.ComponentBreakdown {
		if comp.EntityCount != 2 {
			t.Errorf("expected 2 entities for %s, got %d", comp.Type, comp.EntityCount)
		}
	}
	if stats.SingletonCount != 2 || len(stats.SingletonTypes) != 2 {
		t.Errorf("expected 2 singletons, got %d", stats.SingletonCount)
	}
	if stats.SingletonTypes[0] != "float64" {
		t.Errorf("expected float64 first, got %s", stats.SingletonTypes[0])
	}
}

func TestOrderCompactsAfterIteration(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	storage := NewStorage(registry)

	for i := range 4 {
		storage.Spawn(i)
	}
	for id := range storage.Iter() {
		storage.Delete(id)
		if len(storage.order) != 4 {
			t.Fatalf("order compacted mid-iteration: %d", len(storage.order))
		}
	}
	if len(storage.order) != 0 || storage.stale {
		t.Errorf("expected empty order after iteration, got %v", storage.order)
	}
}
