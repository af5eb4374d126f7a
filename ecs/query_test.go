package ecs_test

import (
	"testing"

	"github.com/plus3/brickfall/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	second := storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("panics without execute", func(t *testing.T) {
		fresh := ecs.NewQuery[struct{ *Position }](storage)
		assert.Panics(t, func() {
			for range fresh.Iter() {
			}
		})
	})

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 3, query.Len())
	})

	t.Run("cache is a snapshot until re-executed", func(t *testing.T) {
		query.Execute()
		storage.Spawn(Position{X: 10, Y: 10}, Velocity{DX: 2.0, DY: 2.0})
		assert.Equal(t, 3, query.Len())

		query.Execute()
		assert.Equal(t, 4, query.Len())
	})

	t.Run("deleted entities are skipped", func(t *testing.T) {
		query.Execute()
		storage.Delete(second)

		for id, item := range query.Iter() {
			assert.NotEqual(t, second, id)
			assert.NotNil(t, item.Position)
		}
		assert.Equal(t, 3, query.Len())
	})

	t.Run("values", func(t *testing.T) {
		query.Execute()

		count := 0
		for item := range query.Values() {
			assert.NotNil(t, item.Velocity)
			count++
		}
		assert.Equal(t, 3, count)
	})
}
