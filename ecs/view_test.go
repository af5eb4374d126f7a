package ecs_test

import (
	"testing"

	"github.com/plus3/brickfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movingView struct {
	Id ecs.EntityId
	*Position
	*Velocity
	Name *Name `ecs:"optional"`
}

func TestViewRequiredAndOptional(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	named := storage.Spawn(Position{X: 1}, Velocity{DX: 1}, Name{Value: "named"})
	anonymous := storage.Spawn(Position{X: 2}, Velocity{DX: 2})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[movingView](storage)

	var got []movingView
	for id, item := range view.Iter() {
		assert.Equal(t, id, item.Id)
		got = append(got, item)
	}

	require.Len(t, got, 2)
	assert.Equal(t, named, got[0].Id)
	require.NotNil(t, got[0].Name)
	assert.Equal(t, "named", got[0].Name.Value)
	assert.Equal(t, anonymous, got[1].Id)
	assert.Nil(t, got[1].Name)
	assert.Equal(t, 2, view.Count())
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}

	pos := ecs.MustGet[Position](storage, id)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)
}

func TestViewGetAndFill(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	full := storage.Spawn(Position{X: 5}, Velocity{DX: 1})
	partial := storage.Spawn(Position{X: 6})

	view := ecs.NewView[movingView](storage)

	item := view.Get(full)
	require.NotNil(t, item)
	assert.Equal(t, full, item.Id)
	assert.Equal(t, float32(5), item.Position.X)

	assert.Nil(t, view.Get(partial))

	storage.Delete(full)
	var out movingView
	assert.False(t, view.Fill(full, &out))
}

func TestViewWithUnusedComponentMatchesNothing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{})

	view := ecs.NewView[struct{ *Health }](storage)
	assert.Equal(t, 0, view.Count())
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[movingView](storage)

	id := view.Spawn(movingView{
		Position: &Position{X: 7},
		Velocity: &Velocity{DY: 1},
	})

	assert.True(t, ecs.Has[Position](storage, id))
	assert.True(t, ecs.Has[Velocity](storage, id))
	assert.False(t, ecs.Has[Name](storage, id))

	assert.Panics(t, func() {
		view.Spawn(movingView{Position: &Position{}})
	})
}

func TestViewRejectsBadShapes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Position](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct{ P Position }](storage)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](storage)
	})
}
