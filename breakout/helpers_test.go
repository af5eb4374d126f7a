package breakout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/ecs"
)

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

var sentinelBrick = breakout.Transform{X: 50, Y: 15, W: 60, H: 20}

// newScene returns an engine holding only a brick in the top-left corner,
// which keeps the level from advancing.
func newScene(t *testing.T, r breakout.Rand) *breakout.Engine {
	t.Helper()
	e := breakout.NewEngine(breakout.WithEmptyScene(), breakout.WithRand(r))
	e.SpawnBrick(sentinelBrick)
	return e
}

func ballBox(x, y float64) breakout.Transform {
	return breakout.Transform{X: x, Y: y, W: breakout.BallSize, H: breakout.BallSize}
}

func tick(e *breakout.Engine) {
	e.Tick(breakout.ArenaWidth, breakout.ArenaHeight, breakout.Input{})
}

func gameState(t *testing.T, e *breakout.Engine) *breakout.GameState {
	t.Helper()
	var state *breakout.GameState
	require.True(t, e.Storage().ReadSingleton(&state))
	return state
}

func onlyBall(t *testing.T, e *breakout.Engine) breakout.Ball {
	t.Helper()
	balls := e.Balls()
	require.Len(t, balls, 1)
	return balls[0]
}

func mustTransform(t *testing.T, e *breakout.Engine, id ecs.EntityId) breakout.Transform {
	t.Helper()
	tr, err := ecs.Get[breakout.Transform](e.Storage(), id)
	require.NoError(t, err)
	return *tr
}
