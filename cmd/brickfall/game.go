package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/internal/scores"
)

var background = color.RGBA{A: 0xff}

// game implements ebiten.Game on top of a breakout.Engine.
type game struct {
	engine  *breakout.Engine
	store   *scores.Store // nil when scores are disabled
	steps   int
	best    int
	overlay *debugOverlay
}

func newGame(engine *breakout.Engine, store *scores.Store, steps int) *game {
	return &game{engine: engine, store: store, steps: steps}
}

// restart records the game in progress and starts a new one.
func (g *game) restart() {
	recordRun(g.store, g.engine)
	g.engine.Reset()
}

// readInput samples the keyboard.
func readInput() breakout.Input {
	return breakout.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (g *game) Update() error {
	var input breakout.Input
	if g.overlay == nil || !g.overlay.WantsKeyboard() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		input = readInput()
	}

	g.step(input)

	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

// step runs the simulation steps of one host frame with the same input.
func (g *game) step(input breakout.Input) {
	for range g.steps {
		g.engine.Tick(breakout.ArenaWidth, breakout.ArenaHeight, input)
	}
	g.best = max(g.best, g.engine.Score())
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, r := range g.engine.Renderables() {
		switch r.Shape {
		case breakout.ShapeCircle:
			cx, cy := circleCenter(r)
			vector.DrawFilledCircle(screen, cx, cy, float32(r.Radius), r.Color, true)
		default:
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.hud(), 10, breakout.ArenaHeight-20)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// circleCenter converts a circle's top-left position into the centre the
// vector package draws around.
func circleCenter(r breakout.Renderable) (float32, float32) {
	return float32(r.X + r.Radius), float32(r.Y + r.Radius)
}

func (g *game) hud() string {
	return fmt.Sprintf("Score: %d  Level: %d  Best: %d", g.engine.Score(), g.engine.Level(), g.best)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return breakout.ArenaWidth, breakout.ArenaHeight
}
