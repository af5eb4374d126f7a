package breakout_test

import (
	"fmt"

	"github.com/plus3/brickfall/breakout"
)

// ExampleEngine runs a few ticks of a new game with the paddle held left.
func ExampleEngine() {
	engine := breakout.NewEngine(breakout.WithRand(breakout.NewRand(1)))

	for range 10 {
		engine.Tick(breakout.ArenaWidth, breakout.ArenaHeight, breakout.Input{MoveLeft: true})
	}

	ball := engine.Balls()[0]
	fmt.Printf("ball at (%.1f, %.1f)\n", ball.X, ball.Y)
	fmt.Printf("paddle at x=%.0f\n", engine.Paddles()[0].X)
	fmt.Printf("score %d, level %d, %d bricks\n", engine.Score(), engine.Level(), len(engine.Bricks()))

	// Output:
	// ball at (400.5, 300.5)
	// paddle at x=397
	// score 0, level 1, 33 bricks
}

// ExampleGridLayout prints the first row of the starting grid.
func ExampleGridLayout() {
	for _, brick := range breakout.GridLayout(1) {
		fmt.Print(brick.X, " ")
	}
	fmt.Println()

	// Output:
	// 50 115 180 245 310 375 440 505 570 635 700
}
