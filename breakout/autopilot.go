package breakout

// Autopilot steers the paddle under the ball that will reach it first.
type Autopilot struct {
	// Deadzone is how far the paddle centre may drift from the target
	// before the autopilot moves it.
	Deadzone float64
}

// Decide returns the input for the next tick.
func (a Autopilot) Decide(e *Engine) Input {
	paddles := e.Paddles()
	if len(paddles) == 0 {
		return Input{}
	}
	paddle := paddles[0]

	target, ok := a.target(e.Balls())
	if !ok {
		return Input{}
	}

	center := paddle.CenterX()
	switch {
	case target < center-a.Deadzone:
		return Input{MoveLeft: true}
	case target > center+a.Deadzone:
		return Input{MoveRight: true}
	}
	return Input{}
}

// target picks the lowest falling ball, or the lowest ball when none falls.
func (a Autopilot) target(balls []Ball) (float64, bool) {
	var best *Ball
	for i := range balls {
		b := &balls[i]
		if best == nil {
			best = b
			continue
		}
		bestFalling, falling := best.VY > 0, b.VY > 0
		if falling != bestFalling {
			if falling {
				best = b
			}
			continue
		}
		if b.Y > best.Y {
			best = b
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Transform.CenterX(), true
}
