package breakout

// GameState holds the values carried from one tick to the next.
type GameState struct {
	Level     int
	BallSpeed float64
	Score     int
}

// Tally counts gameplay events since the last reset.
type Tally struct {
	BricksDestroyed int
	BallsLost       int
	Respawns        int
	LevelsCleared   int
}

// Arena is the playfield size, written by the host before every tick.
type Arena struct {
	Width  float64
	Height float64
}

// Input is the player's intent for the next tick.
type Input struct {
	MoveLeft  bool
	MoveRight bool
}

func initialState() GameState {
	return GameState{Level: 1, BallSpeed: InitialBallSpeed}
}
