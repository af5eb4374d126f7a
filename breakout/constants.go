package breakout

const (
	ArenaWidth  = 800
	ArenaHeight = 600

	InitialBallSpeed = 0.1

	BrickScore         = 100
	BrickSpeedup       = 0.0005
	PaddleSpeedup      = 0.005
	LevelSpeedup       = 0.05
	PaddleMinFactor    = 0.1
	PaddleFactorSpread = 0.2

	PaddleSpeed = 0.3

	BallRadius = 10
)

// Initial scene.
const (
	BallStartX, BallStartY   = 400, 300
	BallSize                 = 10
	BallStartVX, BallStartVY = 0.05, 0.05

	PaddleStartX, PaddleStartY = 400, 550
	PaddleWidth, PaddleHeight  = 100, 20

	RespawnX, RespawnY = 400, 540
)

// Brick grid geometry.
const (
	BrickColumns  = 11
	InitialRows   = 3
	BrickWidth    = 60
	BrickHeight   = 20
	BrickGapX     = 5
	BrickGapY     = 5
	BrickOriginX  = 50
	BrickOriginY  = 15
	baseLevelRows = 3
)
