package breakout

import (
	"go.uber.org/zap"

	"github.com/plus3/brickfall/ecs"
)

type body struct {
	Id ecs.EntityId
	*Role
	*Transform
}

type mover struct {
	Id ecs.EntityId
	*Transform
	*Velocity
	Role *Role `ecs:"optional"`
}

// BallSystem moves every entity with a Transform and a Velocity and resolves
// its collisions with the walls, the bricks and the paddles.
//
// Removals go straight to storage so that later balls in the same pass no
// longer see a destroyed brick or a lost ball.
type BallSystem struct {
	Movers ecs.Query[mover]
	Bodies ecs.Query[body]
	State  ecs.Singleton[GameState]
	Tally  ecs.Singleton[Tally]
	Arena  ecs.Singleton[Arena]

	Rand   Rand
	Logger *zap.Logger
}

func (s *BallSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	tally := s.Tally.Get()
	arena := s.Arena.Get()
	logger := orNop(s.Logger)

	for m := range s.Movers.Values() {
		t, v := *m.Transform, *m.Velocity
		x, y := t.X+v.VX, t.Y+v.VY

		maxX := max(arena.Width-t.W, 0)
		if x <= 0 || x >= maxX {
			v.VX = -v.VX
		}
		if y <= 0 {
			v.VY = -v.VY
		}
		x = min(max(x, 0), maxX)
		y = max(y, 0)

		if y >= arena.Height-t.H {
			if s.otherBallExists(m.Id) {
				frame.Storage.Delete(m.Id)
				tally.BallsLost++
				logger.Debug("ball lost", zap.Uint64("entity", uint64(m.Id)), zap.Uint64("tick", frame.Tick))
				continue
			}

			state.BallSpeed = InitialBallSpeed
			*m.Transform = t.MovedTo(RespawnX, RespawnY)
			*m.Velocity = Velocity{VX: coinSign(s.Rand) * InitialBallSpeed, VY: -InitialBallSpeed}
			tally.Respawns++
			logger.Info("last ball respawned", zap.Uint64("entity", uint64(m.Id)), zap.Int("score", state.Score))
			break
		}

		next := t.MovedTo(x, y)

		for b := range s.Bodies.Values() {
			if *b.Role != RoleBrick || !next.Overlaps(*b.Transform) {
				continue
			}
			state.Score += BrickScore
			state.BallSpeed += BrickSpeedup
			v = Velocity{VX: state.BallSpeed, VY: -v.VY}
			frame.Storage.Delete(b.Id)
			tally.BricksDestroyed++
			break
		}

		for b := range s.Bodies.Values() {
			if *b.Role != RolePaddle || !touchesPaddle(next, *b.Transform) {
				continue
			}
			state.BallSpeed += PaddleSpeedup
			speed := state.BallSpeed
			factor := bounceFactor(s.Rand)

			switch center, middle := next.CenterX(), b.Transform.CenterX(); {
			case center < middle:
				v = Velocity{VX: -speed * factor, VY: -speed}
			case center == middle:
				v = Velocity{VX: -speed, VY: -speed}
			default:
				v = Velocity{VX: speed * factor, VY: -speed}
			}
		}

		*m.Velocity = v
		*m.Transform = next
	}
}

func (s *BallSystem) otherBallExists(self ecs.EntityId) bool {
	for b := range s.Bodies.Values() {
		if b.Id != self && *b.Role == RoleBall {
			return true
		}
	}
	return false
}

// touchesPaddle requires the ball's bottom edge at or below the paddle's top
// edge while its top edge is still above the paddle's bottom.
func touchesPaddle(ball, paddle Transform) bool {
	return ball.X < paddle.X+paddle.W &&
		ball.X+ball.W > paddle.X &&
		ball.Y+ball.H >= paddle.Y &&
		ball.Y < paddle.Y+paddle.H
}

// LevelSystem advances the level once every brick is gone. The new bricks
// are spawned through the frame's commands and exist when the tick ends.
type LevelSystem struct {
	Bodies ecs.Query[body]
	Balls  ecs.Query[struct {
		*Role
		*Transform
		*Velocity
	}]
	State ecs.Singleton[GameState]
	Tally ecs.Singleton[Tally]

	Logger *zap.Logger
}

func (s *LevelSystem) Execute(frame *ecs.UpdateFrame) {
	for b := range s.Bodies.Values() {
		if *b.Role == RoleBrick {
			return
		}
	}

	state := s.State.Get()
	state.Level++
	state.BallSpeed += LevelSpeedup
	s.Tally.Get().LevelsCleared++

	layout := LevelLayout(state.Level)
	SpawnBricks(frame.Commands, layout)

	for ball := range s.Balls.Values() {
		if *ball.Role != RoleBall {
			continue
		}
		*ball.Transform = ball.Transform.MovedTo(BallStartX, BallStartY)
		*ball.Velocity = Velocity{VX: state.BallSpeed, VY: -state.BallSpeed}
	}

	orNop(s.Logger).Info("level cleared",
		zap.Int("level", state.Level),
		zap.Int("bricks", len(layout)),
		zap.Float64("ballSpeed", state.BallSpeed),
		zap.Int("score", state.Score),
	)
}

// PaddleSystem applies the player's input to every paddle.
type PaddleSystem struct {
	Paddles ecs.Query[body]
	Input   ecs.Singleton[Input]
	Arena   ecs.Singleton[Arena]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	arena := s.Arena.Get()

	for p := range s.Paddles.Values() {
		if *p.Role != RolePaddle {
			continue
		}
		x := p.Transform.X
		if input.MoveLeft {
			x -= PaddleSpeed
		}
		if input.MoveRight {
			x += PaddleSpeed
		}
		x = min(max(x, 0), max(arena.Width-p.Transform.W, 0))
		*p.Transform = p.Transform.MovedTo(x, p.Transform.Y)
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
