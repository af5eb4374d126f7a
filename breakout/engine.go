package breakout

import (
	"time"

	"go.uber.org/zap"

	"github.com/plus3/brickfall/ecs"
)

// Engine owns the entity store of one game session and runs its systems.
type Engine struct {
	registry  *ecs.ComponentRegistry
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	state *ecs.Singleton[GameState]
	tally *ecs.Singleton[Tally]
	arena *ecs.Singleton[Arena]
	input *ecs.Singleton[Input]

	rand       Rand
	logger     *zap.Logger
	extra      []func(*ecs.ComponentRegistry)
	emptyScene bool
}

type Option func(*Engine)

// WithRand replaces the default time-seeded source.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithComponents registers additional component types, e.g. for tooling
// that shares the engine's storage.
func WithComponents(register ...func(*ecs.ComponentRegistry)) Option {
	return func(e *Engine) { e.extra = append(e.extra, register...) }
}

// WithEmptyScene starts without the ball, paddle and bricks.
func WithEmptyScene() Option {
	return func(e *Engine) { e.emptyScene = true }
}

// NewRegistry registers the game's component types.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Style](registry)
	ecs.RegisterComponent[Role](registry)
	return registry
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = NewRand(uint64(time.Now().UnixNano()))
	}

	e.registry = NewRegistry()
	for _, register := range e.extra {
		register(e.registry)
	}
	e.storage = ecs.NewStorage(e.registry)

	e.state = ecs.NewSingleton(e.storage, initialState())
	e.tally = ecs.NewSingleton(e.storage, Tally{})
	e.arena = ecs.NewSingleton(e.storage, Arena{Width: ArenaWidth, Height: ArenaHeight})
	e.input = ecs.NewSingleton(e.storage, Input{})

	e.scheduler = ecs.NewScheduler(e.storage)
	e.scheduler.Register(&BallSystem{Rand: e.rand, Logger: e.logger})
	e.scheduler.Register(&LevelSystem{Logger: e.logger})
	e.scheduler.Register(&PaddleSystem{})

	if !e.emptyScene {
		e.spawnScene()
	}
	return e
}

func (e *Engine) spawnScene() {
	e.SpawnBall(
		Transform{X: BallStartX, Y: BallStartY, W: BallSize, H: BallSize},
		Velocity{VX: BallStartVX, VY: BallStartVY},
	)
	e.SpawnPaddle(Transform{X: PaddleStartX, Y: PaddleStartY, W: PaddleWidth, H: PaddleHeight})
	SpawnBricks(StorageSpawner(e.storage), InitialLayout())
}

// Tick advances the simulation by one step inside an arena of the given size.
func (e *Engine) Tick(width, height float64, input Input) {
	*e.arena.Get() = Arena{Width: width, Height: height}
	*e.input.Get() = input
	e.scheduler.Once(1)
}

// Reset removes every game entity and starts a new game in the same storage.
// Entity ids keep increasing across resets.
func (e *Engine) Reset() {
	var doomed []ecs.EntityId
	for id := range e.storage.Iter() {
		if ecs.Has[Role](e.storage, id) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		e.storage.Delete(id)
	}

	*e.state.Get() = initialState()
	*e.tally.Get() = Tally{}
	if !e.emptyScene {
		e.spawnScene()
	}
	e.logger.Info("game reset")
}

func (e *Engine) SpawnBall(t Transform, v Velocity) ecs.EntityId {
	return e.storage.Spawn(ballComponents(t, v)...)
}

func (e *Engine) SpawnPaddle(t Transform) ecs.EntityId {
	return e.storage.Spawn(paddleComponents(t)...)
}

func (e *Engine) SpawnBrick(t Transform) ecs.EntityId {
	return e.storage.Spawn(brickComponents(t)...)
}

func (e *Engine) Score() int         { return e.state.Get().Score }
func (e *Engine) Level() int         { return e.state.Get().Level }
func (e *Engine) BallSpeed() float64 { return e.state.Get().BallSpeed }
func (e *Engine) Tally() Tally       { return *e.tally.Get() }

func (e *Engine) Storage() *ecs.Storage     { return e.storage }
func (e *Engine) Scheduler() *ecs.Scheduler { return e.scheduler }
func (e *Engine) Registry() *ecs.ComponentRegistry {
	return e.registry
}

// Ball is a snapshot of one ball.
type Ball struct {
	ID ecs.EntityId
	Transform
	Velocity
}

// Balls returns every ball in store order.
func (e *Engine) Balls() []Ball {
	var balls []Ball
	view := ecs.NewView[struct {
		Id ecs.EntityId
		*Role
		*Transform
		*Velocity
	}](e.storage)
	for b := range view.Values() {
		if *b.Role == RoleBall {
			balls = append(balls, Ball{ID: b.Id, Transform: *b.Transform, Velocity: *b.Velocity})
		}
	}
	return balls
}

// Bricks returns the transform of every brick in store order.
func (e *Engine) Bricks() []Transform {
	return e.transformsOf(RoleBrick)
}

// Paddles returns the transform of every paddle in store order.
func (e *Engine) Paddles() []Transform {
	return e.transformsOf(RolePaddle)
}

func (e *Engine) transformsOf(role Role) []Transform {
	var out []Transform
	for b := range ecs.NewView[body](e.storage).Values() {
		if *b.Role == role {
			out = append(out, *b.Transform)
		}
	}
	return out
}
