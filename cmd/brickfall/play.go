package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/ecs/debugui"
)

var flagDebugUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart
  Esc/Q      - Quit

Examples:
  brickfall play
  brickfall play --seed 42
  brickfall play --debug-ui`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebugUI, "debug-ui", false, "Show the ECS debug windows (overrides debug.ui)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("debug-ui") {
		cfg.Debug.UI = flagDebugUI
	}

	store, err := openScores()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	opts := []breakout.Option{
		breakout.WithRand(breakout.NewRand(seed())),
		breakout.WithLogger(logger.Named("engine")),
	}
	if cfg.Debug.UI {
		opts = append(opts, breakout.WithComponents(debugui.RegisterDebugUIComponents))
	}
	engine := breakout.NewEngine(opts...)

	g := newGame(engine, store, cfg.Simulation.StepsPerUpdate)
	if store != nil {
		if g.best, err = store.HighScore(); err != nil {
			logger.Warn("high score unavailable", zap.Error(err))
		}
	}

	width := int(float64(breakout.ArenaWidth) * cfg.Window.Scale)
	height := int(float64(breakout.ArenaHeight) * cfg.Window.Scale)
	if cfg.Debug.UI {
		g.overlay = newDebugOverlay(engine, cfg.Window.Title, width, height, cfg.Simulation.TicksPerSecond)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(cfg.Simulation.TicksPerSecond)

	logger.Info("game started",
		zap.Int("tps", cfg.Simulation.TicksPerSecond),
		zap.Int("steps", cfg.Simulation.StepsPerUpdate),
		zap.Bool("debug_ui", cfg.Debug.UI),
	)

	runErr := ebiten.RunGame(g)
	recordRun(store, engine)
	return runErr
}
