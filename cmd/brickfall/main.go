// brickfall is a Breakout clone built on an entity component system.
//
// Usage:
//
//	brickfall play           - Open a window and play
//	brickfall simulate       - Run a headless game driven by the autopilot
//	brickfall scores         - Show the best recorded runs
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.brickfall, ./configs)
//	--seed <value>       - RNG seed (0 = random based on time)
//	--db <path>          - Scores database path
//	--log-level <level>  - Override logging.level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/internal/config"
	"github.com/plus3/brickfall/internal/logging"
	"github.com/plus3/brickfall/internal/scores"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string

	// Set by loadSettings before any subcommand runs.
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - Breakout on an entity component system",
	Long: `Brickfall is a Breakout clone. Bounce the ball off the paddle,
clear every brick and move on to a taller wall.

Available commands:
  play      - Play in a window
  simulate  - Run a headless game with the autopilot
  scores    - View high scores

Examples:
  brickfall play
  brickfall play --debug-ui
  brickfall simulate --ticks 200000 --seed 42
  brickfall scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides scores.path)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides logging.level)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadSettings resolves the config file, applies flag overrides and builds
// the logger. Any failure aborts the command.
func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Simulation.Seed = flagSeed
	}
	if flags.Changed("db") {
		loaded.Scores.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Logging.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	l, err := logging.New(loaded.Logging)
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}

	cfg = loaded
	logger = l
	return nil
}

// seed returns the configured seed, or a time-based one when it is 0.
func seed() uint64 {
	if cfg.Simulation.Seed != 0 {
		return cfg.Simulation.Seed
	}
	return uint64(time.Now().UnixNano())
}

// openScores opens the score database, or returns nil when scores are
// disabled.
func openScores() (*scores.Store, error) {
	if !cfg.Scores.Enabled {
		return nil, nil
	}
	store, err := scores.Open(cfg.Scores.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scores database: %w", err)
	}
	return store, nil
}

// recordRun stores the final result of a game. A nil store is a no-op.
func recordRun(store *scores.Store, engine *breakout.Engine) {
	if store == nil {
		return
	}
	run := scores.NewRun()
	if err := store.SaveScore(run, engine.Score(), engine.Level()); err != nil {
		logger.Warn("score not saved", zap.Error(err))
		return
	}
	logger.Info("score saved",
		zap.Stringer("run", run),
		zap.Int("score", engine.Score()),
		zap.Int("level", engine.Level()),
	)
}
