package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/brickfall/breakout"
)

// maxPreallocSamples bounds the up-front sample buffer; longer runs grow it.
const maxPreallocSamples = 1 << 16

var (
	flagTicks    int
	flagDuration time.Duration
	flagDeadzone float64
	flagGCPause  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the game without a window. The autopilot moves the paddle under
the lowest falling ball. The run stops after --ticks frames or when
--duration elapses, whichever comes first, and prints a report.

Examples:
  brickfall simulate
  brickfall simulate --ticks 1000000 --seed 7
  brickfall simulate --duration 30s --gc-pause-metrics`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 100000, "Number of ticks to simulate (0 = until --duration)")
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "Wall-clock limit for the run")
	simulateCmd.Flags().Float64Var(&flagDeadzone, "deadzone", 5, "Autopilot deadzone in pixels")
	simulateCmd.Flags().BoolVar(&flagGCPause, "gc-pause-metrics", false, "Include GC pause metrics in the report")
}

// newSampleBuffer sizes the per-tick sample slice for a run of ticks, capped
// at maxPreallocSamples.
func newSampleBuffer(ticks int) []time.Duration {
	return make([]time.Duration, 0, min(max(ticks, 0), maxPreallocSamples))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	store, err := openScores()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	runSeed := seed()
	engine := breakout.NewEngine(
		breakout.WithRand(breakout.NewRand(runSeed)),
		breakout.WithLogger(logger.Named("engine")),
	)
	pilot := breakout.Autopilot{Deadzone: flagDeadzone}

	report := &Report{
		Seed:           runSeed,
		TickLimit:      flagTicks,
		Duration:       flagDuration,
		GCPauseMetrics: flagGCPause,
		UpdateTime: Stats{
			Samples: newSampleBuffer(flagTicks),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("simulation started",
		zap.Uint64("seed", runSeed),
		zap.Int("ticks", flagTicks),
		zap.Duration("duration", flagDuration),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), flagDuration)
	defer cancel()

	startTime := time.Now()

Loop:
	for flagTicks <= 0 || report.TotalUpdates < int64(flagTicks) {
		select {
		case <-ctx.Done():
			break Loop
		default:
			input := pilot.Decide(engine)

			updateStart := time.Now()
			engine.Tick(breakout.ArenaWidth, breakout.ArenaHeight, input)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Score = engine.Score()
	report.Level = engine.Level()
	report.BallSpeed = engine.BallSpeed()
	report.Tally = engine.Tally()
	report.Storage = engine.Storage().CollectStats()
	report.Scheduler = engine.Scheduler().GetStats()

	logger.Info("simulation finished",
		zap.Int64("ticks", report.TotalUpdates),
		zap.Int("score", report.Score),
		zap.Int("level", report.Level),
	)

	if err := report.Generate(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	recordRun(store, engine)
	return nil
}
