package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/brickfall/breakout"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	engine := breakout.NewEngine(breakout.WithRand(breakout.NewRand(1)))
	for range 100 {
		engine.Tick(breakout.ArenaWidth, breakout.ArenaHeight, breakout.Input{})
	}

	report := &Report{
		Seed:           1,
		TickLimit:      100,
		Duration:       time.Second,
		Score:          engine.Score(),
		Level:          engine.Level(),
		BallSpeed:      engine.BallSpeed(),
		Tally:          engine.Tally(),
		TotalUpdates:   100,
		Storage:        engine.Storage().CollectStats(),
		Scheduler:      engine.Scheduler().GetStats(),
		GCPauseMetrics: true,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Brickfall Simulation Report")
	assert.Contains(t, out, "- **Seed:** 1")
	assert.Contains(t, out, "- **Level:** 1")
	assert.Contains(t, out, "| BallSystem | 100 |")
	assert.Contains(t, out, "| LevelSystem | 100 |")
	assert.Contains(t, out, "| PaddleSystem | 100 |")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestReportWithoutTickLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Report{}).Generate(&buf))
	assert.Contains(t, buf.String(), "- **Tick Limit:** none")
	assert.NotContains(t, buf.String(), "## Systems")
}

func TestSampleBufferIsCapped(t *testing.T) {
	assert.Equal(t, 100, cap(newSampleBuffer(100)))
	assert.Equal(t, maxPreallocSamples, cap(newSampleBuffer(1_000_000_000)))
	assert.Zero(t, cap(newSampleBuffer(-1)))
}
