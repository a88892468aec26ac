package main

import (
	"bytes"
	"io"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soakConfig(d time.Duration, seed uint64, rate float64) config.SoakConfig {
	return config.SoakConfig{
		Duration:  d,
		Step:      10 * time.Millisecond,
		Seed:      seed,
		InputRate: rate,
	}
}

func TestSoakWithoutInputs(t *testing.T) {
	report := NewSoak(soakConfig(30*time.Second, 1, 0), log.New(io.Discard, "", 0)).Run()

	assert.Equal(t, int64(3000), report.Steps)
	assert.Equal(t, int64(3000), report.Renders)
	// One immediate refresh from Restart plus one per simulated second.
	assert.Equal(t, int64(31), report.Refreshes)
	assert.Empty(t, report.Violation)
	assert.Equal(t, "Running", report.FinalState.String())
	assert.Equal(t, int64(1), report.Engine.Restarts)
	assert.Positive(t, report.Engine.Locks)
	assert.Empty(t, report.Inputs)
}

func TestSoakLongRunStaysConsistent(t *testing.T) {
	var logs bytes.Buffer
	report := NewSoak(soakConfig(30*time.Minute, 42, 0.3), log.New(&logs, "", 0)).Run()

	require.Empty(t, report.Violation, logs.String())
	assert.NotEmpty(t, report.Inputs)

	// Every spawn follows a lock, a restart or a game-over reset.
	engine := report.Engine
	assert.Equal(t, engine.Locks+engine.Restarts+engine.Resets, engine.Spawns)

	require.Len(t, report.Scheduler.Sources, 2)
	assert.LessOrEqual(t, report.Scheduler.ActiveCount, 2)
	for _, src := range report.Scheduler.Sources {
		assert.Equal(t, uint64(src.Starts), src.Generation, src.Name)
	}
}

func TestSoakIsDeterministic(t *testing.T) {
	run := func() *Report {
		return NewSoak(soakConfig(2*time.Minute, 7, 0.5), log.New(io.Discard, "", 0)).Run()
	}
	a, b := run(), run()

	assert.Equal(t, a.Engine, b.Engine)
	assert.Equal(t, a.Inputs, b.Inputs)
	assert.Equal(t, a.Renders, b.Renders)
}

func TestPickActionCoversEveryWeight(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	seen := map[ui.Action]bool{}
	for range 10000 {
		seen[pickAction(r)] = true
	}
	for _, w := range inputWeights {
		assert.True(t, seen[w.action], w.action.String())
	}
	assert.False(t, seen[ui.None])
}

func TestReportGenerate(t *testing.T) {
	report := NewSoak(soakConfig(5*time.Second, 3, 0.5), log.New(io.Discard, "", 0)).Run()

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "# Blockfall Soak Report")
	assert.Contains(t, text, "- **Steps:** 500")
	assert.Contains(t, text, "- **Violations:** none")
	assert.Contains(t, text, "- frame: runs=")
	assert.Contains(t, text, "- display: runs=")
	assert.Contains(t, text, "- 4-row clears: ")
}
