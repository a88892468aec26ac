package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

// Input actions and their relative weights. Lifecycle actions are rare so
// most of the run is actual play.
var inputWeights = []struct {
	action ui.Action
	weight int
}{
	{ui.MoveLeft, 300},
	{ui.MoveRight, 300},
	{ui.Rotate, 250},
	{ui.SoftDrop, 200},
	{ui.Stop, 3},
	{ui.Start, 6},
	{ui.Restart, 1},
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func pickAction(r *rand.Rand) ui.Action {
	total := 0
	for _, w := range inputWeights {
		total += w.weight
	}
	n := r.IntN(total)
	for _, w := range inputWeights {
		if n < w.weight {
			return w.action
		}
		n -= w.weight
	}
	return ui.None
}

// Soak plays one simulated game on a manual clock.
type Soak struct {
	cfg    config.SoakConfig
	logger *log.Logger

	clk        *clock.Manual
	controller *tetris.Controller
	inputs     *rand.Rand

	renders   int64
	refreshes int64
	violation string
}

func NewSoak(cfg config.SoakConfig, logger *log.Logger) *Soak {
	s := &Soak{
		cfg:    cfg,
		logger: logger,
		clk:    clock.NewManual(epoch),
		inputs: rand.New(rand.NewPCG(cfg.Seed, 1)),
	}

	game := tetris.NewGame(
		tetris.WithRand(rand.New(rand.NewPCG(cfg.Seed, 2))),
		tetris.WithLogger(logger),
	)
	s.controller = tetris.NewController(
		game,
		clock.NewScheduler(s.clk),
		tetris.RendererFunc(s.render),
		tetris.TimerDisplayFunc(func(time.Duration) { s.refreshes++ }),
	)
	return s
}

// render checks that the frame it is handed is consistent.
func (s *Soak) render(snap tetris.Snapshot) {
	s.renders++
	if s.violation != "" {
		return
	}

	switch {
	case snap.State != tetris.Running:
		s.violation = "frame rendered while " + snap.State.String()
	case s.controller.Game().Board().Collides(snap.Piece.Position.X, snap.Piece.Position.Y, snap.Piece.Shape):
		s.violation = "active piece overlaps the board"
	}
	if s.violation != "" {
		s.logger.Printf("violation at %s: %s", s.clk.Now().Sub(epoch), s.violation)
	}
}

// Run advances the clock in cfg.Step increments until cfg.Duration of
// simulated time has passed, feeding random inputs along the way.
func (s *Soak) Run() *Report {
	report := &Report{
		Duration:  s.cfg.Duration,
		Step:      s.cfg.Step,
		Seed:      s.cfg.Seed,
		InputRate: s.cfg.InputRate,
		Inputs:    make(map[string]int64),
	}

	scheduler := s.controller.Scheduler()
	s.controller.Start()

	wallStart := time.Now()
	end := epoch.Add(s.cfg.Duration)
	for s.clk.Now().Before(end) {
		if s.inputs.Float64() < s.cfg.InputRate {
			action := pickAction(s.inputs)
			ui.Apply(s.controller, action)
			report.Inputs[action.String()]++
		}

		s.clk.Advance(s.cfg.Step)
		scheduler.Advance()
		report.Steps++
	}

	report.WallTime = time.Since(wallStart)
	report.Renders = s.renders
	report.Refreshes = s.refreshes
	report.Violation = s.violation
	report.Engine = s.controller.Game().Stats()
	report.Scheduler = scheduler.GetStats()
	report.FinalState = s.controller.Game().State()
	return report
}
