package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

const frameInterval = 16 * time.Millisecond

type App struct {
	screen     tcell.Screen
	view       *View
	controller *tetris.Controller
	tone       *Tone
	logger     *log.Logger
}

func NewApp(screen tcell.Screen, cfg *config.Config, logger *log.Logger) *App {
	app := &App{
		screen: screen,
		view:   NewView(screen),
		logger: logger,
	}

	if cfg.Sound {
		tone, err := NewTone()
		if err != nil {
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			app.tone = tone
		}
	}

	engine := tetris.NewGame(
		tetris.WithLogger(logger),
		tetris.WithHooks(tetris.Hooks{
			LinesCleared: app.linesCleared,
		}),
	)
	app.controller = tetris.NewController(engine, clock.NewScheduler(clock.System{}), app.view, app.view)
	return app
}

func (a *App) linesCleared(n int) {
	a.logger.Printf("cleared %d rows", n)
	if a.tone != nil {
		a.tone.Play(n)
	}
}

// handleInput applies one terminal event and reports whether to keep going.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		action := ui.ActionForKey(ui.DefaultBindings, keyLabel(ev))
		if action == ui.Quit {
			return false
		}
		ui.Apply(a.controller, action)
		a.view.SetState(a.controller.Game().State())

	case *tcell.EventResize:
		a.screen.Sync()
		a.view.Redraw()
	}
	return true
}

func keyLabel(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func (a *App) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.view.Redraw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.controller.Scheduler().Advance()
		}
	}
}

func (a *App) cleanup() {
	if a.tone != nil {
		a.tone.Close()
	}
	a.screen.Fini()
	a.logger.Printf("quit after %s", a.controller.Game().Elapsed().Truncate(time.Second))
}

func main() {
	cfg := config.Load()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.New(logFile, "blockfall-term: ", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app := NewApp(screen, cfg, logger)
	defer app.cleanup()

	app.run()
}
