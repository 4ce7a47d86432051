// Package terminal hosts a single hot-seat board on a character screen.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/connect4-engine/internal/driver"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/rs/zerolog"
)

const frameInterval = time.Second / 60

// App owns the screen, the controller and its presenter. Everything except
// event polling runs on the goroutine that called Run.
type App struct {
	screen     tcell.Screen
	controller *game.Controller
	presenter  *Presenter
	driver     driver.Driver
	interval   time.Duration
	log        zerolog.Logger
}

// NewApp wires a controller to the screen. drv may be nil, in which case
// only the keyboard plays.
func NewApp(screen tcell.Screen, drv driver.Driver, interval time.Duration, logger zerolog.Logger) *App {
	log := logger.With().Str("component", "terminal").Logger()
	presenter := NewPresenter()
	return &App{
		screen:     screen,
		controller: game.NewController(presenter, log),
		presenter:  presenter,
		driver:     drv,
		interval:   interval,
		log:        log,
	}
}

// Run draws and handles input until ctx is done or the player quits.
// The screen must already be initialised; Run does not Fini it.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	var moves <-chan time.Time
	if a.driver != nil && a.interval > 0 {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		moves = ticker.C
	}

	a.draw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
			a.draw()

		case now := <-frames.C:
			if a.presenter.Animating() {
				a.presenter.Step(now.Sub(last).Seconds())
				a.draw()
			}
			last = now

		case <-moves:
			if err := a.driverMove(); err != nil {
				a.log.Error().Err(err).Msg("driver failed, handing control back to the keyboard")
				moves = nil
			}
			a.draw()
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q' || r == 'Q':
				return false
			case r == 'r' || r == 'R':
				a.controller.Restart()
			case r >= '1' && r <= '9':
				a.play(int(r - '1'))
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) play(column int) {
	outcome, err := a.controller.Play(column)
	if err != nil {
		return
	}
	a.log.Debug().Int("column", column).Stringer("outcome", outcome).Msg("play")
}

func (a *App) driverMove() error {
	snap := a.controller.Snapshot()
	column, err := a.driver.NextColumn(snap.Board, snap.Turn)
	if err != nil {
		return err
	}
	a.play(column)
	return nil
}

func (a *App) draw() {
	render(a.screen, a.controller.Snapshot(), a.presenter)
}
