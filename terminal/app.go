// Package terminal hosts a controller in a tcell terminal: it draws the grid,
// toggles cells on mouse clicks and maps keys to the playback controls.
package terminal

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol/controller"
	"github.com/sheikhrachel/go-gol/model"
)

const helpLine = "space start/stop | n next | +/- speed | click toggle | c clear | r random | q quit"

// stopSignal asks the event loop to return
type stopSignal struct{}

// App connects a tcell screen to a controller
type App struct {
	screen   tcell.Screen
	renderer *Renderer
	ctrl     *controller.Controller
	logger   log.Interface

	rng     *rand.Rand
	density float64

	buttons tcell.ButtonMask
	notice  string
}

// NewApp wires screen input and output to ctrl. Random reseeding draws from rng
// at the given density.
func NewApp(screen tcell.Screen, ctrl *controller.Controller, rng *rand.Rand, density float64, logger log.Interface) *App {
	a := &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		ctrl:     ctrl,
		logger:   logger,
		rng:      rng,
		density:  density,
	}
	ctrl.OnTick = a.requestRedraw
	return a
}

func (a *App) requestRedraw() {
	// the queue may be full while the user is busy; the next event redraws anyway
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run processes terminal events until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(stopSignal{}))
	}()

	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return nil
		}
		if quit := a.HandleEvent(ev); quit {
			return nil
		}
		a.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether the app should quit
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		_, quit = ev.Data().(stopSignal)
		return quit
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.faster()
		return false
	case tcell.KeyDown:
		a.slower()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		a.ctrl.StartStop()
		a.notice = ""
	case 'n':
		if err := a.ctrl.Next(); err != nil {
			a.notice = "stop the simulation before stepping"
		}
	case '+', '=':
		a.faster()
	case '-', '_':
		a.slower()
	case 'c':
		a.ctrl.Clear()
	case 'r':
		if err := a.ctrl.Replace(func(g *model.Grid) error {
			g.Randomize(a.rng, a.density)
			return nil
		}); err != nil {
			a.logger.WithError(err).Error("failed to randomize grid")
		}
	}
	return false
}

func (a *App) faster() {
	a.notice = fmt.Sprintf("interval %v", a.ctrl.Faster())
}

func (a *App) slower() {
	a.notice = fmt.Sprintf("interval %v", a.ctrl.Slower())
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	var size int
	a.ctrl.View(func(g *model.Grid) { size = g.Size() })
	row, col, ok := CellAt(size, x, y)
	if !ok {
		return
	}
	if err := a.ctrl.Toggle(row, col); err != nil {
		a.logger.WithError(err).Warn("toggle rejected")
	}
}

// Draw renders the grid and the status lines
func (a *App) Draw() {
	var (
		size       int
		population int
	)
	a.ctrl.View(func(g *model.Grid) {
		size = g.Size()
		population = g.CountLivingCells()
		a.renderer.Display(g)
	})

	state := "stopped"
	if a.ctrl.Running() {
		state = "running"
	}
	stats := a.ctrl.Stats()
	a.renderer.Text(size, fmt.Sprintf("Gen: %d | Living: %d | Status: %s | %s every %v | %.1f gen/sec | Runtime: %.1fs",
		a.ctrl.Generation(), population, a.ctrl.Status(), state, a.ctrl.Interval(),
		stats.GenerationsPerSecond, time.Since(stats.StartTime).Seconds()))
	a.renderer.Text(size+1, helpLine)
	a.renderer.Text(size+2, a.notice)
	a.renderer.Show()
}
