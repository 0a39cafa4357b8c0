//go:build ebiten

package gui

import (
	"math/rand/v2"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-gol/controller"
	"github.com/sheikhrachel/go-gol/model"
)

// Game adapts a controller to the ebiten.Game interface
type Game struct {
	ctrl   *controller.Controller
	layout Layout
	logger log.Interface

	rng     *rand.Rand
	density float64

	canvas *ebiten.Image
	pixels []byte
}

// New constructs a Game drawing ctrl's grid with cellPixels per cell
func New(ctrl *controller.Controller, cellPixels int, rng *rand.Rand, density float64, logger log.Interface) *Game {
	var size int
	ctrl.View(func(g *model.Grid) { size = g.Size() })
	layout := Layout{Size: size, CellPixels: cellPixels}
	return &Game{
		ctrl:    ctrl,
		layout:  layout,
		logger:  logger,
		rng:     rng,
		density: density,
		canvas:  ebiten.NewImage(layout.Canvas(), layout.Canvas()),
		pixels:  make([]byte, layout.Canvas()*layout.Canvas()*4),
	}
}

// Canvas returns the window size in pixels
func (g *Game) Canvas() int {
	return g.layout.Canvas()
}

// Update handles input once per frame; stepping happens on the controller's own timer
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.StartStop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.ctrl.Next(); err != nil {
			g.logger.WithError(err).Debug("next ignored")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ctrl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ctrl.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.Replace(func(grid *model.Grid) error {
			grid.Randomize(g.rng, g.density)
			return nil
		}); err != nil {
			g.logger.WithError(err).Error("failed to randomize grid")
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.layout.CellAt(ebiten.CursorPosition()); ok {
			if err := g.ctrl.Toggle(row, col); err != nil {
				g.logger.WithError(err).Warn("toggle rejected")
			}
		}
	}
	return nil
}

// Draw renders the current generation
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.View(func(grid *model.Grid) { g.layout.Fill(g.pixels, grid) })
	g.canvas.WritePixels(g.pixels)
	screen.DrawImage(g.canvas, nil)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Canvas(), g.layout.Canvas()
}
