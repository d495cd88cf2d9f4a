// Package backend runs the app on ebiten: it captures the pointer each tick,
// drives one frame and paints the recorded shapes.
package backend

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/04pril/imsweeper/internal/devtools"
	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/ui"
)

var mouseButtons = [...]struct {
	gui gui.MouseButton
	eb  ebiten.MouseButton
}{
	{gui.MouseLeft, ebiten.MouseButtonLeft},
	{gui.MouseMiddle, ebiten.MouseButtonMiddle},
	{gui.MouseRight, ebiten.MouseButtonRight},
}

// Game adapts an App to ebiten.Game.
type Game struct {
	app   *ui.App
	list  gui.DrawList
	scale int
}

func NewGame(app *ui.App, scale int) *Game {
	return &Game{app: app, scale: max(scale, 1)}
}

func captureInput() gui.InputSnapshot {
	var in gui.InputSnapshot
	in.Pointer = image.Pt(ebiten.CursorPosition())
	for _, b := range mouseButtons {
		in.Buttons[b.gui] = gui.ButtonEdges{
			Pressed:  inpututil.IsMouseButtonJustPressed(b.eb),
			Down:     ebiten.IsMouseButtonPressed(b.eb),
			Released: inpututil.IsMouseButtonJustReleased(b.eb),
		}
	}
	return in
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		devtools.DumpStderr(g.app.Game())
	}

	g.list.Reset()
	g.app.Frame(captureInput(), &g.list)

	if g.app.NewGameStarted() {
		g.resizeWindow()
	}
	if g.app.Quit() {
		log.Info().Msg("exit confirmed")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := themeFor(g.app.Dark())
	screen.Fill(th.BG)
	p := newPainter(screen, th, ui.TileSize)
	g.list.BackToFront(p.paint)
}

func (g *Game) Layout(_, _ int) (int, int) {
	sz := g.app.ScreenSize()
	return sz.X, sz.Y
}

func (g *Game) resizeWindow() {
	sz := g.app.ScreenSize()
	ebiten.SetWindowSize(sz.X*g.scale, sz.Y*g.scale)
	ebiten.SetWindowTitle(g.app.Title())
}

// Run opens the window and blocks until it closes. A confirmed exit is not
// an error.
func Run(app *ui.App, scale int) error {
	g := NewGame(app, scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	g.resizeWindow()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
