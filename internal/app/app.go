//go:build ebiten

package app

import (
	"time"

	"torlife/internal/core"
	"torlife/internal/engine"
	"torlife/internal/render"
	"torlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// intervalStep is how much [ and ] change the tick interval per press.
const intervalStep = 25 * time.Millisecond

// Game adapts a simulation session to the ebiten.Game interface: it drains
// the session's frame stream, maps input to session calls, and paints the
// latest frame.
type Game struct {
	session *engine.Session
	painter *render.GridPainter
	hud     *ui.HUD

	frame      engine.Frame
	population int
}

// New constructs a Game for the provided session.
func New(session *engine.Session) *Game {
	return &Game{session: session, hud: ui.NewHUD()}
}

// Update handles per-frame input and pulls the newest simulation frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Play(!g.session.Playing())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Randomize(time.Now().UnixNano(), 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.adjustInterval(-intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.adjustInterval(intervalStep)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleCellUnderCursor()
	}

	g.hud.Update()
	g.drainFrames()
	return nil
}

// Draw renders the latest frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	if f.Width == 0 || f.Height == 0 {
		return
	}
	if g.painter == nil {
		g.painter = render.NewGridPainter(f.Width, f.Height)
	} else if w, h := g.painter.Size(); w != f.Width || h != f.Height {
		g.painter = render.NewGridPainter(f.Width, f.Height)
	}

	cfg := g.session.Config()
	g.painter.Blit(screen, f.Status, cfg.AliveColor, cfg.DeadColor, cfg.CellSize)
	g.hud.Draw(screen, ui.Stats{
		Generation: f.Generation,
		Population: g.population,
		Interval:   cfg.Interval,
		Playing:    g.session.Playing(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.Width * cfg.CellSize, cfg.Height * cfg.CellSize
}

func (g *Game) drainFrames() {
	for {
		select {
		case f := <-g.session.Frames():
			g.frame = f
			g.population = 0
			for _, alive := range f.Status {
				if alive {
					g.population++
				}
			}
		default:
			return
		}
	}
}

func (g *Game) toggleCellUnderCursor() {
	f := g.frame
	if f.Width == 0 || f.Height == 0 {
		return
	}
	cfg := g.session.Config()
	size := cfg.CellSize
	if size <= 0 {
		size = 1
	}
	x, y := ebiten.CursorPosition()
	col := x / size
	row := y / size
	if col < 0 || col >= f.Width || row < 0 || row >= f.Height {
		return
	}
	index := row*f.Width + col
	g.session.SetCell(index, !f.Status[index])
}

func (g *Game) adjustInterval(delta time.Duration) {
	cfg := g.session.Config()
	next := cfg.Interval + delta
	if next < core.MinInterval {
		next = core.MinInterval
	}
	if next > core.MaxInterval {
		next = core.MaxInterval
	}
	cfg.Interval = next
	g.session.Configure(cfg)
}
