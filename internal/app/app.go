//go:build ebiten

package app

import (
	"image"
	"time"

	"glowlife/internal/render"
	"glowlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *Runner
	painter *render.GlowPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale   int
	showHUD bool

	blur         float64
	fps          int
	lastW, lastH int
}

// New constructs a Game for the provided runner. scale is the size of one
// cell in pixels.
func New(runner *Runner, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := runner.Sim().Size()
	settings := runner.Settings()
	return &Game{
		runner:  runner,
		painter: render.NewGlowPainter(settings),
		hud:     ui.NewHUD(runner, hudWidth, size.H*scale),
		overlay: ui.NewOverlay(runner.Sim(), scale),
		scale:   scale,
		blur:    settings.BlurScale,
		fps:     ebiten.TPS(),
	}
}

func (g *Game) gridSize() (int, int) {
	s := g.runner.Sim().Size()
	return s.W * g.scale, s.H * g.scale
}

// Update handles input and runs one frame of the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.updatePointer()

	gw, _ := g.gridSize()
	if g.showHUD {
		g.hud.Update(gw)
	}
	g.overlay.Update()
	g.syncSettings()

	now := time.Now()
	frame, ok := g.runner.Frame(now)
	if !ok {
		g.painter.Snap()
		return nil
	}
	g.painter.Show(frame.Layers, frame.Transition, g.runner.Settings(), now)
	return nil
}

func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	unit := float64(g.scale)
	g.runner.MovePointer(float64(mx)/unit, float64(my)/unit)

	buttons := []struct {
		mouse  ebiten.MouseButton
		button Button
	}{
		{ebiten.MouseButtonLeft, ButtonLeft},
		{ebiten.MouseButtonRight, ButtonRight},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			g.runner.PressButton(b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.runner.ReleaseButton(b.button)
		}
	}
}

// syncSettings pushes HUD edits that need ebiten-side work.
func (g *Game) syncSettings() {
	s := g.runner.Settings()
	if s.BlurScale != g.blur {
		g.blur = s.BlurScale
		g.painter.SetBlur(g.blur)
	}
	fps := int(time.Second / g.runner.Scheduler().FrameInterval())
	if fps != g.fps {
		g.fps = fps
		ebiten.SetTPS(fps)
	}
}

// Draw renders the current animation state.
func (g *Game) Draw(screen *ebiten.Image) {
	gw, gh := g.gridSize()
	board := screen.SubImage(image.Rect(0, 0, gw, gh)).(*ebiten.Image)
	g.painter.Draw(board, g.runner.Settings(), float64(g.scale), time.Now())
	g.overlay.Draw(board)
	if g.showHUD {
		g.hud.Draw(screen, gw)
	}
}

// Layout returns the logical screen size. A change in the outside size counts
// as a resize and briefly freezes the animation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.lastW != 0 && (outsideWidth != g.lastW || outsideHeight != g.lastH) {
		g.runner.Resize(time.Now())
	}
	g.lastW, g.lastH = outsideWidth, outsideHeight

	gw, gh := g.gridSize()
	if g.showHUD {
		gw += hudWidth
	}
	return gw, gh
}
