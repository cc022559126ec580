//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"glowlife/internal/core"
	"glowlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type snapshotProvider interface {
	Snapshot() life.Grid
}

// Overlay draws optional debugging visuals on top of the glow: the neighbor
// count of every live cell and an outline around the cell under the cursor.
type Overlay struct {
	sim        core.Sim
	scale      int
	showCounts bool
	showCursor bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCounts = !o.showCounts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay onto the board image.
func (o *Overlay) Draw(board *ebiten.Image) {
	if o.showCounts {
		if provider, ok := o.sim.(snapshotProvider); ok {
			o.drawCounts(board, provider.Snapshot())
		}
	}
	if o.showCursor {
		o.drawCursor(board)
	}
}

func (o *Overlay) drawCounts(board *ebiten.Image, g life.Grid) {
	face := basicfont.Face7x13
	size := g.Size()
	clr := color.RGBA{R: 240, G: 240, B: 250, A: 255}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			cell, _ := g.At(x, y)
			if !cell.Alive {
				continue
			}
			label := strconv.Itoa(cell.Count)
			bounds := text.BoundString(face, label)
			px := x*o.scale + (o.scale-bounds.Dx())/2
			py := y*o.scale + (o.scale+bounds.Dy())/2
			text.Draw(board, label, face, px, py, clr)
		}
	}
}

func (o *Overlay) drawCursor(board *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	cx, cy := mx/o.scale, my/o.scale
	if mx < 0 || my < 0 || !size.Contains(cx, cy) {
		return
	}
	s := float32(o.scale)
	vector.StrokeRect(board, float32(cx)*s, float32(cy)*s, s, s, 1, color.RGBA{R: 255, G: 80, B: 40, A: 255}, false)
}
