//go:build ebiten

package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const glowSpriteSize = 64

// PageColor is what sits behind every shadow.
var PageColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// GlowPainter paints shadow layers as soft discs and eases between the layer
// sets it is shown, the way a browser runs a box-shadow transition.
type GlowPainter struct {
	sprite *ebiten.Image
	n      int

	from, to []Layer
	start    time.Time
	duration time.Duration
}

// NewGlowPainter allocates the disc sprite for the given settings.
func NewGlowPainter(s Settings) *GlowPainter {
	p := &GlowPainter{n: glowSpriteSize}
	p.sprite = ebiten.NewImage(p.n, p.n)
	p.SetBlur(s.BlurScale)
	return p
}

// SetBlur redraws the sprite for a new blur scale.
func (p *GlowPainter) SetBlur(blurScale float64) {
	buf := make([]byte, 4*p.n*p.n)
	fillGlowRGBA(buf, p.n, GlowSoftness(blurScale))
	p.sprite.WritePixels(buf)
}

// Show starts a transition from whatever is on screen at now to layers.
func (p *GlowPainter) Show(layers []Layer, t Transition, s Settings, now time.Time) {
	p.from = p.current(now)
	p.to = layers
	p.start = now
	p.duration = t.Duration(s)
}

// Snap ends any running transition.
func (p *GlowPainter) Snap() {
	p.from = p.to
	p.duration = 0
}

func (p *GlowPainter) current(now time.Time) []Layer {
	if p.duration <= 0 || p.from == nil {
		return p.to
	}
	progress := float64(now.Sub(p.start)) / float64(p.duration)
	return Tween(p.from, p.to, Ease(progress))
}

// Draw paints the layers onto dst. unitPx is the size of one cell in pixels.
// Earlier layers stack on top of later ones, as in CSS.
func (p *GlowPainter) Draw(dst *ebiten.Image, s Settings, unitPx float64, now time.Time) {
	dst.Fill(PageColor)
	layers := p.current(now)
	bounds := dst.Bounds()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l.Color.A <= 0 {
			continue
		}
		if l.Kind == LayerBackground {
			vector.DrawFilledRect(dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), l.Color.NRGBA(), false)
			continue
		}
		radius := 0.5 + l.Spread
		if radius <= 0 {
			continue
		}
		d := 2 * (radius + s.BlurScale) * unitPx
		cx := (l.X - s.ShiftX + 0.5) * unitPx
		cy := (l.Y - s.ShiftY + 0.5) * unitPx

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d/float64(p.n), d/float64(p.n))
		op.GeoM.Translate(cx-d/2, cy-d/2)
		op.ColorScale.ScaleWithColor(l.Color.NRGBA())
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(p.sprite, op)
	}
}
