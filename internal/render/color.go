package render

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a CSS color: channels in [0, 255], alpha in [0, 1]. In settings
// files it is written as an array, [r, g, b] or [r, g, b, a].
type RGBA struct {
	R, G, B float64
	A       float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// Mix blends a towards b by amt (0 keeps a, 1 yields b).
func Mix(a, b RGBA, amt float64) RGBA {
	m := a.colorful().BlendRgb(b.colorful(), amt)
	return RGBA{
		R: m.R * 255,
		G: m.G * 255,
		B: m.B * 255,
		A: a.A + amt*(b.A-a.A),
	}
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// String formats the color the way CSS expects it.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", channel(c.R), channel(c.G), channel(c.B), c.A)
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// NRGBA converts to a non-premultiplied image color.
func (c RGBA) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, c.A))
	return color.NRGBA{
		R: uint8(channel(c.R)),
		G: uint8(channel(c.G)),
		B: uint8(channel(c.B)),
		A: uint8(math.Round(a * 255)),
	}
}

// MarshalJSON writes the color as [r, g, b, a].
func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{c.R, c.G, c.B, c.A})
}

// UnmarshalJSON accepts [r, g, b] (opaque) or [r, g, b, a].
func (c *RGBA) UnmarshalJSON(data []byte) error {
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch len(parts) {
	case 3:
		*c = RGBA{R: parts[0], G: parts[1], B: parts[2], A: 1}
	case 4:
		*c = RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	default:
		return fmt.Errorf("color: want 3 or 4 components, got %d", len(parts))
	}
	return nil
}
