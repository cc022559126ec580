package render

import (
	"glowlife/internal/core"
)

// LayerKind identifies what a shadow layer depicts.
type LayerKind uint8

const (
	LayerWobble LayerKind = iota
	LayerNucleus
	LayerDead
	LayerBackground
)

// Layer is one box-shadow entry. X and Y are offsets from the pen element in
// cell units, Spread is the spread radius in cell units.
type Layer struct {
	Kind   LayerKind
	X, Y   float64
	Spread float64
	Color  RGBA
}

// Rand supplies the per-frame jitter.
type Rand interface {
	Float64() float64
}

// Layers turns a generation into shadow layers, one or two per cell in index
// order followed by the background. The count only depends on the grid size
// and RenderNucleus so that consecutive frames line up entry by entry.
func Layers(size core.Size, cells []uint8, s Settings, rng Rand) []Layer {
	per := 1
	if s.RenderNucleus {
		per = 2
	}
	out := make([]Layer, 0, per*size.Area()+1)
	wobble := s.cellColor()
	for i := 0; i < size.Area(); i++ {
		cx, cy := size.Coords(i)
		vx := float64(cx) + s.ShiftX
		vy := float64(cy) + s.ShiftY

		// All four draws happen for every cell, dead or alive.
		spread := rng.Float64() * s.RndScale
		xw := vx + (rng.Float64()-0.5)*s.RndScale
		yw := vy + (rng.Float64()-0.5)*s.RndScale
		deadRadius := rng.Float64() - 0.5

		if i < len(cells) && cells[i] != 0 {
			if s.RenderNucleus {
				out = append(out, Layer{Kind: LayerNucleus, X: xw, Y: yw, Spread: -0.1, Color: s.NucleusColor})
			}
			out = append(out, Layer{Kind: LayerWobble, X: xw, Y: yw, Spread: spread, Color: wobble})
			continue
		}
		if s.RenderNucleus {
			out = append(out, Layer{Kind: LayerDead, X: vx, Y: vy, Spread: -1, Color: Transparent})
		}
		out = append(out, Layer{Kind: LayerDead, X: vx, Y: vy, Spread: deadRadius, Color: Transparent})
	}

	side := max(size.W, size.H)
	out = append(out, Layer{
		Kind:   LayerBackground,
		X:      float64(size.W)/2 + s.ShiftX,
		Y:      float64(size.H)/2 + s.ShiftY,
		Spread: float64(side * 10),
		Color:  s.backgroundColor(),
	})
	return out
}
