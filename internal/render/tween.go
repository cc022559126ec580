package render

// Ease maps linear progress in [0, 1] onto a smooth in-out curve.
func Ease(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return t * t * (3 - 2*t)
}

// Tween interpolates between two layer sets of equal length. When the
// lengths differ there is nothing to pair up and to is returned as is.
func Tween(from, to []Layer, t float64) []Layer {
	if len(from) != len(to) || t >= 1 {
		return to
	}
	if t <= 0 {
		return from
	}
	out := make([]Layer, len(to))
	for i := range to {
		a, b := from[i], to[i]
		out[i] = Layer{
			Kind:   b.Kind,
			X:      lerp(a.X, b.X, t),
			Y:      lerp(a.Y, b.Y, t),
			Spread: lerp(a.Spread, b.Spread, t),
			Color:  Mix(a.Color, b.Color, t),
		}
	}
	return out
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
