package render

import "math"

// GlowSoftness converts the blur scale into the fraction of a disc's radius
// that fades out.
func GlowSoftness(blurScale float64) float64 {
	return math.Max(0.05, math.Min(1, blurScale*2))
}

// fillGlowRGBA draws a white disc of diameter n into buf (premultiplied RGBA,
// n*n pixels). The outer softness fraction of the radius fades to transparent.
func fillGlowRGBA(buf []byte, n int, softness float64) {
	if n <= 0 {
		return
	}
	r := float64(n) / 2
	inner := r * (1 - softness)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy)
			var a float64
			switch {
			case d <= inner:
				a = 1
			case d >= r:
				a = 0
			default:
				a = 1 - Ease((d-inner)/(r-inner))
			}
			v := uint8(math.Round(a * 255))
			base := (y*n + x) * 4
			buf[base+0] = v
			buf[base+1] = v
			buf[base+2] = v
			buf[base+3] = v
		}
	}
}
