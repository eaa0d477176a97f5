package common

import "image/color"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Scale multiplies the color channels of c by t in [0, 1] and keeps alpha.
func Scale(c color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	return color.RGBA{
		R: uint8(Lerp(0, float64(c.R), t)),
		G: uint8(Lerp(0, float64(c.G), t)),
		B: uint8(Lerp(0, float64(c.B), t)),
		A: c.A,
	}
}

// Fade scales every channel of the premultiplied c, alpha included, by t.
func Fade(c color.RGBA, t float64) color.RGBA {
	f := Scale(c, t)
	f.A = uint8(Lerp(0, float64(c.A), max(0, min(1, t))))
	return f
}
