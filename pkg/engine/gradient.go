package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genGradient blends the three palette colors across both axes per pixel,
// fades alpha radially toward the corners, then composites concentric glow
// rings over the center.
func genGradient(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	c1, c2, c3 := pal.Primary, pal.Secondary, pal.Tertiary

	for y := 0; y < h; y++ {
		s := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			t := float64(x) / float64(w)
			r := clampByte(float64(c1.R)*(1-t) + float64(c2.R)*t*(1-s) + float64(c3.R)*s*t)
			g := clampByte(float64(c1.G)*(1-t) + float64(c2.G)*t*(1-s) + float64(c3.G)*s*t)
			b := clampByte(float64(c1.B)*(1-t) + float64(c2.B)*t*(1-s) + float64(c3.B)*s*t)

			dx := math.Abs(float64(x)-float64(w)/2) / (float64(w) / 2)
			dy := math.Abs(float64(y)-float64(h)/2) / (float64(h) / 2)
			a := clampByte(255 * math.Max(0, 1-math.Sqrt(dx*dx+dy*dy)*0.6))
			cv.SetPixel(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	overlay := canvas.New(w, h)
	cx, cy := float64(w/2), float64(h/2)
	maxR := minInt(w, h) / 3
	for r := maxR; r > 0; r -= 5 {
		a := uint8(60 * (1 - float64(r)/float64(maxR)))
		overlay.FillCircle(cx, cy, float64(r), c2.WithAlpha(a))
	}
	cv.Composite(overlay)
	return cv
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
