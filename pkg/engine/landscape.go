package engine

import (
	"image/color"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genLandscape paints a scene in horizontal thirds: a gradient sky that
// fades toward the horizon, three randomly placed mountain triangles, a
// ground plane, and a two-ring sun in the upper left.
func genLandscape(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	c1, c2, c3 := pal.Primary, pal.Secondary, pal.Tertiary
	fw := float64(w)

	sky := canvas.New(w, h)
	for y := 0; y < h/2; y++ {
		t := float64(y) / float64(h/2)
		col := c1.Lerp(c2, t)
		a := uint8(220 * (1 - t*0.3))
		sky.Line(0, float64(y), fw, float64(y), col.WithAlpha(a), 1)
	}
	cv.Composite(sky)

	horizon := float64(h/2 + 20)
	for i := 0; i < 3; i++ {
		peakX := float64(intn(rng, w/4, 3*w/4))
		peakY := float64(intn(rng, h/4, h/2))
		baseW := float64(intn(rng, w/3, 2*w/3))
		pts := []canvas.Point{
			{X: peakX - baseW/2, Y: horizon},
			{X: peakX, Y: peakY},
			{X: peakX + baseW/2, Y: horizon},
		}
		cv.FillPolygon(pts, c3.WithAlpha(uint8(180-i*30)))
	}

	cv.FillRect(0, float64(h/2), fw, float64(h-h/2), c3.WithAlpha(180))

	sx, sy := float64(w/5), float64(h/5)
	cv.FillCircle(sx, sy, 40, color.NRGBA{255, 230, 100, 230})
	cv.FillCircle(sx, sy, 20, color.NRGBA{255, 255, 200, 255})
	return cv
}
