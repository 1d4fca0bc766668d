package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genGeometric stacks eight randomly rotated regular polygons of shrinking
// radius and fading alpha, cycling through the palette, then caps the
// composition with a solid core circle. It is also the fallback for
// unmatched prompts.
func genGeometric(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w/2), float64(h/2)
	m := minInt(w, h)

	for i := 8; i >= 1; i-- {
		alpha := uint8(180 * i / 8)
		var col canvas.RGB
		switch i % 3 {
		case 0:
			col = pal.Primary
		case 1:
			col = pal.Secondary
		default:
			col = pal.Tertiary
		}
		r := float64(m/2) * float64(i) / 8
		ang := uniform(rng, 0, 2*math.Pi)
		sides := intn(rng, 3, 8)

		pts := make([]canvas.Point, sides)
		for j := 0; j < sides; j++ {
			a := ang + float64(j)*(2*math.Pi/float64(sides))
			pts[j] = canvas.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
		}
		cv.FillPolygon(pts, col.WithAlpha(alpha))
	}

	r2 := float64(m / 6)
	cv.FillCircle(cx, cy, r2, pal.Primary.WithAlpha(240))
	cv.FillCircle(cx, cy, r2/2, color.NRGBA{255, 255, 255, 100})
	return cv
}
