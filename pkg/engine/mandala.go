package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

const (
	mandalaSymmetry = 8
	mandalaLayers   = 6
)

// genMandala draws six concentric petal rings, outermost first. Each ring
// places dots of randomized size on a circle and connects spokes at the
// symmetry angles, cycling the palette per layer.
func genMandala(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w/2), float64(h/2)
	m := minInt(w, h)

	for layer := mandalaLayers; layer >= 1; layer-- {
		r := float64(m/2-10) * float64(layer) / mandalaLayers
		alpha := uint8(200 * layer / mandalaLayers)
		var col canvas.RGB
		switch layer % 3 {
		case 0:
			col = pal.Primary
		case 1:
			col = pal.Secondary
		default:
			col = pal.Tertiary
		}
		petals := mandalaSymmetry * (layer%3 + 2)

		for i := 0; i < petals; i++ {
			ang := float64(i) * (2 * math.Pi / float64(petals))
			px := cx + r*math.Cos(ang)
			py := cy + r*math.Sin(ang)
			pr := math.Max(5, r*uniform(rng, 0.08, 0.2))
			cv.FillCircle(px, py, pr, col.WithAlpha(alpha))
		}

		for deg := 0; deg < 360; deg += 360 / mandalaSymmetry {
			ang := float64(deg) * math.Pi / 180
			cv.Line(
				cx+(r-10)*math.Cos(ang), cy+(r-10)*math.Sin(ang),
				cx+r*math.Cos(ang), cy+r*math.Sin(ang),
				col.WithAlpha(alpha/2), 2)
		}
	}

	r0 := float64(m / 10)
	cv.FillCircle(cx, cy, r0, pal.Primary.WithAlpha(255))
	cv.FillCircle(cx, cy, r0/2, color.NRGBA{255, 255, 255, 180})
	return cv
}
