package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// starburstRays is the count of primary rays; a half-weight harmonic at
// twice the frequency adds inner texture.
const starburstRays = 16

// genStarburst evaluates a radial ray field per pixel: intensity follows
// the cosine of the angle times the ray count, color blends between the
// primary and secondary palette entries, and alpha decays with distance
// from the center.
func genStarburst(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	half := float64(minInt(w, h)) / 2
	c1, c2 := pal.Primary, pal.Secondary

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			r := math.Sqrt(dx*dx + dy*dy)
			ang := math.Atan2(dy, dx)

			radial := math.Max(0, 1-r/half)
			rayF := 0.5 + 0.5*math.Cos(starburstRays*ang)
			secondary := 0.3 + 0.3*math.Cos(2*starburstRays*ang)
			t := rayF*0.7 + secondary*0.3

			col := color.NRGBA{
				R: clampByte(float64(c1.R)*t + float64(c2.R)*(1-t)),
				G: clampByte(float64(c1.G)*t + float64(c2.G)*(1-t)),
				B: clampByte(float64(c1.B)*t + float64(c2.B)*(1-t)),
				A: clampByte(radial * (rayF*0.8 + 0.2) * 255),
			}
			cv.SetPixel(x, y, col)
		}
	}
	return cv
}
