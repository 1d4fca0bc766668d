package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genWave superimposes three sine waves with randomized frequency, phase,
// and amplitude, maps the field onto a primary/secondary color blend with
// alpha banded around the vertical center, and softens the result with a
// light blur.
func genWave(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	c1, c2 := pal.Primary, pal.Secondary

	type wave struct{ freq, phase, amp float64 }
	waves := make([]wave, 3)
	for i := range waves {
		waves[i] = wave{
			freq:  uniform(rng, 0.01, 0.04),
			phase: uniform(rng, 0, 2*math.Pi),
			amp:   uniform(rng, 0.3, 0.7),
		}
	}

	for y := 0; y < h; y++ {
		band := math.Max(0, 1-math.Abs(float64(y)/float64(h)-0.5)*1.5)
		for x := 0; x < w; x++ {
			val := 0.0
			for _, wv := range waves {
				val += wv.amp * math.Sin(wv.freq*float64(x)*2*math.Pi+wv.phase+float64(y)*0.01)
			}
			t := math.Max(0, math.Min(1, (val+1.5)/3))

			col := color.NRGBA{
				R: clampByte(float64(c1.R)*t + float64(c2.R)*(1-t)),
				G: clampByte(float64(c1.G)*t + float64(c2.G)*(1-t)),
				B: clampByte(float64(c1.B)*t + float64(c2.B)*(1-t)),
				A: clampByte(255 * (0.4 + 0.6*t) * band),
			}
			cv.SetPixel(x, y, col)
		}
	}

	cv.Blur(1)
	return cv
}
