package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// glowSource is one light emitter: a position, a color, and a falloff
// radius.
type glowSource struct {
	x, y float64
	col  canvas.RGB
	maxR int
}

// genGlow layers a central emitter and three randomly placed secondary
// emitters. Each emitter is rendered as concentric rings on its own layer,
// Gaussian-blurred, and composited, so the halos overlap additively.
func genGlow(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w/2), float64(h/2)
	m := minInt(w, h)

	sources := []glowSource{{x: cx, y: cy, col: pal.Primary, maxR: m / 3}}
	for i := 0; i < 3; i++ {
		x := float64(intn(rng, w/4, 3*w/4))
		y := float64(intn(rng, h/4, 3*h/4))
		col := pal.Secondary
		if rng.Float64() <= 0.5 {
			col = pal.Tertiary
		}
		sources = append(sources, glowSource{x: x, y: y, col: col, maxR: intn(rng, w/8, w/4)})
	}

	for _, src := range sources {
		layer := canvas.New(w, h)
		for r := src.maxR; r > 0; r -= 3 {
			a := uint8(120 * math.Pow(1-float64(r)/float64(src.maxR), 1.5))
			layer.FillCircle(src.x, src.y, float64(r), src.col.WithAlpha(a))
		}
		layer.Blur(15)
		cv.Composite(layer)
	}

	cv.FillCircle(cx, cy, float64(m/12), color.NRGBA{255, 255, 255, 220})
	return cv
}
