package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genPortrait builds an abstract bust: a heavily blurred elliptical aura,
// a head and shoulder silhouette in the secondary color, eye marks, and a
// forehead highlight.
func genPortrait(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w/2), float64(h/2)
	m := minInt(w, h)
	fh := float64(h)
	fw := float64(w)

	aura := canvas.New(w, h)
	half := float64(m / 2)
	for r := m / 2; r > 0; r -= 4 {
		fr := float64(r)
		a := uint8(80 * math.Sqrt(1-fr/half))
		aura.FillEllipse(cx, cy, fr, fr/2+fh/8, pal.Primary.WithAlpha(a))
	}
	aura.Blur(30)
	cv.Composite(aura)

	headR := float64(m / 5)
	headY := cy - fh/8
	cv.FillCircle(cx, headY, headR, pal.Secondary.WithAlpha(230))

	// Shoulders: wide ellipse hanging from the chin line.
	sw := fw / 2
	sh := fh / 6
	cv.FillEllipse(cx, headY+headR+sh, sw, sh, pal.Secondary.WithAlpha(200))

	eyeR := headR / 5
	for _, ex := range []float64{cx - headR/3, cx + headR/3} {
		cv.FillEllipse(ex, headY, eyeR, eyeR/2, color.NRGBA{255, 255, 255, 200})
	}
	cv.FillEllipse(cx, headY-3*headR/8, headR/4, headR/8, color.NRGBA{255, 255, 255, 60})

	return cv
}
