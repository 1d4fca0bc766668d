package engine

import (
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genTextArt typesets the prompt itself: the first word large with a drop
// shadow, the remaining words as a subtitle, over a soft horizontal band
// of the primary color with a divider rule.
func genTextArt(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	fw, fh := float64(w), float64(h)
	m := float64(minInt(w, h))

	for y := 0; y < h; y++ {
		t := float64(y) / fh
		a := uint8(40 * (1 - math.Abs(t-0.5)*2))
		cv.Line(0, float64(y), fw, float64(y), pal.Primary.WithAlpha(a), 1)
	}

	words := strings.Fields(cfg.Prompt)
	main := "AI"
	if len(words) > 0 {
		main = strings.ToUpper(words[0])
	}
	bigSize := m / 3

	cv.Text(main, fw/2-fw/4+4, fh/2-fh/5+4, bigSize, color.NRGBA{0, 0, 0, 100})
	cv.Text(main, fw/2-fw/4, fh/2-fh/5, bigSize, pal.Primary.WithAlpha(240))

	if len(words) > 1 {
		sub := strings.ToUpper(strings.Join(words[1:], " "))
		cv.Text(sub, fw/2-fw/5, fh/2+fh/8, m/10, pal.Secondary.WithAlpha(180))
	}

	cv.Line(fw/8, fh/2+5, 7*fw/8, fh/2+5, pal.Secondary.WithAlpha(120), 2)
	return cv
}
