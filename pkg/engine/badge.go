package engine

import (
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genBadge renders an emblem: a translucent rounded plate with an outline
// and gloss strip, a ten-point star icon, and the first words of the
// prompt as an uppercase caption.
func genBadge(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	pad := float64(w / 8)
	cx, cy := float64(w/2), float64(h/2)
	fw, fh := float64(w), float64(h)

	cv.FillRoundedRect(pad, pad, fw-2*pad, fh-2*pad, fw/8, pal.Primary.WithAlpha(50))
	cv.StrokeRoundedRect(pad, pad, fw-2*pad, fh-2*pad, fw/8, pal.Secondary.WithAlpha(160), 3)
	cv.FillRoundedRect(pad+10, pad+10, fw-2*pad-20, fh/6-10, fw/12, color.NRGBA{255, 255, 255, 35})

	// Ten vertices alternating outer and inner radius make the star.
	star := make([]canvas.Point, 10)
	for i := 0; i < 10; i++ {
		ang := float64(i*36-90) * math.Pi / 180
		r := fw / 5
		if i%2 == 1 {
			r = fw / 10
		}
		star[i] = canvas.Point{X: cx + r*math.Cos(ang), Y: cy + r*math.Sin(ang)}
	}
	cv.FillPolygon(star, pal.Primary.WithAlpha(230))
	cv.StrokePolygon(star, color.NRGBA{255, 255, 220, 200}, 2)

	words := strings.Fields(cfg.Prompt)
	if len(words) > 3 {
		words = words[:3]
	}
	label := strings.ToUpper(strings.Join(words, " "))
	size := math.Max(14, fw/16)
	cv.Text(label, cx-fw/4, fh-fh/5, size, color.NRGBA{255, 255, 255, 200})
	return cv
}
