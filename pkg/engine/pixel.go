package engine

import (
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// genPixel tiles the canvas into a coarse grid and fills each cell with a
// random palette swatch and random alpha, skipping roughly a third of the
// cells so the grid itself stays visible through the holes.
func genPixel(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)

	cell := minInt(w, h) / 20
	if cell < 16 {
		cell = 16
	}
	cols := w / cell
	rows := h / cell

	swatches := []canvas.RGB{
		pal.Primary,
		pal.Secondary,
		pal.Tertiary,
		{R: 255, G: 255, B: 255},
		{R: 50, G: 50, B: 50},
	}

	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			if rng.Float64() < 0.3 {
				continue
			}
			col := swatches[rng.Intn(len(swatches))]
			a := uint8(intn(rng, 150, 255))
			cv.FillRect(float64(gx*cell), float64(gy*cell), float64(cell-1), float64(cell-1), col.WithAlpha(a))
		}
	}
	return cv
}
