package engine

import (
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// flowerSpecies fixes the botanical parameters a prompt keyword selects:
// petal count, layer count, petal height ratio, and a species palette that
// overrides the prompt palette.
type flowerSpecies struct {
	keywords   []string
	petals     int
	layers     int
	petalRatio float64
	pal        canvas.Palette
}

// Matched top to bottom, first keyword hit wins.
var flowerSpeciesTable = []flowerSpecies{
	{
		keywords: []string{"mawar", "rose", "red"},
		petals:   5, layers: 4, petalRatio: 0.45,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 200, G: 30, B: 50},
			Secondary: canvas.RGB{R: 240, G: 80, B: 100},
			Tertiary:  canvas.RGB{R: 255, G: 160, B: 140},
		},
	},
	{
		keywords: []string{"sakura", "cherry", "pink"},
		petals:   5, layers: 3, petalRatio: 0.38,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 255, G: 160, B: 180},
			Secondary: canvas.RGB{R: 255, G: 200, B: 210},
			Tertiary:  canvas.RGB{R: 255, G: 230, B: 235},
		},
	},
	{
		keywords: []string{"lotus", "teratai"},
		petals:   8, layers: 4, petalRatio: 0.42,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 220, G: 100, B: 160},
			Secondary: canvas.RGB{R: 240, G: 150, B: 190},
			Tertiary:  canvas.RGB{R: 255, G: 220, B: 230},
		},
	},
	{
		keywords: []string{"matahari", "sunflower", "yellow"},
		petals:   13, layers: 2, petalRatio: 0.50,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 255, G: 200, B: 20},
			Secondary: canvas.RGB{R: 255, G: 220, B: 60},
			Tertiary:  canvas.RGB{R: 200, G: 130, B: 20},
		},
	},
	{
		keywords: []string{"dahlia"},
		petals:   12, layers: 5, petalRatio: 0.35,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 180, G: 40, B: 120},
			Secondary: canvas.RGB{R: 220, G: 80, B: 160},
			Tertiary:  canvas.RGB{R: 255, G: 140, B: 200},
		},
	},
	{
		keywords: []string{"tulip"},
		petals:   6, layers: 2, petalRatio: 0.50,
		pal: canvas.Palette{
			Primary:   canvas.RGB{R: 200, G: 50, B: 80},
			Secondary: canvas.RGB{R: 240, G: 100, B: 120},
			Tertiary:  canvas.RGB{R: 255, G: 200, B: 180},
		},
	},
}

// speciesFor resolves the flower character from the prompt. Unknown
// prompts get randomized generic parameters and keep the prompt palette.
func speciesFor(prompt string, pal canvas.Palette, rng *rand.Rand) flowerSpecies {
	p := strings.ToLower(prompt)
	for _, sp := range flowerSpeciesTable {
		for _, kw := range sp.keywords {
			if strings.Contains(p, kw) {
				return sp
			}
		}
	}
	return flowerSpecies{
		petals:     intn(rng, 5, 9),
		layers:     intn(rng, 3, 5),
		petalRatio: uniform(rng, 0.38, 0.50),
		pal:        pal,
	}
}

// genFlower renders a blossom in four passes: a blurred aura halo, petal
// rings from the outer layer inward with alternate layers rotated a half
// step, the stamen with its pollen dots, and a soft gloss highlight. Every
// petal is a 24-point teardrop polygon rotated to its ring angle, with a
// faint vein line from base to tip.
func genFlower(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)
	cx, cy := float64(w)/2, float64(h)/2

	sp := speciesFor(cfg.Prompt, pal, rng)
	c1, c2, c3 := sp.pal.Primary, sp.pal.Secondary, sp.pal.Tertiary
	maxR := float64(minInt(w, h)) * 0.46

	// Aura halo behind the blossom.
	aura := canvas.New(w, h)
	auraR := maxR * 0.9
	for r := int(auraR); r > 0; r -= 6 {
		t := float64(r) / auraR
		a := uint8(45 * math.Pow(1-t, 1.8))
		aura.FillCircle(cx, cy, float64(r), c2.WithAlpha(a))
	}
	aura.Blur(maxR * 0.12)
	cv.Composite(aura)

	// Petal rings, outermost first.
	for layerIdx := 0; layerIdx < sp.layers; layerIdx++ {
		t := float64(layerIdx) / math.Max(float64(sp.layers-1), 1)
		layerR := maxR * (1 - t*0.55)
		petalH := layerR * sp.petalRatio * (1 - t*0.2)
		petalW := layerR * 0.32 * (1 + t*0.15)

		// Odd layers rotate half a petal step so rings interleave.
		rotOff := 0.0
		if layerIdx%2 == 1 {
			rotOff = float64(layerIdx) * math.Pi / float64(sp.petals) * 0.5
		}

		col := c2.Lerp(c1, t)
		petalAlpha := uint8(200 + 40*t)

		for pIdx := 0; pIdx < sp.petals; pIdx++ {
			angle := rotOff + float64(pIdx)*(2*math.Pi/float64(sp.petals))
			px := cx + layerR*0.55*math.Cos(angle)
			py := cy + layerR*0.55*math.Sin(angle)

			const numPts = 24
			pts := make([]canvas.Point, numPts)
			for k := 0; k < numPts; k++ {
				a2 := float64(k) * (2 * math.Pi / numPts)
				rx := petalW * (0.5 + 0.5*math.Cos(a2)) * 0.9
				ry := petalH * math.Sin(a2)
				if math.Sin(a2) <= 0 {
					ry *= 0.4
				}
				rrx := rx*math.Cos(angle) - ry*math.Sin(angle)
				rry := rx*math.Sin(angle) + ry*math.Cos(angle)
				pts[k] = canvas.Point{X: px + rrx, Y: py + rry}
			}
			cv.FillPolygon(pts, col.WithAlpha(petalAlpha))

			cv.Line(
				cx+layerR*0.1*math.Cos(angle), cy+layerR*0.1*math.Sin(angle),
				cx+layerR*math.Cos(angle), cy+layerR*math.Sin(angle),
				color.NRGBA{255, 255, 255, 50}, 1)
		}
	}

	// Stamen and pollen dots.
	stamenR := maxR * 0.14
	cv.FillCircle(cx, cy, stamenR, c3.WithAlpha(240))
	cv.FillCircle(cx, cy, stamenR*0.55, color.NRGBA{255, 240, 180, 250})
	const pollenCount = 8
	pollenR := stamenR * 0.7
	for i := 0; i < pollenCount; i++ {
		ang := float64(i) * (2 * math.Pi / pollenCount)
		cv.FillCircle(cx+pollenR*math.Cos(ang), cy+pollenR*math.Sin(ang),
			stamenR*0.12, color.NRGBA{255, 220, 50, 230})
	}

	// Gloss highlight over the upper-left petals.
	gloss := canvas.New(w, h)
	glossR := maxR * 0.25
	gloss.FillEllipse(cx-glossR*0.4, cy-glossR*0.85, glossR*0.8, glossR*0.65,
		color.NRGBA{255, 255, 255, 30})
	gloss.Blur(10)
	cv.Composite(gloss)

	return cv
}
