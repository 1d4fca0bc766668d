package engine

import (
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
	"github.com/truemindlabs-dev/synora/pkg/engine/iso"
)

var (
	isoGardenWords = []string{"bunga", "flower", "taman", "garden", "flora"}
	isoCityWords   = []string{"kota", "city", "building", "gedung", "urban"}
)

// genIsometric renders a small 3D diorama on a diamond of ground tiles.
// The prompt selects the scene: garden keywords grow flower stems, city
// keywords raise buildings, and everything else gets the fantasy tower
// with walls and crystals. A blurred ground shadow is composited last.
func genIsometric(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas {
	w, h := cfg.Width, cfg.Height
	cv := canvas.New(w, h)

	proj := iso.Projector{
		OriginX: float64(w) / 2,
		OriginY: float64(h) * 0.62,
		Scale:   float64(minInt(w, h)) / 9,
	}
	p := strings.ToLower(cfg.Prompt)

	drawIsoGround(cv, proj, pal, rng)

	switch {
	case containsAny(p, isoGardenWords):
		drawIsoGarden(cv, proj, pal, rng)
	case containsAny(p, isoCityWords):
		drawIsoCity(cv, proj, pal, rng)
	default:
		drawIsoFantasy(cv, proj, pal)
	}

	shadow := canvas.New(w, h)
	shadow.FillEllipse(proj.OriginX, proj.OriginY,
		float64(w)*0.7/2, float64(h)*0.12/2, color.NRGBA{0, 0, 0, 30})
	shadow.Blur(20)
	cv.Composite(shadow)

	return cv
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// drawIsoGround lays a 7×7 diamond of thin tiles, each darkened by a small
// random amount for texture.
func drawIsoGround(cv *canvas.Canvas, proj iso.Projector, pal canvas.Palette, rng *rand.Rand) {
	for gx := -3; gx <= 3; gx++ {
		for gy := -3; gy <= 3; gy++ {
			if absInt(gx)+absInt(gy) > 4 {
				continue
			}
			tile := canvas.RGB{
				R: subByte(pal.Tertiary.R, uint8(rng.Intn(20))),
				G: subByte(pal.Tertiary.G, uint8(rng.Intn(20))),
				B: subByte(pal.Tertiary.B, uint8(rng.Intn(20))),
			}
			iso.DrawCuboid(cv, proj, float64(gx), float64(gy), 0, 1, 1, 0.25, tile, 200)
		}
	}
}

var isoStemPositions = [][2]float64{
	{0, 0}, {-1.5, -1}, {1.5, -1}, {-1, 1.2}, {1, 1.2}, {-2.5, 0.5}, {2.5, 0.5},
}

func drawIsoGarden(cv *canvas.Canvas, proj iso.Projector, pal canvas.Palette, rng *rand.Rand) {
	for _, pos := range isoStemPositions {
		sx, sy := pos[0], pos[1]
		stem := canvas.RGB{
			R: jitterByte(40, rng, 15),
			G: jitterByte(160, rng, 20),
			B: jitterByte(60, rng, 15),
		}
		stemH := uniform(rng, 1.5, 3.0)
		iso.DrawCuboid(cv, proj, sx-0.1, sy-0.1, 0.25, 0.2, 0.2, stemH, stem, 240)

		headZ := 0.25 + stemH
		head := canvas.RGB{
			R: jitterByte(int(pal.Primary.R), rng, 30),
			G: jitterByte(int(pal.Primary.G), rng, 30),
			B: jitterByte(int(pal.Primary.B), rng, 30),
		}
		for _, off := range [][2]float64{{-0.25, 0}, {0.25, 0}, {0, -0.25}, {0, 0.25}} {
			iso.DrawCuboid(cv, proj, sx+off[0]-0.15, sy+off[1]-0.15, headZ, 0.3, 0.3, 0.2, head, 230)
		}
		iso.DrawCuboid(cv, proj, sx-0.15, sy-0.15, headZ+0.18, 0.3, 0.3, 0.25,
			canvas.RGB{R: 255, G: 220, B: 50}, 255)
	}

	leaf := canvas.RGB{R: 50, G: 180, B: 70}
	for i := 0; i < 8; i++ {
		lx := uniform(rng, -3, 3)
		ly := uniform(rng, -3, 3)
		iso.DrawCuboid(cv, proj, lx, ly, 0.25, 0.5, 0.15, 0.08, leaf, 200)
	}
}

func drawIsoCity(cv *canvas.Canvas, proj iso.Projector, pal canvas.Palette, rng *rand.Rand) {
	buildings := []struct {
		x, y, h float64
		col     canvas.RGB
	}{
		{0, 0, 2.5, pal.Primary},
		{-2, -1, 1.8, pal.Secondary},
		{2, -1, 2.0, pal.Secondary},
		{-1, 1.5, 1.5, pal.Tertiary},
		{1, 1.5, 1.2, pal.Tertiary},
		{-3, 0.5, 1.0, pal.Primary},
		{3, 0.5, 1.3, pal.Primary},
	}
	for _, b := range buildings {
		bw := uniform(rng, 0.7, 1.2)
		bd := uniform(rng, 0.7, 1.2)
		iso.DrawCuboid(cv, proj, b.x-bw/2, b.y-bd/2, 0.25, bw, bd, b.h, b.col, 235)
		roof := iso.Shade(b.col, 1.3)
		iso.DrawCuboid(cv, proj, b.x-bw/2+0.1, b.y-bd/2+0.1, 0.25+b.h,
			bw-0.2, bd-0.2, 0.15, roof, 240)
	}
}

func drawIsoFantasy(cv *canvas.Canvas, proj iso.Projector, pal canvas.Palette) {
	// Central tower with a stepped pyramid roof.
	iso.DrawCuboid(cv, proj, -0.5, -0.5, 0.25, 1, 1, 3.5, pal.Primary, 240)
	for lvl := 0; lvl < 4; lvl++ {
		s := 1 - float64(lvl)*0.22
		iso.DrawCuboid(cv, proj, -s/2, -s/2, 0.25+3.5+float64(lvl)*0.25, s, s, 0.28,
			pal.Secondary, 230)
	}

	// Perimeter walls.
	for _, wx := range []float64{-2, 2} {
		iso.DrawCuboid(cv, proj, wx-0.2, -2, 0.25, 0.4, 4, 1.2, pal.Tertiary, 220)
	}
	for _, wy := range []float64{-2, 2} {
		iso.DrawCuboid(cv, proj, -2.5, wy-0.2, 0.25, 5, 0.4, 1.2, pal.Tertiary, 220)
	}

	crystal := canvas.RGB{
		R: addByte(pal.Secondary.R, 60),
		G: addByte(pal.Secondary.G, 60),
		B: addByte(pal.Secondary.B, 80),
	}
	for deg := 0; deg < 360; deg += 90 {
		rad := float64(deg) * math.Pi / 180
		kx := 1.8 * math.Cos(rad)
		ky := 1.8 * math.Sin(rad)
		iso.DrawCuboid(cv, proj, kx-0.2, ky-0.2, 0.25, 0.4, 0.4, 0.8, crystal, 200)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func subByte(b, d uint8) uint8 {
	if d > b {
		return 0
	}
	return b - d
}

func addByte(b uint8, d int) uint8 {
	v := int(b) + d
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// jitterByte offsets base by a uniform random amount in [-spread, spread),
// clamped to the byte range.
func jitterByte(base int, rng *rand.Rand, spread int) uint8 {
	v := base + intn(rng, -spread, spread)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
