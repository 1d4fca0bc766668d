// Package engine synthesizes true-alpha RGBA raster images from free-text
// prompts.
//
// This package implements the complete analyze → dispatch → verify pipeline
// shared by the CLI, API, and pipeline runner. Generation is a synchronous,
// CPU-bound, side-effect-free computation: each invocation owns its own
// pseudo-random generator seeded per request, so concurrent requests run in
// parallel without coordination.
//
// # Architecture
//
// A request flows through strictly ordered stages:
//
//  1. Clamp: width and height are forced into [MinResolution, MaxResolution]
//  2. Detect: an "auto" style resolves to a concrete tag from prompt keywords
//  3. Palette: three colors are derived from the prompt (keyword table or
//     stable-hash fallback)
//  4. Dispatch: the matching style generator renders the canvas
//  5. Verify: the RGBA invariant is asserted and the transparency ratio
//     measured
//
// # Usage
//
//	result, err := engine.Generate(engine.Config{
//	    Prompt: "red rose in bloom",
//	    Width:  512,
//	    Height: 512,
//	    Style:  engine.StyleAuto,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png, err := engine.EncodePNG(result.Image)
package engine

import (
	"image"
	"math"
	"math/rand"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// Resolution bounds. Out-of-range requests are clamped, never rejected.
const (
	MinResolution = 256
	MaxResolution = 1024

	// DefaultResolution is used when a dimension is left zero.
	DefaultResolution = 512
)

// Config describes one generation request. Prompt length (1-1000 chars) is
// validated at the API boundary; the engine accepts any string.
type Config struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Style  Style  `json:"style,omitempty"`
	Seed   *int64 `json:"seed,omitempty"`
}

// Normalize applies defaulting and clamping in place and resolves the auto
// style. It is idempotent. After Normalize, Width and Height lie in
// [MinResolution, MaxResolution] and Style is a concrete tag.
func (c *Config) Normalize() {
	if c.Width == 0 {
		c.Width = DefaultResolution
	}
	if c.Height == 0 {
		c.Height = DefaultResolution
	}
	c.Width = clampInt(c.Width, MinResolution, MaxResolution)
	c.Height = clampInt(c.Height, MinResolution, MaxResolution)
	if c.Style == "" || c.Style == StyleAuto {
		c.Style = Detect(c.Prompt)
	}
}

// Result is the immutable outcome of one generation.
type Result struct {
	// Image is the finished RGBA canvas.
	Image *image.RGBA

	// StyleUsed is the concrete style that rendered the image.
	StyleUsed Style

	// AlphaVerified reports whether any fully transparent pixel exists.
	AlphaVerified bool

	// TransparentPct is the share of alpha==0 pixels, 0-100, 2 decimals.
	TransparentPct float64
}

// generator is a pure mapping from (config, palette, request RNG) to a
// finished canvas.
type generator func(cfg Config, pal canvas.Palette, rng *rand.Rand) *canvas.Canvas

// styleTable is the closed dispatch table: one entry per concrete style, in
// a fixed order. It is never mutated after initialization and is therefore
// safe to share across concurrent requests.
var styleTable = []struct {
	style Style
	gen   generator
}{
	{StyleGeometric, genGeometric},
	{StyleGradient, genGradient},
	{StyleGlow, genGlow},
	{StyleStarburst, genStarburst},
	{StyleBadge, genBadge},
	{StyleMandala, genMandala},
	{StyleWave, genWave},
	{StylePortrait, genPortrait},
	{StyleLandscape, genLandscape},
	{StyleTextArt, genTextArt},
	{StylePixel, genPixel},
	{StyleFlower, genFlower},
	{StyleIsometric, genIsometric},
}

// generatorFor resolves a style tag to its generator. Unknown tags fall
// back to geometric.
func generatorFor(s Style) generator {
	for _, entry := range styleTable {
		if entry.style == s {
			return entry.gen
		}
	}
	return genGeometric
}

// Generate runs the full pipeline for one request.
//
// The only possible error is an internal invariant violation (a generator
// producing a malformed buffer), reported with errors.ErrCodeInternal. All
// input irregularities are absorbed: resolution is clamped and unknown
// styles fall back to geometric.
func Generate(cfg Config) (*Result, error) {
	cfg.Normalize()

	pal := PaletteFor(cfg.Prompt)
	rng := newRNG(cfg)

	cv := generatorFor(cfg.Style)(cfg, pal, rng)

	img := cv.Image()
	if err := checkRGBA(img, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	verified, pct := VerifyAlpha(img)
	return &Result{
		Image:          img,
		StyleUsed:      cfg.Style,
		AlphaVerified:  verified,
		TransparentPct: pct,
	}, nil
}

// newRNG builds the request-scoped RNG: explicit seed if present, otherwise
// a stable hash of the prompt, so repeated requests are reproducible.
func newRNG(cfg Config) *rand.Rand {
	seed := promptHash64(cfg.Prompt)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return rand.New(rand.NewSource(seed))
}

// checkRGBA asserts the generator contract: a width×height buffer with four
// bytes per pixel. A violation is a defect in the generator, reported as an
// internal error distinct from any input problem.
func checkRGBA(img *image.RGBA, width, height int) error {
	if img == nil {
		return errors.New(errors.ErrCodeInternal, "generator returned nil canvas")
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return errors.New(errors.ErrCodeInternal,
			"generator returned %dx%d canvas, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
	if len(img.Pix) != width*height*4 {
		return errors.New(errors.ErrCodeInternal,
			"generator returned buffer of %d bytes, want %d (4 channels)", len(img.Pix), width*height*4)
	}
	return nil
}

// VerifyAlpha measures the transparency of a finished canvas: whether any
// fully transparent pixel exists, and the percentage of alpha==0 pixels
// rounded to two decimals.
func VerifyAlpha(img *image.RGBA) (bool, float64) {
	total := img.Bounds().Dx() * img.Bounds().Dy()
	if total == 0 {
		return false, 0
	}
	transparent := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 {
			transparent++
		}
	}
	pct := math.Round(100*100*float64(transparent)/float64(total)) / 100
	return transparent > 0, pct
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Shared helpers for the generators.

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// intn returns a random int in [lo, hi).
func intn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
