// Package pipeline provides the cached generation pipeline for Synora.
//
// This package wraps the engine's analyze → dispatch → verify flow with
// artifact caching so CLI, API, and worker components share one code path.
// By centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// A run consists of three stages:
//
//  1. Analyze: resolve the concrete style and palette from the prompt
//  2. Generate: render the RGBA canvas and verify the alpha channel
//  3. Encode: serialize the canvas to PNG for delivery and caching
//
// The PNG artifact is the cache unit: generation is deterministic, so the
// cache key covers every input that affects pixels (prompt, style, size,
// seed) and a hit is byte-identical to a fresh render.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Prompt: "glowing mandala",
//	    Width:  512,
//	    Height: 512,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.PNG
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/engine"
	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// MaxPromptLen bounds prompt length; longer prompts are rejected rather
// than truncated so callers notice.
const MaxPromptLen = 1000

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Prompt is the free-text description, 1 to MaxPromptLen characters.
	Prompt string `json:"prompt"`

	// Style selects the generator; empty or "auto" detects from the prompt.
	Style string `json:"style,omitempty"`

	// Width and height in pixels; zero defaults, out-of-range clamps.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Seed overrides the prompt-derived RNG seed for reproducible variants.
	Seed *int64 `json:"seed,omitempty"`

	// Refresh bypasses the cache read (the fresh result is still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// PNG is the encoded artifact.
	PNG []byte

	// StyleUsed is the concrete style that rendered the image.
	StyleUsed engine.Style

	// Width and Height are the clamped output dimensions.
	Width  int
	Height int

	// AlphaVerified and TransparentPct report the transparency measurement.
	AlphaVerified  bool
	TransparentPct float64

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GenerateTime time.Duration
	EncodeTime   time.Duration
	PNGBytes     int
}

// CacheInfo tracks cache participation for a run.
type CacheInfo struct {
	ImageHit bool // Whether the PNG came from cache
	Key      string
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Prompt == "" {
		return errors.New(errors.ErrCodeInvalidPrompt, "prompt is required")
	}
	if len(o.Prompt) > MaxPromptLen {
		return errors.New(errors.ErrCodeInvalidPrompt,
			"prompt exceeds %d characters", MaxPromptLen)
	}
	if o.Style == "" {
		o.Style = string(engine.StyleAuto)
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	o.validated = true
	return nil
}

// ValidateStyle checks that a style tag is one of the selectable styles.
func ValidateStyle(style string) error {
	for _, s := range engine.Styles() {
		if string(s) == style {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q", style)
}

// engineConfig converts the options into an engine request.
func (o *Options) engineConfig() engine.Config {
	return engine.Config{
		Prompt: o.Prompt,
		Width:  o.Width,
		Height: o.Height,
		Style:  engine.Style(o.Style),
		Seed:   o.Seed,
	}
}

// imageKeyOpts returns cache key options covering every parameter that
// affects rendered pixels. The config must be normalized first so clamped
// and unclamped requests for the same output share an entry.
func imageKeyOpts(cfg engine.Config) cache.ImageKeyOpts {
	return cache.ImageKeyOpts{
		Style:  string(cfg.Style),
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
	}
}
