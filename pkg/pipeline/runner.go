package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/engine"
	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
	"github.com/truemindlabs-dev/synora/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete analyze → generate → encode pipeline with
// caching. A cache hit skips generation entirely; the stored PNG is decoded
// only to re-measure transparency for the result metadata.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	// Resolve auto style and clamp dimensions before the key is computed.
	cfg := opts.engineConfig()
	cfg.Normalize()

	result := &Result{
		StyleUsed: cfg.Style,
		Width:     cfg.Width,
		Height:    cfg.Height,
	}
	result.CacheInfo.Key = r.Keyer.ImageKey(cfg.Prompt, imageKeyOpts(cfg))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, result.CacheInfo.Key); err == nil && hit {
			if img, err := engine.DecodePNG(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "image")
				result.PNG = data
				result.CacheInfo.ImageHit = true
				result.AlphaVerified, result.TransparentPct = engine.VerifyAlpha(img)
				result.Stats.PNGBytes = len(data)

				logger.Debug("artifact cache hit",
					"style", cfg.Style,
					"size", len(data))
				return result, nil
			}
			// Corrupt entry: drop it and regenerate.
			_ = r.Cache.Delete(ctx, result.CacheInfo.Key)
		}
		observability.Cache().OnCacheMiss(ctx, "image")
	}

	// Stage 1+2: Generate
	genStart := time.Now()
	observability.Engine().OnGenerateStart(ctx, string(cfg.Style), cfg.Prompt)
	gen, err := engine.Generate(cfg)
	result.Stats.GenerateTime = time.Since(genStart)
	observability.Engine().OnGenerateComplete(ctx, string(cfg.Style), cfg.Prompt, result.Stats.GenerateTime, err)
	if err != nil {
		return nil, err
	}
	observability.Engine().OnAlphaVerified(ctx, string(gen.StyleUsed), gen.AlphaVerified, gen.TransparentPct)

	result.StyleUsed = gen.StyleUsed
	result.AlphaVerified = gen.AlphaVerified
	result.TransparentPct = gen.TransparentPct

	logger.Info("generated image",
		"style", gen.StyleUsed,
		"dimensions", result.Width*result.Height,
		"transparent_pct", gen.TransparentPct,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Encode
	encStart := time.Now()
	png, err := engine.EncodePNG(gen.Image)
	result.Stats.EncodeTime = time.Since(encStart)
	observability.Engine().OnEncodeComplete(ctx, "png", len(png), result.Stats.EncodeTime, err)
	if err != nil {
		return nil, err
	}
	result.PNG = png
	result.Stats.PNGBytes = len(png)

	// Cache the artifact
	if err := r.Cache.Set(ctx, result.CacheInfo.Key, png, cache.TTLImage); err == nil {
		observability.Cache().OnCacheSet(ctx, "image", len(png))
	}

	return result, nil
}

// Analyze resolves the concrete style, its keywords, and the palette for a
// prompt without rendering anything. It backs the dry-run API endpoint and
// CLI preview. Resolved palettes are cached so repeat analyses of the same
// prompt skip the keyword scan.
func (r *Runner) Analyze(ctx context.Context, prompt string) (engine.Style, []string, canvas.Palette) {
	style := engine.Detect(prompt)
	keywords := engine.Keywords(style)

	key := r.Keyer.PaletteKey(prompt)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var pal canvas.Palette
		if err := json.Unmarshal(data, &pal); err == nil {
			observability.Cache().OnCacheHit(ctx, "palette")
			return style, keywords, pal
		}
		// Corrupt entry: drop it and re-resolve.
		_ = r.Cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "palette")

	pal := engine.PaletteFor(prompt)
	if data, err := json.Marshal(pal); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLPalette); err == nil {
			observability.Cache().OnCacheSet(ctx, "palette", len(data))
		}
	}
	return style, keywords, pal
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
