// Package pkg provides the core libraries for Synora image generation.
//
// # Overview
//
// Synora turns text prompts into transparent PNG images. Every pixel is
// computed procedurally; there is no model inference and no network call
// in the render path. The pkg directory is organized into four main areas:
//
//  1. [engine] - Domain logic (prompt analysis, palettes, style generators)
//  2. [pipeline] - Orchestration (validate → generate → encode → cache)
//  3. Collaborators - [cache], [storage], [memstore], [db]
//  4. Support - [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through Synora:
//
//	Text Prompt
//	     ↓
//	[engine] (detect style, derive palette, render RGBA canvas)
//	     ↓
//	[pipeline] (verify alpha, encode PNG, consult cache)
//	     ↓
//	[storage] + [db] (persist artifact and history via the API)
//
// # Quick Start
//
// Generate an image and write it to disk:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/truemindlabs-dev/synora/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Prompt: "glowing lotus flower",
//	})
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("lotus.png", result.PNG, 0o644)
//
// # Main Packages
//
// [engine] - The generation engine. Resolves a prompt to a palette and a
// concrete style, renders through one of thirteen generators onto an RGBA
// canvas, and verifies the alpha channel. Subpackages: [engine/canvas]
// (drawing surface, compositing, blur) and [engine/iso] (isometric
// projection and cuboid rendering).
//
// [pipeline] - Complete generation pipeline used by both CLI and API.
// Validates options, consults the render cache, and reports timing stats.
//
// [cache] - Render cache with file, Redis, and null backends plus
// deterministic key derivation.
//
// [storage] - PNG artifact persistence on the local filesystem, Amazon S3,
// or Google Cloud Storage.
//
// [memstore] - Namespaced per-user key/value store with in-process and
// Redis backends.
//
// [db] - SQLite-backed generation history with embedded migrations.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Process-wide hook points for generation, cache, and
// storage events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/engine/...      # Specific package
//
// [engine]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/engine
// [engine/canvas]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/engine/canvas
// [engine/iso]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/engine/iso
// [pipeline]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/cache
// [storage]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/storage
// [memstore]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/memstore
// [db]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/db
// [errors]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/errors
// [observability]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/truemindlabs-dev/synora/pkg/buildinfo
package pkg
