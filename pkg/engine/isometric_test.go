package engine

import (
	"testing"

	"github.com/truemindlabs-dev/synora/pkg/engine/iso"
)

// Every theme shares the same ground platform, so the origin tile must be
// rasterized no matter which scene the prompt selects.
func TestIsometricThemesRasterizeOriginTile(t *testing.T) {
	tests := []struct {
		theme  string
		prompt string
	}{
		{"garden", "taman bunga"},
		{"city", "kota city block"},
		{"fantasy", "ancient ruins"},
	}
	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			res, err := Generate(Config{Prompt: tt.prompt, Width: 256, Height: 256, Style: StyleIsometric})
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			// The same projector the generator builds for a 256x256 canvas.
			proj := iso.Projector{OriginX: 128, OriginY: 256 * 0.62, Scale: 256.0 / 9}
			pt := proj.Project(0.5, 0.5, 0.25)
			px := res.Image.RGBAAt(int(pt.X), int(pt.Y))
			if px.A == 0 {
				t.Errorf("origin tile not rasterized at (%d,%d)", int(pt.X), int(pt.Y))
			}
		})
	}
}
