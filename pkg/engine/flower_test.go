package engine

import (
	"math/rand"
	"testing"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

func TestSpeciesFor(t *testing.T) {
	promptPal := PaletteFor("zxqv")
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		prompt  string
		petals  int
		layers  int
		primary canvas.RGB
	}{
		{"rose", "a red rose", 5, 4, canvas.RGB{R: 200, G: 30, B: 50}},
		{"rose indonesian", "mawar merah", 5, 4, canvas.RGB{R: 200, G: 30, B: 50}},
		{"sakura", "cherry blossom", 5, 3, canvas.RGB{R: 255, G: 160, B: 180}},
		{"lotus", "teratai di kolam", 8, 4, canvas.RGB{R: 220, G: 100, B: 160}},
		{"sunflower", "a yellow sunflower", 13, 2, canvas.RGB{R: 255, G: 200, B: 20}},
		{"dahlia", "dahlia bouquet", 12, 5, canvas.RGB{R: 180, G: 40, B: 120}},
		{"tulip", "tulip field", 6, 2, canvas.RGB{R: 200, G: 50, B: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := speciesFor(tt.prompt, promptPal, rng)
			if sp.petals != tt.petals || sp.layers != tt.layers {
				t.Errorf("petals/layers = %d/%d, want %d/%d", sp.petals, sp.layers, tt.petals, tt.layers)
			}
			if sp.pal.Primary != tt.primary {
				t.Errorf("Primary = %v, want %v", sp.pal.Primary, tt.primary)
			}
		})
	}
}

func TestSpeciesForGeneric(t *testing.T) {
	promptPal := PaletteFor("zxqv unmatched")
	rng := rand.New(rand.NewSource(42))

	sp := speciesFor("zxqv unmatched", promptPal, rng)
	if sp.petals < 5 || sp.petals >= 9 {
		t.Errorf("generic petals = %d, want [5,9)", sp.petals)
	}
	if sp.layers < 3 || sp.layers >= 5 {
		t.Errorf("generic layers = %d, want [3,5)", sp.layers)
	}
	if sp.petalRatio < 0.38 || sp.petalRatio >= 0.50 {
		t.Errorf("generic ratio = %f, want [0.38,0.50)", sp.petalRatio)
	}
	if sp.pal != promptPal {
		t.Error("generic flower should keep the prompt palette")
	}
}
