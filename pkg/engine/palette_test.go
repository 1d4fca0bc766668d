package engine

import (
	"testing"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

func TestPaletteForKeywords(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		primary canvas.RGB
	}{
		{"english red", "red dragon", canvas.RGB{R: 220, G: 50, B: 70}},
		{"indonesian red", "api yang menyala", canvas.RGB{R: 220, G: 50, B: 70}},
		{"blue ocean", "deep ocean waves", canvas.RGB{R: 30, G: 100, B: 220}},
		{"green nature", "lush green forest", canvas.RGB{R: 40, G: 180, B: 80}},
		{"gold", "golden sun emblem", canvas.RGB{R: 255, G: 200, B: 30}},
		{"case insensitive", "RED FIRE", canvas.RGB{R: 220, G: 50, B: 70}},
		{"cyan last rule", "turquoise lagoon", canvas.RGB{R: 0, G: 180, B: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pal := PaletteFor(tt.prompt)
			if pal.Primary != tt.primary {
				t.Errorf("Primary = %v, want %v", pal.Primary, tt.primary)
			}
		})
	}
}

func TestPaletteForFirstMatchWins(t *testing.T) {
	// "jingga bunga" hits the orange entry before the pink one.
	pal := PaletteFor("jingga bunga")
	want := canvas.RGB{R: 255, G: 120, B: 30}
	if pal.Primary != want {
		t.Errorf("Primary = %v, want orange %v", pal.Primary, want)
	}

	// Matching is by substring, so "sunset" reaches the yellow rule's
	// "sun" before the orange rule is scanned.
	pal = PaletteFor("sunset flower")
	want = canvas.RGB{R: 255, G: 200, B: 30}
	if pal.Primary != want {
		t.Errorf("Primary = %v, want yellow %v", pal.Primary, want)
	}
}

func TestPaletteForFallbackDeterministic(t *testing.T) {
	a := PaletteFor("zxqv unmatched prompt")
	b := PaletteFor("zxqv unmatched prompt")
	if a != b {
		t.Error("fallback palette should be deterministic")
	}

	c := PaletteFor("another unmatched zxqv")
	if a == c {
		t.Error("different prompts should hash to different palettes")
	}
}

func TestPaletteForFallbackKeepsCase(t *testing.T) {
	// Keyword matching lower-cases, but the hash uses the raw prompt.
	a := PaletteFor("Zxqv Prompt")
	b := PaletteFor("zxqv prompt")
	if a == b {
		t.Error("hash fallback should distinguish case")
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    canvas.RGB
	}{
		{"pure red", 0, 1, 1, canvas.RGB{R: 255, G: 0, B: 0}},
		{"pure green", 1.0 / 3, 1, 1, canvas.RGB{R: 0, G: 255, B: 0}},
		{"white", 0, 0, 1, canvas.RGB{R: 255, G: 255, B: 255}},
		{"black", 0.5, 0.5, 0, canvas.RGB{R: 0, G: 0, B: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hsvToRGB(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("hsvToRGB(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}
