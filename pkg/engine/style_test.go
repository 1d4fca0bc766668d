package engine

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   Style
	}{
		{"flower english", "a single red rose", StyleFlower},
		{"flower indonesian", "bunga di taman", StyleFlower},
		{"isometric", "isometric voxel scene", StyleIsometric},
		{"city maps to isometric", "city skyline at dusk", StyleIsometric},
		{"mandala", "symmetric mandala pattern", StyleMandala},
		{"wave", "liquid waves", StyleWave},
		{"glow", "neon lights", StyleGlow},
		{"starburst", "burst of rays", StyleStarburst},
		{"badge", "app icon logo", StyleBadge},
		{"portrait", "face of a person", StylePortrait},
		{"landscape", "mountain scenery pemandangan", StyleLandscape},
		{"text art", "typography poster", StyleTextArt},
		{"gradient", "rainbow colors", StyleGradient},
		{"pixel", "retro 8bit sprite", StylePixel},
		{"geometric", "angular shapes", StyleGeometric},
		{"no match defaults", "qwerty xyzzy", StyleGeometric},
		{"case insensitive", "NEON GLOW", StyleGlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.prompt); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestDetectRuleOrder(t *testing.T) {
	// Flower is checked before isometric, so a prompt naming both wins flower.
	if got := Detect("flower city"); got != StyleFlower {
		t.Errorf("Detect = %s, want %s", got, StyleFlower)
	}
	// "abstract" appears under gradient and geometric; gradient is first.
	if got := Detect("abstract"); got != StyleGradient {
		t.Errorf("Detect = %s, want %s", got, StyleGradient)
	}
}

func TestStylesListsAutoFirst(t *testing.T) {
	styles := Styles()
	if len(styles) != 14 {
		t.Fatalf("len(Styles()) = %d, want 14", len(styles))
	}
	if styles[0] != StyleAuto {
		t.Errorf("Styles()[0] = %s, want auto", styles[0])
	}
	seen := make(map[Style]bool)
	for _, s := range styles {
		if seen[s] {
			t.Errorf("duplicate style %s", s)
		}
		seen[s] = true
	}
}

func TestKeywords(t *testing.T) {
	if kws := Keywords(StyleFlower); len(kws) == 0 {
		t.Error("flower should have keywords")
	}
	if kws := Keywords(StyleAuto); kws != nil {
		t.Error("auto has no detection rule")
	}
}
