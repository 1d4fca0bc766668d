package engine

import "strings"

// Style selects which procedural algorithm renders the image.
type Style string

// The fourteen style tags. StyleAuto is resolved to a concrete style by the
// pipeline before dispatch.
const (
	StyleAuto      Style = "auto"
	StyleGeometric Style = "geometric"
	StyleGradient  Style = "gradient"
	StyleGlow      Style = "glow"
	StyleStarburst Style = "starburst"
	StyleBadge     Style = "badge"
	StylePortrait  Style = "portrait"
	StyleLandscape Style = "landscape"
	StyleTextArt   Style = "text_art"
	StyleMandala   Style = "mandala"
	StyleWave      Style = "wave"
	StylePixel     Style = "pixel"
	StyleFlower    Style = "flower"
	StyleIsometric Style = "isometric"
)

// Styles lists every selectable tag, auto first.
func Styles() []Style {
	return []Style{
		StyleAuto, StyleGeometric, StyleGradient, StyleGlow, StyleStarburst,
		StyleBadge, StylePortrait, StyleLandscape, StyleTextArt, StyleMandala,
		StyleWave, StylePixel, StyleFlower, StyleIsometric,
	}
}

// detectRule binds a style to its trigger keywords. Rules are scanned
// top-down and the first rule with any substring match wins, so a prompt
// naming both a flower and a city resolves to flower.
type detectRule struct {
	style    Style
	keywords []string
}

// detectRules preserves the original product's rule order and bilingual
// keyword lists. Overlaps ("abstract" appears under both gradient and
// geometric) resolve by position, which is part of the contract.
var detectRules = []detectRule{
	{StyleFlower, []string{"bunga", "flower", "petal", "rose", "mawar", "sakura", "flora", "bloom", "blossom", "lotus", "teratai", "dahlia", "tulip"}},
	{StyleIsometric, []string{"isometric", "isometri", "3d", "cube", "kubus", "kota", "city", "building", "gedung", "perspektif", "voxel", "minecraft"}},
	{StyleMandala, []string{"mandala", "pola", "pattern", "simetri", "symmetric", "spiritual"}},
	{StyleWave, []string{"gelombang", "wave", "cair", "liquid", "fluid", "ombak", "laut", "ocean"}},
	{StyleGlow, []string{"cahaya", "glow", "neon", "bercahaya", "radiant", "glowing", "shine"}},
	{StyleStarburst, []string{"bintang", "star", "sinar", "sun", "matahari", "burst", "ray", "cahaya matahari"}},
	{StyleBadge, []string{"badge", "icon", "logo", "sticker", "label", "emblem", "shield"}},
	{StylePortrait, []string{"wajah", "face", "orang", "person", "manusia", "human", "portrait", "karakter"}},
	{StyleLandscape, []string{"pemandangan", "landscape", "alam", "nature", "gunung", "mountain"}},
	{StyleTextArt, []string{"teks", "text", "tulisan", "kata", "word", "huruf", "typography", "font"}},
	{StyleGradient, []string{"gradien", "gradient", "warna", "colorful", "pelangi", "rainbow", "abstract"}},
	{StylePixel, []string{"pixel", "piksel", "retro", "8bit", "game", "sprite"}},
	{StyleGeometric, []string{"geometri", "geometric", "bentuk", "shape", "sudut", "angular", "abstract"}},
}

// Detect picks the best style for a prompt. It is a pure function of the
// lower-cased prompt; prompts matching no rule default to geometric.
func Detect(prompt string) Style {
	p := strings.ToLower(prompt)
	for _, rule := range detectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.style
			}
		}
	}
	return StyleGeometric
}

// Keywords returns the trigger keywords for a style, or nil for styles with
// no detection rule (auto).
func Keywords(s Style) []string {
	for _, rule := range detectRules {
		if rule.style == s {
			return rule.keywords
		}
	}
	return nil
}
