package engine

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// paletteRule binds a set of prompt keywords to a fixed color triple.
// Rules are scanned top-down and the first match wins, so ordering is part
// of the observable contract: "jingga bunga" resolves to the orange entry
// because it precedes the pink one. Matching is by substring, so "sunset"
// hits the yellow rule's "sun" before the orange rule is ever reached.
type paletteRule struct {
	keywords []string
	palette  canvas.Palette
}

func rgb(r, g, b uint8) canvas.RGB { return canvas.RGB{R: r, G: g, B: b} }

func triple(p, s, t canvas.RGB) canvas.Palette {
	return canvas.Palette{Primary: p, Secondary: s, Tertiary: t}
}

// paletteRules carries the original product's bilingual keyword table
// verbatim. Never reorder: first-match-wins semantics are load-bearing.
var paletteRules = []paletteRule{
	{[]string{"merah", "red", "api", "fire", "marah", "cinta", "love"},
		triple(rgb(220, 50, 70), rgb(255, 120, 80), rgb(180, 20, 40))},
	{[]string{"biru", "blue", "laut", "ocean", "langit", "sky", "air"},
		triple(rgb(30, 100, 220), rgb(80, 180, 255), rgb(10, 60, 160))},
	{[]string{"hijau", "green", "alam", "nature", "hutan", "forest"},
		triple(rgb(40, 180, 80), rgb(100, 220, 120), rgb(20, 120, 50))},
	{[]string{"kuning", "yellow", "matahari", "sun", "emas", "gold"},
		triple(rgb(255, 200, 30), rgb(255, 240, 100), rgb(200, 140, 0))},
	{[]string{"ungu", "purple", "violet", "mistis", "mystic", "magic"},
		triple(rgb(140, 50, 200), rgb(200, 100, 255), rgb(80, 20, 140))},
	{[]string{"orange", "jingga", "senja", "sunset", "autumn"},
		triple(rgb(255, 120, 30), rgb(255, 180, 80), rgb(200, 70, 10))},
	{[]string{"pink", "merah muda", "bunga", "flower", "sakura"},
		triple(rgb(255, 100, 160), rgb(255, 180, 210), rgb(200, 50, 120))},
	{[]string{"putih", "white", "bersih", "clean", "salju", "snow"},
		triple(rgb(220, 230, 240), rgb(255, 255, 255), rgb(180, 190, 210))},
	{[]string{"hitam", "black", "gelap", "dark", "malam", "night"},
		triple(rgb(30, 30, 50), rgb(80, 80, 120), rgb(10, 10, 20))},
	{[]string{"cyan", "tosca", "turquoise"},
		triple(rgb(0, 180, 200), rgb(80, 220, 230), rgb(0, 120, 140))},
}

// PaletteFor derives the three-color palette from prompt keywords. Prompts
// matching no rule get a deterministic hash-derived palette: the stable hash
// fixes a base hue and the three colors are HSV variants spaced a third of a
// turn apart. The same prompt yields the same palette on every platform.
func PaletteFor(prompt string) canvas.Palette {
	p := strings.ToLower(prompt)
	for _, rule := range paletteRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.palette
			}
		}
	}

	hue := float64(promptHash32(prompt)%360) / 360.0
	return canvas.Palette{
		Primary:   hsvToRGB(hue, 0.7, 0.9),
		Secondary: hsvToRGB(math.Mod(hue+0.33, 1), 0.6, 1.0),
		Tertiary:  hsvToRGB(math.Mod(hue+0.66, 1), 0.8, 0.7),
	}
}

// promptHash32 is the stable string hash backing palette fallback.
// FNV-1a is fixed by specification, so results never vary across runs,
// processes, or platforms.
func promptHash32(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// promptHash64 seeds the request-scoped RNG when no explicit seed is given.
func promptHash64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64() % 99999)
}

// hsvToRGB converts hue (fraction of a turn), saturation, and value to an
// 8-bit RGB triple.
func hsvToRGB(h, s, v float64) canvas.RGB {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return rgb(uint8(r*255), uint8(g*255), uint8(b*255))
}
