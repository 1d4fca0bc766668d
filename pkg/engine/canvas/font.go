package canvas

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontCandidates are probed in order. The first one present on the host
// wins; if none resolves, rendering falls back to the built-in bitmap face.
var fontCandidates = []string{
	"DejaVuSans-Bold.ttf",
	"LiberationSans-Bold.ttf",
	"FreeSansBold.ttf",
}

var (
	fontOnce   sync.Once
	fontParsed *truetype.Font

	faceMu    sync.Mutex
	faceCache = map[float64]font.Face{}
)

// LoadFace returns a font face at the given point size. Resolution walks the
// candidate list via system font discovery and falls back to a minimal
// built-in face rather than failing; text-dependent styles therefore never
// error on hosts without fonts installed.
func LoadFace(size float64) font.Face {
	fontOnce.Do(func() {
		for _, name := range fontCandidates {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			f, err := truetype.Parse(data)
			if err != nil {
				continue
			}
			fontParsed = f
			return
		}
	})

	if fontParsed == nil {
		return basicfont.Face7x13
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faceCache[size]; ok {
		return face
	}
	face := truetype.NewFace(fontParsed, &truetype.Options{Size: size})
	faceCache[size] = face
	return face
}
