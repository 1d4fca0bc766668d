package engine

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// EncodePNG serializes the canvas as a PNG byte stream. PNG is the only
// wire format: it is lossless and carries the full alpha channel.
func EncodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// EncodeBase64 serializes the canvas as standard base64 PNG, the form the
// JSON API embeds in responses.
func EncodeBase64(img *image.RGBA) (string, error) {
	raw, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodePNG parses a PNG byte stream back into an RGBA canvas, converting
// other color models if needed. Used by the cache layer to rehydrate
// stored artifacts.
func DecodePNG(data []byte) (*image.RGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode PNG")
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return rgba, nil
}
