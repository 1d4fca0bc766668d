package canvas

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Blur applies a separable Gaussian blur of the given radius to all four
// channels, alpha included. Radii <= 0 are a no-op. Pixels outside the
// kernel's support stay fully transparent, so blurring a glow never floods
// the background with opacity.
func (c *Canvas) Blur(radius float64) {
	if radius <= 0 {
		return
	}
	blurred := imaging.Blur(c.img, radius)
	draw.Draw(c.img, c.img.Bounds(), blurred, image.Point{}, draw.Src)
}
