// Package iso implements the fixed-angle isometric projection used by the
// isometric style generator: grid-space 3D points map to 2D screen
// coordinates at a 30° angle, and cuboids are drawn as three shaded visible
// faces (top, left, right).
package iso

import (
	"image/color"
	"math"

	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
)

// Face shade factors relative to a cuboid's base color. The top face is
// lightest, the right face darkest; outlines are darker still.
const (
	ShadeTop   = 1.15
	ShadeLeft  = 0.75
	ShadeRight = 0.55

	OutlineTop   = 0.6
	OutlineLeft  = 0.5
	OutlineRight = 0.4
)

var (
	isoCos = math.Cos(30 * math.Pi / 180)
	isoSin = math.Sin(30 * math.Pi / 180)
)

// Projector maps grid coordinates to screen coordinates.
type Projector struct {
	OriginX float64
	OriginY float64
	Scale   float64
}

// Project converts a 3D grid point to 2D screen space.
func (p Projector) Project(x, y, z float64) canvas.Point {
	return canvas.Point{
		X: p.OriginX + (x-y)*isoCos*p.Scale,
		Y: p.OriginY + (x+y)*isoSin*p.Scale - z*p.Scale,
	}
}

// Shade scales each channel of c by factor, clamping to [0,255].
func Shade(c canvas.RGB, factor float64) canvas.RGB {
	return canvas.RGB{
		R: clampByte(float64(c.R) * factor),
		G: clampByte(float64(c.G) * factor),
		B: clampByte(float64(c.B) * factor),
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// DrawCuboid renders a cuboid with min corner (x, y, z) and extents
// (sx, sy, sz) onto cv. Only the three visible faces are drawn, each a
// shaded variant of base with a darker outline, at the given alpha.
func DrawCuboid(cv *canvas.Canvas, p Projector, x, y, z, sx, sy, sz float64, base canvas.RGB, alpha uint8) {
	// Corner index: bit set means the corner sits at the far extent on
	// that axis (x, y, z respectively).
	var corners [8]canvas.Point
	for i := 0; i < 8; i++ {
		dx, dy, dz := 0.0, 0.0, 0.0
		if i&1 != 0 {
			dx = sx
		}
		if i&2 != 0 {
			dy = sy
		}
		if i&4 != 0 {
			dz = sz
		}
		corners[i] = p.Project(x+dx, y+dy, z+dz)
	}

	drawFace(cv, []canvas.Point{corners[4], corners[5], corners[7], corners[6]},
		Shade(base, ShadeTop).WithAlpha(alpha), Shade(base, OutlineTop).WithAlpha(alpha))
	drawFace(cv, []canvas.Point{corners[0], corners[4], corners[6], corners[2]},
		Shade(base, ShadeLeft).WithAlpha(alpha), Shade(base, OutlineLeft).WithAlpha(alpha))
	drawFace(cv, []canvas.Point{corners[1], corners[5], corners[7], corners[3]},
		Shade(base, ShadeRight).WithAlpha(alpha), Shade(base, OutlineRight).WithAlpha(alpha))
}

func drawFace(cv *canvas.Canvas, pts []canvas.Point, fill, outline color.NRGBA) {
	cv.FillPolygon(pts, fill)
	cv.StrokePolygon(pts, outline, 1)
}
