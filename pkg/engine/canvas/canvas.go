// Package canvas provides the RGBA pixel buffer the style generators draw
// into, together with shape primitives, source-over compositing, and a
// Gaussian blur filter.
//
// A freshly constructed Canvas is fully transparent (alpha=0 everywhere);
// that guarantee is what makes the generated images true-alpha. Drawing
// primitives rasterize with source-over blending, auxiliary layers are
// composited with [Canvas.Composite], and [Canvas.Blur] spreads all four
// channels including alpha so glows fade out instead of reintroducing
// opacity.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// RGB is an opaque 8-bit color triple, the unit of the prompt palette.
type RGB struct {
	R, G, B uint8
}

// WithAlpha attaches a straight (non-premultiplied) alpha byte.
func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp interpolates linearly toward other. t=0 yields c, t=1 yields other.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: lerpByte(c.R, other.R, t),
		G: lerpByte(c.G, other.G, t),
		B: lerpByte(c.B, other.B, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Palette is the ordered three-color set driving a style's rendering.
// It is derived once per request and never mutated afterwards.
type Palette struct {
	Primary   RGB
	Secondary RGB
	Tertiary  RGB
}

// Point is a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Canvas is a width×height RGBA buffer with drawing primitives.
// It is mutated only during generation and treated as immutable once a
// generator returns it.
type Canvas struct {
	dc  *gg.Context
	img *image.RGBA
}

// New creates a canvas whose every pixel is fully transparent.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{dc: gg.NewContextForRGBA(img), img: img}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the underlying RGBA buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetPixel writes a straight-alpha color to a single pixel, replacing
// whatever was there. Out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.img.Set(x, y, col)
}

// FillPolygon rasterizes a closed filled polygon. Fewer than three points is
// a no-op.
func (c *Canvas) FillPolygon(pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.path(pts)
	c.setColor(col)
	c.dc.Fill()
}

// StrokePolygon outlines a closed polygon with the given line width.
func (c *Canvas) StrokePolygon(pts []Point, col color.NRGBA, width float64) {
	if len(pts) < 3 {
		return
	}
	c.path(pts)
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *Canvas) path(pts []Point) {
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
}

// FillEllipse draws a filled axis-aligned ellipse centered at (cx, cy).
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	c.dc.DrawEllipse(cx, cy, rx, ry)
	c.setColor(col)
	c.dc.Fill()
}

// FillCircle draws a filled circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.dc.DrawCircle(cx, cy, r)
	c.setColor(col)
	c.dc.Fill()
}

// Line draws a straight line segment.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.NRGBA, width float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

// FillRect draws a filled rectangle with origin (x, y).
func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.dc.DrawRectangle(x, y, w, h)
	c.setColor(col)
	c.dc.Fill()
}

// FillRoundedRect draws a filled rectangle with rounded corners.
func (c *Canvas) FillRoundedRect(x, y, w, h, r float64, col color.NRGBA) {
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
	c.setColor(col)
	c.dc.Fill()
}

// StrokeRoundedRect outlines a rounded rectangle.
func (c *Canvas) StrokeRoundedRect(x, y, w, h, r float64, col color.NRGBA, width float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

// Text draws s with its top-left corner at (x, y) at the given point size.
// Font resolution falls back through system fonts to a built-in face and
// never fails.
func (c *Canvas) Text(s string, x, y, size float64, col color.NRGBA) {
	c.dc.SetFontFace(LoadFace(size))
	c.setColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0, 1)
}

// Composite blends src over this canvas using standard source-over alpha
// blending: out = src*srcA + dst*(1-srcA) per channel, alpha likewise.
func (c *Canvas) Composite(src *Canvas) {
	draw.Draw(c.img, c.img.Bounds(), src.img, image.Point{}, draw.Over)
}

func (c *Canvas) setColor(col color.NRGBA) {
	c.dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
}
