package canvas

import (
	"image/color"
	"testing"
)

func TestNewIsFullyTransparent(t *testing.T) {
	cv := New(64, 48)
	img := cv.Image()
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 on a fresh canvas", i, b)
		}
	}
}

func TestSetPixelStraightAlpha(t *testing.T) {
	cv := New(8, 8)
	cv.SetPixel(2, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	got := color.NRGBAModel.Convert(cv.Image().At(2, 3)).(color.NRGBA)
	// Premultiplication rounds; allow one step per channel.
	for name, pair := range map[string][2]uint8{
		"R": {got.R, 200}, "G": {got.G, 100}, "B": {got.B, 50}, "A": {got.A, 128},
	} {
		diff := int(pair[0]) - int(pair[1])
		if diff < -1 || diff > 1 {
			t.Errorf("%s = %d, want %d±1", name, pair[0], pair[1])
		}
	}
}

func TestFillRectCoversArea(t *testing.T) {
	cv := New(32, 32)
	cv.FillRect(8, 8, 16, 16, color.NRGBA{R: 255, A: 255})

	if a := cv.Image().RGBAAt(16, 16).A; a == 0 {
		t.Error("inside the rect should be opaque")
	}
	if a := cv.Image().RGBAAt(2, 2).A; a != 0 {
		t.Error("outside the rect should stay transparent")
	}
}

func TestCompositeSourceOver(t *testing.T) {
	dst := New(16, 16)
	dst.FillRect(0, 0, 16, 16, color.NRGBA{R: 255, A: 255})

	src := New(16, 16)
	src.FillRect(0, 0, 8, 16, color.NRGBA{G: 255, A: 255})

	dst.Composite(src)

	left := dst.Image().RGBAAt(4, 8)
	if left.G == 0 || left.R != 0 {
		t.Errorf("left half should be the source green, got %v", left)
	}
	right := dst.Image().RGBAAt(12, 8)
	if right.R == 0 {
		t.Errorf("right half should keep the destination red, got %v", right)
	}
	// Transparent source pixels never erase the destination.
	if right.A == 0 {
		t.Error("destination alpha lost under transparent source")
	}
}

func TestBlurSpreadsAlpha(t *testing.T) {
	cv := New(32, 32)
	cv.FillRect(14, 14, 4, 4, color.NRGBA{R: 255, A: 255})
	cv.Blur(3)

	// A pixel just outside the square picks up partial alpha.
	a := cv.Image().RGBAAt(12, 16).A
	if a == 0 || a == 255 {
		t.Errorf("blur edge alpha = %d, want partial", a)
	}
	// Far corners stay transparent.
	if got := cv.Image().RGBAAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
}

func TestBlurZeroRadiusNoop(t *testing.T) {
	cv := New(16, 16)
	cv.FillRect(4, 4, 8, 8, color.NRGBA{B: 255, A: 200})
	before := append([]uint8(nil), cv.Image().Pix...)
	cv.Blur(0)
	for i := range before {
		if cv.Image().Pix[i] != before[i] {
			t.Fatal("Blur(0) must not modify pixels")
		}
	}
}

func TestRGBLerp(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 100, G: 200, B: 0}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("t=0 should return the receiver, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("t=1 should return the target, got %v", got)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 50 || mid.G != 150 || mid.B != 100 {
		t.Errorf("midpoint = %v", mid)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}.WithAlpha(99)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 99}
	if c != want {
		t.Errorf("WithAlpha = %v, want %v", c, want)
	}
}
