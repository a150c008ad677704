package inkfill

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

// TestPixmap_SetGetPixel verifies the round trip through the float
// color type.
func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, Red)

	c := pm.GetPixel(3, 7)
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("GetPixel: got %+v, want red", c)
	}
}

// TestPixmap_OutOfBounds verifies out-of-bounds access is silently
// ignored on write and reads transparent.
func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d,%d): got %+v, want transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

// TestPixmap_Clone verifies the copy is independent of the original.
func TestPixmap_Clone(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Blue)

	dup := pm.Clone()
	dup.SetPixel(0, 0, Red)

	if got := pm.GetPixel(0, 0); got != Blue {
		t.Errorf("original changed after clone mutation: got %+v, want blue", got)
	}
	if dup.Width() != 4 || dup.Height() != 4 {
		t.Errorf("clone dimensions: got %dx%d, want 4x4", dup.Width(), dup.Height())
	}
}

// TestPixmap_SetData verifies bulk restore and the length guard.
func TestPixmap_SetData(t *testing.T) {
	pm := NewPixmap(2, 2)
	snap := make([]uint8, 16)
	for i := range snap {
		snap[i] = uint8(i)
	}
	pm.SetData(snap)
	if pm.Data()[5] != 5 {
		t.Errorf("data[5]: got %d, want 5", pm.Data()[5])
	}

	// Snapshot and buffer must not alias.
	snap[5] = 99
	if pm.Data()[5] != 5 {
		t.Error("SetData aliased the source slice")
	}

	// A mismatched length is ignored.
	pm.SetData(make([]uint8, 4))
	if pm.Data()[5] != 5 {
		t.Error("mismatched SetData modified the buffer")
	}
}

// TestPixmap_PixelEqualsRGB verifies the alpha-ignoring comparison used
// by the fill idempotence check.
func TestPixmap_PixelEqualsRGB(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 1, Red)

	if !pm.PixelEqualsRGB(1, 1, Red) {
		t.Error("exact match: got false, want true")
	}
	if !pm.PixelEqualsRGB(1, 1, RGBA{R: 1, G: 0, B: 0, A: 0.3}) {
		t.Error("alpha-only difference: got false, want true")
	}
	if pm.PixelEqualsRGB(1, 1, Green) {
		t.Error("different RGB: got true, want false")
	}
	if pm.PixelEqualsRGB(-1, 0, Red) {
		t.Error("out of bounds: got true, want false")
	}
}

// TestFromImage_Offsets verifies images with non-zero bounds convert
// correctly.
func TestFromImage_Offsets(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 8, 8))
	img.SetNRGBA(6, 7, color.NRGBA{R: 255, A: 255})

	pm := FromImage(img)
	if pm.Width() != 3 || pm.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", pm.Width(), pm.Height())
	}
	if r, g, b := pixelRGB(pm, 1, 2); r != 255 || g != 0 || b != 0 {
		t.Errorf("offset pixel: got (%d,%d,%d), want red", r, g, b)
	}
}

// TestPixmap_ToImage verifies the image.RGBA export shares no storage
// with the pixmap.
func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)

	img := pm.ToImage()
	img.Pix[0] = 0
	if pm.Data()[0] != 255 {
		t.Error("ToImage aliased the pixmap buffer")
	}
}
