package inkfill

import (
	"image"
	"testing"
)

// ringImage builds a w×h pure-white NRGBA image with a black ring
// (brightness 0) between inner and outer radius around the center. The
// ring encloses a white disc; everything outside it is white background.
func ringImage(w, h, inner, outer int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	cx, cy := w/2, h/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			d2 := dx*dx + dy*dy
			if d2 <= outer*outer && d2 >= inner*inner {
				i := (y*w + x) * 4
				img.Pix[i+0] = 0
				img.Pix[i+1] = 0
				img.Pix[i+2] = 0
			}
		}
	}
	return img
}

// grayImage builds a w×h NRGBA image with every pixel set to the given
// gray level.
func grayImage(w, h int, level uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = level
		img.Pix[i+1] = level
		img.Pix[i+2] = level
		img.Pix[i+3] = 255
	}
	return img
}

// newTestEngine creates an engine over a 20×20 ring image and fails the
// test on error.
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	eng, err := New(ringImage(20, 20, 5, 7), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

// pixelRGB returns the 8-bit RGB bytes of a canvas pixel.
func pixelRGB(pm *Pixmap, x, y int) (r, g, b uint8) {
	i := (y*pm.Width() + x) * 4
	d := pm.Data()
	return d[i], d[i+1], d[i+2]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
