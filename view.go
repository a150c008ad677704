package inkfill

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// View zoom limits and step. Zoom 1 means fit-to-view; panning is only
// meaningful above that.
const (
	minZoom  = 1.0
	maxZoom  = 5.0
	zoomStep = 1.1
)

// gesture identifies which pointer interaction currently owns the view.
// Single-pointer drags and two-pointer pinches are mutually exclusive
// within one interaction session.
type gesture int

const (
	gestureNone gesture = iota
	gestureDrag
	gesturePinch
)

// View maps pointer and gesture input to canvas coordinates and visual
// placement. It never touches pixel data: the presentation layer queries
// it for the current transform and renders accordingly.
type View struct {
	zoom      float64
	panX      float64
	panY      float64
	active    gesture
	pinchBase float64
}

// NewView returns a view at fit-to-view zoom with no pan offset.
func NewView() *View {
	return &View{zoom: minZoom}
}

// Zoom returns the current zoom factor, always within [1, 5].
func (v *View) Zoom() float64 {
	return v.zoom
}

// Pan returns the current pan offset in screen units.
func (v *View) Pan() Point {
	return Point{X: v.panX, Y: v.panY}
}

// ZoomIn multiplies the zoom by a fixed step, clamped to the maximum.
func (v *View) ZoomIn() {
	v.setZoom(v.zoom * zoomStep)
}

// ZoomOut divides the zoom by a fixed step, clamped to the minimum.
// When zoom returns to 1 the pan offset snaps back to (0,0).
func (v *View) ZoomOut() {
	v.setZoom(v.zoom / zoomStep)
}

// setZoom clamps and applies a zoom value, enforcing the fit-to-view
// invariant: at zoom 1 the pan offset is always (0,0).
func (v *View) setZoom(z float64) {
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	v.zoom = z
	if v.zoom == minZoom {
		v.panX, v.panY = 0, 0
	}
}

// BeginDrag claims the interaction session for single-pointer panning.
// Returns false if a pinch is already in progress.
func (v *View) BeginDrag() bool {
	if v.active == gesturePinch {
		return false
	}
	v.active = gestureDrag
	return true
}

// BeginPinch claims the interaction session for two-pointer zooming,
// capturing the current zoom as the pinch baseline. Returns false if a
// drag is already in progress.
func (v *View) BeginPinch() bool {
	if v.active == gestureDrag {
		return false
	}
	v.active = gesturePinch
	v.pinchBase = v.zoom
	return true
}

// EndGesture releases the interaction session.
func (v *View) EndGesture() {
	v.active = gestureNone
}

// PinchTo sets the zoom to the pinch baseline multiplied by the distance
// ratio between the two pointers, clamped to the zoom bounds. It is a
// no-op unless a pinch session is active.
func (v *View) PinchTo(ratio float64) {
	if v.active != gesturePinch {
		return
	}
	v.setZoom(v.pinchBase * ratio)
}

// PanBy shifts the pan offset by (dx, dy) screen units. Panning is only
// meaningful when zoomed in: at zoom 1 the request is ignored, the
// offset stays (0,0), and PanBy returns false.
func (v *View) PanBy(dx, dy float64) bool {
	if v.zoom <= minZoom {
		v.panX, v.panY = 0, 0
		return false
	}
	v.panX += dx
	v.panY += dy
	return true
}

// Matrix returns the canvas-to-screen transform: scale by the zoom, then
// translate by the pan offset.
func (v *View) Matrix() Matrix {
	return Translate(v.panX, v.panY).Multiply(Scale(v.zoom, v.zoom))
}

// CanvasPoint maps a screen coordinate back into canvas space, for
// turning pointer positions into fill seeds.
func (v *View) CanvasPoint(screenX, screenY float64) Point {
	return v.Matrix().Invert().TransformPoint(Pt(screenX, screenY))
}

// RenderView draws the canvas into dst under the current transform,
// bilinearly scaled. dst's bounds define the viewport.
func (v *View) RenderView(dst *image.RGBA, canvas *Pixmap) {
	m := v.Matrix()
	src := canvas.ToImage()
	draw.ApproxBiLinear.Transform(dst,
		f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
		src, src.Bounds(), draw.Src, nil)
}
