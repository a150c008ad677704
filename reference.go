package inkfill

// Brightness thresholds for pixel classification, measured on the
// immutable reference as (R+G+B)/3 over 8-bit channels.
//
// The two values are deliberately distinct: the fill boundary is the
// crisp dark line itself, while the outline halo also captures the
// anti-aliased fringe around it. Collapsing them changes visual
// fidelity (aliased or over-tinted line edges).
const (
	// boundaryThreshold marks pixels dark enough to block flood fill.
	boundaryThreshold = 100

	// lineHaloThreshold marks pixels subject to outline tinting,
	// a superset of boundary pixels.
	lineHaloThreshold = 250
)

// Reference is an immutable snapshot of the original line art. It is the
// sole source of boundary classification: fills and outline tinting both
// classify pixels against the reference, never against the mutable
// canvas, so prior paint can neither become a barrier nor leak across a
// painted boundary.
type Reference struct {
	width  int
	height int
	data   []uint8
}

// NewReference snapshots the given pixmap as the immutable reference.
func NewReference(pm *Pixmap) *Reference {
	data := make([]uint8, len(pm.data))
	copy(data, pm.data)
	return &Reference{width: pm.width, height: pm.height, data: data}
}

// Width returns the width of the reference in pixels.
func (r *Reference) Width() int {
	return r.width
}

// Height returns the height of the reference in pixels.
func (r *Reference) Height() int {
	return r.height
}

// In reports whether the coordinates lie within the reference bounds.
func (r *Reference) In(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// BrightnessAt returns the average of the 8-bit R, G, and B channels at
// (x, y). Out-of-bounds coordinates read as fully bright (255), i.e.
// neither boundary nor halo.
func (r *Reference) BrightnessAt(x, y int) int {
	if !r.In(x, y) {
		return 255
	}
	i := (y*r.width + x) * 4
	return (int(r.data[i+0]) + int(r.data[i+1]) + int(r.data[i+2])) / 3
}

// IsBoundary reports whether the pixel at (x, y) is part of the line art
// and therefore impassable to flood fill.
func (r *Reference) IsBoundary(x, y int) bool {
	return r.BrightnessAt(x, y) < boundaryThreshold
}

// IsLineHalo reports whether the pixel at (x, y) belongs to the line
// halo: the line art plus its anti-aliased fringe, subject to outline
// tinting.
func (r *Reference) IsLineHalo(x, y int) bool {
	return r.BrightnessAt(x, y) < lineHaloThreshold
}

// brightnessAtIndex is the index-addressed form of BrightnessAt used by
// the per-pixel passes. idx is a pixel index (y*width + x).
func (r *Reference) brightnessAtIndex(idx int) int {
	i := idx * 4
	return (int(r.data[i+0]) + int(r.data[i+1]) + int(r.data[i+2])) / 3
}

// Pixmap returns a mutable copy of the reference, used to seed a fresh
// canvas.
func (r *Reference) Pixmap() *Pixmap {
	data := make([]uint8, len(r.data))
	copy(data, r.data)
	return &Pixmap{width: r.width, height: r.height, data: data}
}
