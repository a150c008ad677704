package inkfill

// FillOutcome reports what a Fill call did.
type FillOutcome int

const (
	// FillNoOp means nothing changed: the seed was out of bounds, on a
	// boundary pixel, or the region already had the requested color.
	FillNoOp FillOutcome = iota

	// FillApplied means the region was painted and a history snapshot
	// was pushed.
	FillApplied

	// FillBusy means another fill was already in progress and the
	// request was rejected.
	FillBusy
)

// String returns a human-readable name for the outcome.
func (o FillOutcome) String() string {
	switch o {
	case FillNoOp:
		return "noop"
	case FillApplied:
		return "applied"
	case FillBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// region is the result of a flood traversal: the explicit set of pixel
// indices (y*width + x) reachable from the seed, plus the row extent
// used to place a vertical gradient.
type region struct {
	indices []int
	minY    int
	maxY    int
}

// traceRegion performs a breadth-first traversal of the 4-connected
// fillable region around the seed. A neighbor is enqueued only if it is
// not a boundary pixel under the reference; the canvas plays no part in
// classification. The caller must ensure the seed itself is in bounds
// and fillable.
//
// Worst case O(W*H) with one visited bitmap per call.
func traceRegion(ref *Reference, seedX, seedY int) region {
	w, h := ref.width, ref.height
	visited := make([]bool, w*h)

	seed := seedY*w + seedX
	visited[seed] = true

	queue := make([]int, 0, 64)
	queue = append(queue, seed)

	reg := region{
		indices: make([]int, 0, 64),
		minY:    seedY,
		maxY:    seedY,
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		reg.indices = append(reg.indices, cur)
		y := cur / w
		x := cur - y*w
		if y < reg.minY {
			reg.minY = y
		}
		if y > reg.maxY {
			reg.maxY = y
		}

		// 4-connected neighbors: left, right, up, down.
		if x > 0 && !visited[cur-1] && !ref.IsBoundary(x-1, y) {
			visited[cur-1] = true
			queue = append(queue, cur-1)
		}
		if x < w-1 && !visited[cur+1] && !ref.IsBoundary(x+1, y) {
			visited[cur+1] = true
			queue = append(queue, cur+1)
		}
		if y > 0 && !visited[cur-w] && !ref.IsBoundary(x, y-1) {
			visited[cur-w] = true
			queue = append(queue, cur-w)
		}
		if y < h-1 && !visited[cur+w] && !ref.IsBoundary(x, y+1) {
			visited[cur+w] = true
			queue = append(queue, cur+w)
		}
	}

	return reg
}

// paintSolid writes the color into every region pixel, fully opaque.
func paintSolid(canvas *Pixmap, reg region, c RGBA) {
	r, g, b, _ := c.bytes()
	data := canvas.data
	for _, idx := range reg.indices {
		i := idx * 4
		data[i+0] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = 255
	}
}

// paintGradient renders a vertical linear gradient across the region's
// row extent [minY, maxY] and writes the per-row color into every region
// pixel, fully opaque. The gradient is applied directly over the
// explicit pixel index set collected during traversal.
func paintGradient(canvas *Pixmap, reg region, f GradientFill) {
	stops := f.colorStops()
	span := reg.maxY - reg.minY

	// Precompute one color per row of the region's extent.
	type rowColor struct{ r, g, b uint8 }
	rows := make([]rowColor, span+1)
	for i := range rows {
		t := 0.0
		if span > 0 {
			t = float64(i) / float64(span)
		}
		r, g, b, _ := colorAtOffset(stops, t).bytes()
		rows[i] = rowColor{r, g, b}
	}

	w := canvas.width
	data := canvas.data
	for _, idx := range reg.indices {
		y := idx / w
		rc := rows[y-reg.minY]
		i := idx * 4
		data[i+0] = rc.r
		data[i+1] = rc.g
		data[i+2] = rc.b
		data[i+3] = 255
	}
}
