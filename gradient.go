package inkfill

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// evenStops spreads the given colors evenly across [0, 1].
// A vertical fill gradient lists its colors top to bottom; the stop
// offsets follow from their order.
func evenStops(colors []RGBA) []ColorStop {
	stops := make([]ColorStop, len(colors))
	n := len(colors)
	for i, c := range colors {
		off := 0.0
		if n > 1 {
			off = float64(i) / float64(n-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return stops
}

// sortStops sorts color stops by offset without modifying the original.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// colorAtOffset returns the interpolated color at a given offset.
// t is clamped to [0, 1]. Handles edge cases: empty stops, single stop,
// coincident stops.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	// Edge case: no stops
	if len(stops) == 0 {
		return Transparent
	}

	// Edge case: single stop
	if len(stops) == 1 {
		return stops[0].Color
	}

	// Sort stops if needed (defensive, callers should pre-sort)
	sorted := sortStops(stops)

	t = clamp01(t)

	// Find the two stops to interpolate between
	// Binary search for efficiency
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return stop1.Color.Lerp(stop2.Color, localT)
}
