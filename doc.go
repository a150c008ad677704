// Package inkfill provides a boundary-aware region-fill engine for
// interactively recoloring black-and-white line art.
//
// # Overview
//
// inkfill operates on raster RGBA pixel buffers. An immutable reference
// copy of the original line art drives all boundary classification, while
// a mutable canvas holds the composited result the user sees. Clicking an
// enclosed region floods it with a solid color or a vertical gradient,
// bounded exactly by the dark line pixels of the reference. The engine
// also handles outline tinting, bounded undo/redo history, zoom/pan view
// mapping, and debounced persistence to an injected key-value store.
//
// # Quick Start
//
//	import "github.com/inkfill/inkfill"
//
//	// src is a decoded image.Image supplied by the host.
//	eng, err := inkfill.New(src, inkfill.WithImageID("page-42"))
//	if err != nil {
//		// ...
//	}
//	defer eng.Close()
//
//	// Fill the region under a click with red.
//	eng.Fill(120, 80, inkfill.Solid(inkfill.Red))
//
//	// Undo it again.
//	eng.Undo()
//
//	// Export the result.
//	eng.Encode(w, inkfill.FormatPNG, 0)
//
// # Boundary Classification
//
// Two distinct brightness thresholds are used, both measured on the
// immutable reference and never on the canvas:
//   - boundary pixels (brightness < 100) block flood fill
//   - line-halo pixels (brightness < 250) receive outline tinting,
//     a superset that includes anti-aliased edges
//
// Because classification never reads the canvas, previously filled pixels
// can never become barriers, and fills can never overwrite the line art.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Pixel mutation (fill, outline recompute, history restore) is synchronous
// and single-threaded; fills are mutually exclusive via a busy flag. The
// only asynchronous path is the debounced persistence save, which runs off
// the interaction path and never blocks further edits.
package inkfill
