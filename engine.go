package inkfill

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sync/atomic"
	"time"

	"github.com/inkfill/inkfill/store"
)

// Engine is the region-fill engine for one editing session. It owns the
// immutable reference, the mutable canvas, the undo history, the view
// transform, and the persistence schedule, exposing plain methods with
// no dependency on any UI framework.
//
// Pixel mutation is synchronous and expected to run on a single
// interaction goroutine; concurrent fills are rejected via a busy flag.
type Engine struct {
	ref     *Reference
	canvas  *Pixmap
	hist    *history
	view    *View
	saver   *saver
	events  EventFunc
	outline OutlineStyle
	filling atomic.Bool
}

// EncodeFormat selects the raster encoding for Encode.
type EncodeFormat int

const (
	// FormatPNG encodes losslessly; the quality argument is ignored.
	FormatPNG EncodeFormat = iota

	// FormatJPEG encodes at the given quality (1-100; 0 means 90).
	FormatJPEG
)

// New creates an engine for the given decoded line art. The canvas
// starts as a copy of the reference; if a store is configured and holds
// a prior snapshot under the image ID, the session resumes with that
// snapshot as history index 0.
func New(src image.Image, opts ...Option) (*Engine, error) {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("inkfill: invalid dimensions: %dx%d (both must be > 0)",
			bounds.Dx(), bounds.Dy())
	}

	ref := NewReference(FromImage(src))
	e := &Engine{
		ref:     ref,
		canvas:  ref.Pixmap(),
		hist:    newHistory(options.historyCap),
		view:    NewView(),
		events:  options.events,
		outline: options.outline,
	}

	if options.store != nil {
		e.saver = newSaver(options.store, options.imageID, options.saveDelay)
		e.restore(options.store)
	}

	if e.outline != DefaultOutlineStyle() {
		applyOutline(e.ref, e.canvas, e.outline)
	}

	e.hist.reset(e.canvas.data)
	return e, nil
}

// restore loads a prior snapshot, if any, before the first history
// snapshot is pushed. A malformed or mismatched snapshot is logged and
// ignored; the session then starts fresh.
func (e *Engine) restore(st store.Store) {
	payload, ok, err := st.Get(e.saver.key)
	if err != nil {
		Logger().Warn("inkfill: restore failed", "key", e.saver.key, "error", err)
		return
	}
	if !ok {
		return
	}

	data, savedAt, err := decodeSnapshot(payload, e.canvas.width, e.canvas.height)
	if err != nil {
		Logger().Warn("inkfill: restore failed", "key", e.saver.key, "error", err)
		return
	}
	e.canvas.SetData(data)
	applyOutline(e.ref, e.canvas, e.outline)
	Logger().Info("inkfill: session restored", "key", e.saver.key, "savedAt", savedAt)
}

// Width returns the canvas width in pixels.
func (e *Engine) Width() int { return e.canvas.width }

// Height returns the canvas height in pixels.
func (e *Engine) Height() int { return e.canvas.height }

// Reference returns the immutable classification source.
func (e *Engine) Reference() *Reference { return e.ref }

// View returns the zoom/pan transform for this session.
func (e *Engine) View() *View { return e.view }

// Fill floods the 4-connected fillable region around the seed with the
// given fill spec. A seed that is out of bounds, on a boundary pixel, or
// already carrying the requested solid color yields FillNoOp with no
// canvas or history mutation. A malformed fill spec is rejected before
// any traversal. A fill arriving while another is in progress yields
// FillBusy.
func (e *Engine) Fill(x, y int, fill Fill) (FillOutcome, error) {
	if err := fill.Validate(); err != nil {
		return FillNoOp, err
	}

	if !e.filling.CompareAndSwap(false, true) {
		return FillBusy, nil
	}
	defer e.filling.Store(false)

	if !e.ref.In(x, y) || e.ref.IsBoundary(x, y) {
		return FillNoOp, nil
	}

	if solid, ok := fill.(SolidFill); ok && e.canvas.PixelEqualsRGB(x, y, solid.Color) {
		return FillNoOp, nil
	}

	reg := traceRegion(e.ref, x, y)

	switch f := fill.(type) {
	case SolidFill:
		paintSolid(e.canvas, reg, f.Color)
	case GradientFill:
		paintGradient(e.canvas, reg, f)
	}

	Logger().Debug("inkfill: filled region",
		"seedX", x, "seedY", y, "pixels", len(reg.indices),
		"minY", reg.minY, "maxY", reg.maxY)

	e.hist.push(e.canvas.data)
	e.scheduleSave()
	e.emit(EventFilled)
	return FillApplied, nil
}

// SetOutlineStyle recomputes the line-halo pixels under the new style.
// Region pixels are untouched; no history entry is recorded.
func (e *Engine) SetOutlineStyle(style OutlineStyle) {
	e.outline = style
	applyOutline(e.ref, e.canvas, style)
	e.scheduleSave()
}

// OutlineStyle returns the current outline style.
func (e *Engine) OutlineStyle() OutlineStyle {
	return e.outline
}

// Undo restores the previous history snapshot. Returns false at the
// oldest entry. The current outline style is re-applied after the
// restore, since a snapshot's raw pixels reflect whatever style was
// active when it was taken.
func (e *Engine) Undo() bool {
	data, ok := e.hist.undo()
	if !ok {
		return false
	}
	e.canvas.SetData(data)
	applyOutline(e.ref, e.canvas, e.outline)
	e.scheduleSave()
	e.emit(EventUndone)
	return true
}

// Redo restores the next history snapshot. Returns false at the newest
// entry.
func (e *Engine) Redo() bool {
	data, ok := e.hist.redo()
	if !ok {
		return false
	}
	e.canvas.SetData(data)
	applyOutline(e.ref, e.canvas, e.outline)
	e.scheduleSave()
	e.emit(EventRedone)
	return true
}

// Reset clears all fills, returning the canvas to the unfilled reference
// copy under the current outline style, and reseeds the history with
// that single baseline snapshot.
func (e *Engine) Reset() {
	e.canvas = e.ref.Pixmap()
	applyOutline(e.ref, e.canvas, e.outline)
	e.hist.reset(e.canvas.data)
	e.scheduleSave()
	e.emit(EventCleared)
}

// Image returns a copy of the current canvas for presentation.
func (e *Engine) Image() *image.RGBA {
	return e.canvas.ToImage()
}

// Canvas returns the live canvas buffer. Callers must treat it as
// read-only; all mutation goes through the engine.
func (e *Engine) Canvas() *Pixmap {
	return e.canvas
}

// Encode writes the current canvas as an encoded raster for the export
// collaborator. quality applies to JPEG only (1-100; 0 means 90).
func (e *Engine) Encode(w io.Writer, format EncodeFormat, quality int) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, e.canvas.ToImage())
	case FormatJPEG:
		if quality <= 0 {
			quality = 90
		}
		if quality > 100 {
			quality = 100
		}
		return jpeg.Encode(w, e.canvas.ToImage(), &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("inkfill: unknown encode format %d", format)
	}
}

// SaveStatus returns the persistence indicator: idle, saving, saved, or
// error. Without a configured store it is always idle.
func (e *Engine) SaveStatus() SaveStatus {
	if e.saver == nil {
		return SaveIdle
	}
	return e.saver.Status()
}

// scheduleSave captures the canvas and queues a debounced write. The
// snapshot is encoded up front so the write goroutine never touches the
// live canvas.
func (e *Engine) scheduleSave() {
	if e.saver == nil {
		return
	}
	payload, err := encodeSnapshot(e.canvas, time.Now())
	if err != nil {
		Logger().Warn("inkfill: snapshot encode failed", "error", err)
		return
	}
	e.saver.Schedule(payload)
}

// Close flushes any pending save. The engine must not be used after
// Close.
func (e *Engine) Close() error {
	if e.saver != nil {
		e.saver.Flush()
	}
	return nil
}
