package inkfill

// defaultHistoryCap bounds the undo stack. Snapshots are full canvas
// copies, so the cap also bounds memory: cap * W * H * 4 bytes.
const defaultHistoryCap = 20

// history is a bounded linear undo/redo stack of full canvas snapshots.
// The index always points at the snapshot matching the current canvas,
// so it stays within [0, len(snaps)-1] whenever the stack is non-empty.
type history struct {
	snaps [][]uint8
	index int
	cap   int
}

func newHistory(cap int) *history {
	if cap <= 0 {
		cap = defaultHistoryCap
	}
	return &history{cap: cap, index: -1}
}

// push records a snapshot of the given pixel data. Any entries after the
// current index become unreachable (classic linear undo/redo). When the
// stack exceeds its cap, the oldest entry is evicted and the index
// shifts down by one.
func (h *history) push(data []uint8) {
	snap := make([]uint8, len(data))
	copy(snap, data)

	h.snaps = h.snaps[:h.index+1]
	h.snaps = append(h.snaps, snap)
	h.index++

	if len(h.snaps) > h.cap {
		h.snaps = h.snaps[1:]
		h.index--
	}
}

// undo steps back one snapshot. Returns the snapshot to restore and true,
// or nil and false when already at the oldest entry.
func (h *history) undo() ([]uint8, bool) {
	if h.index <= 0 {
		return nil, false
	}
	h.index--
	return h.snaps[h.index], true
}

// redo steps forward one snapshot. Returns the snapshot to restore and
// true, or nil and false when already at the newest entry.
func (h *history) redo() ([]uint8, bool) {
	if h.index >= len(h.snaps)-1 {
		return nil, false
	}
	h.index++
	return h.snaps[h.index], true
}

// reset clears the stack and seeds it with the given baseline snapshot.
func (h *history) reset(data []uint8) {
	snap := make([]uint8, len(data))
	copy(snap, data)
	h.snaps = h.snaps[:0]
	h.snaps = append(h.snaps, snap)
	h.index = 0
}

// len returns the number of snapshots currently held.
func (h *history) len() int {
	return len(h.snaps)
}
