package inkfill

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"sync"
	"time"

	"github.com/inkfill/inkfill/store"
)

// defaultSaveDelay is the debounce window: rapid successive save
// requests within it coalesce into a single write.
const defaultSaveDelay = 500 * time.Millisecond

// keyPrefix namespaces all engine keys in the host store. Quota eviction
// only ever touches keys under this prefix.
const keyPrefix = "inkfill/"

// SaveStatus is the user-visible persistence state.
type SaveStatus int32

const (
	// SaveIdle means no save has been requested yet.
	SaveIdle SaveStatus = iota

	// SaveSaving means a write is pending or in flight.
	SaveSaving

	// SaveSaved means the latest write succeeded.
	SaveSaved

	// SaveError means the latest write failed even after eviction and
	// retry. Surfaced as a status, never as a thrown error.
	SaveError
)

// String returns a human-readable name for the status.
func (s SaveStatus) String() string {
	switch s {
	case SaveIdle:
		return "idle"
	case SaveSaving:
		return "saving"
	case SaveSaved:
		return "saved"
	case SaveError:
		return "error"
	default:
		return "unknown"
	}
}

// saver debounces canvas snapshots into a key-value store. Schedule is
// called on the interaction path and must not block; the actual write
// runs on the debounce timer's goroutine.
type saver struct {
	store store.Store
	key   string
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
	status  SaveStatus
	writeWG sync.WaitGroup
}

func newSaver(st store.Store, imageID string, delay time.Duration) *saver {
	if delay <= 0 {
		delay = defaultSaveDelay
	}
	return &saver{
		store:  st,
		key:    keyPrefix + imageID,
		delay:  delay,
		status: SaveIdle,
	}
}

// Status returns the current persistence status.
func (s *saver) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Schedule queues the payload for writing after the debounce delay,
// replacing any not-yet-written payload from an earlier call.
func (s *saver) Schedule(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = payload
	s.status = SaveSaving
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
	} else {
		s.timer.Reset(s.delay)
	}
}

// Flush writes any pending payload immediately and waits for in-flight
// writes to finish. Called on engine close.
func (s *saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	payload := s.pending
	s.pending = nil
	s.mu.Unlock()

	if payload != nil {
		s.write(payload)
	}
	s.writeWG.Wait()
}

// fire runs on the debounce timer goroutine.
func (s *saver) fire() {
	s.mu.Lock()
	payload := s.pending
	s.pending = nil
	s.writeWG.Add(1)
	s.mu.Unlock()
	defer s.writeWG.Done()

	if payload == nil {
		return
	}
	s.write(payload)
}

// write stores the payload, applying the quota policy: on a quota
// failure, evict every other key in the engine's namespace and retry
// exactly once.
func (s *saver) write(payload []byte) {
	err := s.store.Set(s.key, payload)
	if errors.Is(err, store.ErrQuotaExceeded) {
		s.evictOthers()
		err = s.store.Set(s.key, payload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = SaveError
		Logger().Warn("inkfill: save failed", "key", s.key, "error", err)
		return
	}
	// A Schedule that raced with this write keeps the status at Saving.
	if s.pending == nil {
		s.status = SaveSaved
	}
	Logger().Debug("inkfill: saved", "key", s.key, "bytes", len(payload))
}

// evictOthers deletes every key in the engine namespace except our own.
func (s *saver) evictOthers() {
	keys, err := s.store.Keys(keyPrefix)
	if err != nil {
		Logger().Warn("inkfill: eviction scan failed", "error", err)
		return
	}
	for _, k := range keys {
		if k == s.key {
			continue
		}
		if err := s.store.Delete(k); err != nil {
			Logger().Warn("inkfill: eviction delete failed", "key", k, "error", err)
		}
	}
}

// encodeSnapshot serializes the canvas as an 8-byte big-endian
// unix-milli timestamp followed by a PNG encoding.
func encodeSnapshot(canvas *Pixmap, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(now.UnixMilli()))
	buf.Write(ts[:])

	if err := png.Encode(&buf, canvas.ToImage()); err != nil {
		return nil, fmt.Errorf("inkfill: encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeSnapshot parses a stored payload back into pixel data. The
// decoded dimensions must match the expected canvas size.
func decodeSnapshot(payload []byte, width, height int) (data []uint8, savedAt time.Time, err error) {
	if len(payload) < 8 {
		return nil, time.Time{}, fmt.Errorf("inkfill: snapshot too short (%d bytes)", len(payload))
	}
	savedAt = time.UnixMilli(int64(binary.BigEndian.Uint64(payload[:8])))

	img, err := png.Decode(bytes.NewReader(payload[8:]))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("inkfill: decode snapshot: %w", err)
	}

	pm := FromImage(img)
	if pm.Width() != width || pm.Height() != height {
		return nil, time.Time{}, fmt.Errorf("inkfill: snapshot size %dx%d, want %dx%d",
			pm.Width(), pm.Height(), width, height)
	}
	return pm.Data(), savedAt, nil
}
