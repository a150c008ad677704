package inkfill

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/inkfill/inkfill/store"
)

// waitStatus polls until the saver reaches the wanted status or the
// deadline passes.
func waitStatus(t *testing.T, s *saver, want SaveStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Status() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status: got %v, want %v", s.Status(), want)
}

// failingStore wraps a Store and fails Set a fixed number of times with
// a quota error.
type failingStore struct {
	store.Store
	failures int
}

func (f *failingStore) Set(key string, value []byte) error {
	if f.failures > 0 {
		f.failures--
		return store.ErrQuotaExceeded
	}
	return f.Store.Set(key, value)
}

// brokenStore always fails Set.
type brokenStore struct{ store.Store }

func (brokenStore) Set(string, []byte) error { return errors.New("disk on fire") }

// TestSaver_Debounce verifies rapid schedules coalesce into a single
// write holding the latest payload.
func TestSaver_Debounce(t *testing.T) {
	mem := store.NewMemory(0)
	s := newSaver(mem, "img", 20*time.Millisecond)

	s.Schedule([]byte("first"))
	s.Schedule([]byte("second"))
	s.Schedule([]byte("third"))

	if got := s.Status(); got != SaveSaving {
		t.Errorf("status while pending: got %v, want %v", got, SaveSaving)
	}

	waitStatus(t, s, SaveSaved)

	if got := mem.Stats().Sets; got != 1 {
		t.Errorf("writes: got %d, want 1 (coalesced)", got)
	}
	v, ok, err := mem.Get("inkfill/img")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(v, []byte("third")) {
		t.Errorf("stored payload: got %q, want %q", v, "third")
	}
}

// TestSaver_QuotaEvictRetry covers the quota policy: a quota-exceeded Set,
// then successful eviction and a retry that succeeds, ends in Saved,
// not Error.
func TestSaver_QuotaEvictRetry(t *testing.T) {
	// Budget fits one 40-byte snapshot but not two plus the stale keys.
	mem := store.NewMemory(64)
	if err := mem.Set("inkfill/stale-1", make([]byte, 30)); err != nil {
		t.Fatalf("seed stale-1: %v", err)
	}
	if err := mem.Set("inkfill/stale-2", make([]byte, 30)); err != nil {
		t.Fatalf("seed stale-2: %v", err)
	}

	s := newSaver(mem, "current", time.Millisecond)
	s.Schedule(make([]byte, 40))
	waitStatus(t, s, SaveSaved)

	if _, ok, _ := mem.Get("inkfill/stale-1"); ok {
		t.Error("stale-1 survived eviction")
	}
	if _, ok, _ := mem.Get("inkfill/stale-2"); ok {
		t.Error("stale-2 survived eviction")
	}
	if _, ok, _ := mem.Get("inkfill/current"); !ok {
		t.Error("current snapshot missing after retry")
	}
}

// TestSaver_EvictionSparesOwnKey verifies eviction never deletes the
// key being written.
func TestSaver_EvictionSparesOwnKey(t *testing.T) {
	mem := store.NewMemory(0)
	if err := mem.Set("inkfill/current", []byte("old")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set("inkfill/other", []byte("bye")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set("unrelated/key", []byte("keep")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// One quota failure forces the eviction path, then the write lands.
	fs := &failingStore{Store: mem, failures: 1}
	s := newSaver(fs, "current", time.Millisecond)
	s.Schedule([]byte("new"))
	waitStatus(t, s, SaveSaved)

	if _, ok, _ := mem.Get("inkfill/other"); ok {
		t.Error("namespace sibling survived eviction")
	}
	if _, ok, _ := mem.Get("unrelated/key"); !ok {
		t.Error("key outside the namespace was evicted")
	}
	v, ok, _ := mem.Get("inkfill/current")
	if !ok || !bytes.Equal(v, []byte("new")) {
		t.Errorf("current key: got %q (ok=%v), want %q", v, ok, "new")
	}
}

// TestSaver_RetryFailsOnce verifies exactly one retry: two consecutive
// quota failures end in Error.
func TestSaver_RetryFailsOnce(t *testing.T) {
	fs := &failingStore{Store: store.NewMemory(0), failures: 2}
	s := newSaver(fs, "img", time.Millisecond)
	s.Schedule([]byte("payload"))
	waitStatus(t, s, SaveError)

	if fs.failures != 0 {
		t.Errorf("Set attempts: %d failure budget left, want 0 (one retry only)", fs.failures)
	}
}

// TestSaver_NonQuotaErrorNoEviction verifies a non-quota failure is
// reported without triggering eviction.
func TestSaver_NonQuotaErrorNoEviction(t *testing.T) {
	mem := store.NewMemory(0)
	if err := mem.Set("inkfill/other", []byte("keep")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := newSaver(brokenStore{mem}, "img", time.Millisecond)
	s.Schedule([]byte("payload"))
	waitStatus(t, s, SaveError)

	if _, ok, _ := mem.Get("inkfill/other"); !ok {
		t.Error("sibling evicted on a non-quota failure")
	}
}

// TestSaver_Flush verifies Close-time flush writes a pending payload
// without waiting for the debounce window.
func TestSaver_Flush(t *testing.T) {
	mem := store.NewMemory(0)
	s := newSaver(mem, "img", time.Hour)
	s.Schedule([]byte("pending"))
	s.Flush()

	v, ok, err := mem.Get("inkfill/img")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(v, []byte("pending")) {
		t.Errorf("payload: got %q, want %q", v, "pending")
	}
	if got := s.Status(); got != SaveSaved {
		t.Errorf("status after flush: got %v, want %v", got, SaveSaved)
	}
}

// TestSnapshot_RoundTrip verifies the timestamp+PNG payload encoding.
func TestSnapshot_RoundTrip(t *testing.T) {
	pm := FromImage(ringImage(12, 12, 3, 4))
	now := time.UnixMilli(1724661234567)

	payload, err := encodeSnapshot(pm, now)
	if err != nil {
		t.Fatalf("encodeSnapshot: %v", err)
	}

	data, savedAt, err := decodeSnapshot(payload, 12, 12)
	if err != nil {
		t.Fatalf("decodeSnapshot: %v", err)
	}
	if !savedAt.Equal(now) {
		t.Errorf("savedAt: got %v, want %v", savedAt, now)
	}
	if !bytes.Equal(data, pm.Data()) {
		t.Error("decoded pixels differ from the encoded canvas")
	}
}

// TestSnapshot_Malformed verifies short and mismatched payloads are
// rejected.
func TestSnapshot_Malformed(t *testing.T) {
	if _, _, err := decodeSnapshot([]byte{1, 2, 3}, 4, 4); err == nil {
		t.Error("short payload accepted")
	}

	pm := NewPixmap(4, 4)
	payload, err := encodeSnapshot(pm, time.Now())
	if err != nil {
		t.Fatalf("encodeSnapshot: %v", err)
	}
	if _, _, err := decodeSnapshot(payload, 8, 8); err == nil {
		t.Error("size-mismatched payload accepted")
	}
}
