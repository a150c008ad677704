package inkfill

import (
	"time"

	"github.com/inkfill/inkfill/store"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// In-memory session with defaults
//	eng, err := inkfill.New(src)
//
//	// Resumable session persisted to a host store
//	eng, err := inkfill.New(src,
//	    inkfill.WithStore(kv),
//	    inkfill.WithImageID("page-42"))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	store      store.Store
	imageID    string
	historyCap int
	saveDelay  time.Duration
	events     EventFunc
	outline    OutlineStyle
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		imageID:    "default",
		historyCap: defaultHistoryCap,
		saveDelay:  defaultSaveDelay,
		outline:    DefaultOutlineStyle(),
	}
}

// WithStore sets the key-value store progress is persisted into.
// Without a store the engine still works; it just cannot save or resume.
func WithStore(s store.Store) Option {
	return func(o *engineOptions) {
		o.store = s
	}
}

// WithImageID sets the image identity used as the persistence key.
// Sessions with the same ID resume each other's progress.
func WithImageID(id string) Option {
	return func(o *engineOptions) {
		o.imageID = id
	}
}

// WithHistoryCap overrides the undo stack depth (default 20).
func WithHistoryCap(n int) Option {
	return func(o *engineOptions) {
		o.historyCap = n
	}
}

// WithSaveDelay overrides the persistence debounce window (default 500ms).
func WithSaveDelay(d time.Duration) Option {
	return func(o *engineOptions) {
		o.saveDelay = d
	}
}

// WithEvents sets the fire-and-forget event sink.
func WithEvents(fn EventFunc) Option {
	return func(o *engineOptions) {
		o.events = fn
	}
}

// WithOutlineStyle sets the initial outline style.
func WithOutlineStyle(style OutlineStyle) Option {
	return func(o *engineOptions) {
		o.outline = style
	}
}
