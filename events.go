package inkfill

// Event is a fire-and-forget notification about a completed canvas
// operation, consumed by an external feedback collaborator (audio,
// haptics). The engine never depends on delivery succeeding.
type Event int

const (
	// EventFilled fires after a fill mutates the canvas.
	EventFilled Event = iota

	// EventUndone fires after a successful undo.
	EventUndone

	// EventRedone fires after a successful redo.
	EventRedone

	// EventCleared fires after the canvas resets to the unfilled state.
	EventCleared
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFilled:
		return "filled"
	case EventUndone:
		return "undone"
	case EventRedone:
		return "redone"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// EventFunc receives engine events. Implementations should return
// quickly; the engine calls them synchronously on the interaction path.
type EventFunc func(Event)

// emit delivers an event to the configured sink, if any.
func (e *Engine) emit(ev Event) {
	if e.events != nil {
		e.events(ev)
	}
}
