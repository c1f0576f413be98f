package host

import "time"

// EventKind classifies host events.
type EventKind string

const (
	EventOpen    EventKind = "open"
	EventClose   EventKind = "close"
	EventPause   EventKind = "pause"
	EventResume  EventKind = "resume"
	EventRestart EventKind = "restart"
	EventBest    EventKind = "best"
	EventError   EventKind = "error"
)

// Event is a lifecycle notification, mirrored into the debug log view.
type Event struct {
	Time   time.Time
	Kind   EventKind
	Game   string
	Detail string
}

// Subscribe registers fn to receive every event.
func (h *Host) Subscribe(fn func(Event)) {
	h.listeners = append(h.listeners, fn)
}

func (h *Host) emit(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	for _, fn := range h.listeners {
		fn(e)
	}
}
