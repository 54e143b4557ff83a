package dom

// Event types the positioning engine reacts to.
const (
	EventScroll = "scroll"
	EventResize = "resize"
)

// Event is delivered to listeners registered on the target element.
type Event struct {
	Type   string
	Target *Element
}

// HandlerFunc handles a dispatched event.
type HandlerFunc func(Event)

// Listener is the registration handle returned by AddEventListener.
// Removal goes through the handle because Go functions are not
// comparable.
type Listener struct {
	Type    string
	fn      HandlerFunc
	removed bool
}

// AddEventListener registers a handler for the given event type and
// returns the handle needed to remove it.
func (e *Element) AddEventListener(eventType string, fn HandlerFunc) *Listener {
	l := &Listener{Type: eventType, fn: fn}
	e.listeners = append(e.listeners, l)
	return l
}

// RemoveEventListener deregisters the handle. Removing an already-removed
// or foreign handle is a no-op.
func (e *Element) RemoveEventListener(l *Listener) {
	for i, candidate := range e.listeners {
		if candidate == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			l.removed = true
			return
		}
	}
}

// ListenerCount returns the number of live listeners for the given event
// type. Used to verify cleanup across open/close cycles.
func (e *Element) ListenerCount(eventType string) int {
	n := 0
	for _, l := range e.listeners {
		if l.Type == eventType {
			n++
		}
	}
	return n
}

// DispatchEvent invokes every listener registered for the event's type.
// Listeners removed during dispatch are skipped.
func (e *Element) DispatchEvent(ev Event) {
	// Snapshot: a handler may remove itself or close a popup that
	// removes other handlers.
	snapshot := make([]*Listener, len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		if l.removed || l.Type != ev.Type {
			continue
		}
		l.fn(ev)
	}
}

// AddEventListener registers a document-level handler on the root.
func (d *Document) AddEventListener(eventType string, fn HandlerFunc) *Listener {
	return d.Root.AddEventListener(eventType, fn)
}

// RemoveEventListener removes a document-level handler.
func (d *Document) RemoveEventListener(l *Listener) {
	d.Root.RemoveEventListener(l)
}
