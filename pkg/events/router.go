package events

// Handler processes routed events for one stage.
type Handler interface {
	// HandleEvent processes a single event. Called synchronously, in
	// FIFO order, while the owning stage dispatches the log.
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes.
	EventTypes() []Type
}

// Router dispatches a tick's events to the handlers of one stage.
//
// Multiple handlers can register for the same type; they run in
// registration order. A stage's router only sees the event types its
// handlers declare, but every router reads the same Log, so an event
// consumed by an early stage is still visible to a later one.
type Router struct {
	handlers map[Type][]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[Type][]Handler)}
}

// Register adds a handler for its declared event types.
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch seals the log and routes every event to the registered
// handlers in FIFO order. It returns the number of events handled.
func (r *Router) Dispatch(l *Log) int {
	l.sealed = true
	handled := 0
	for _, ev := range l.events {
		hs := r.handlers[ev.Type()]
		for _, h := range hs {
			h.HandleEvent(ev)
		}
		if len(hs) > 0 {
			handled++
		}
	}
	return handled
}
