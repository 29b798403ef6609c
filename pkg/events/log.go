package events

import "errors"

// ErrSealed is returned when a producer emits after a consumer stage
// has started reading the tick's events.
var ErrSealed = errors.New("events: log sealed for this tick")

// Log is the per-tick event queue. It is not safe for concurrent use;
// the simulation runs all stages on one goroutine.
type Log struct {
	events []Event
	sealed bool
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Emit appends an event. Once any stage has dispatched the log, further
// emits fail with ErrSealed until Reset.
func (l *Log) Emit(ev Event) error {
	if l.sealed {
		return ErrSealed
	}
	l.events = append(l.events, ev)
	return nil
}

// Events returns the events emitted this tick in FIFO order.
func (l *Log) Events() []Event {
	return l.events
}

// Len returns the number of pending events.
func (l *Log) Len() int {
	return len(l.events)
}

// Reset drops all events and reopens the log for the next tick.
func (l *Log) Reset() {
	clear(l.events)
	l.events = l.events[:0]
	l.sealed = false
}
