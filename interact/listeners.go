package interact

// Source delivers input events to listeners. Listen registers fn for events
// of type typ and returns a function which removes the registration again.
// Calling the returned function more than once has no further effect.
//
// Hosts wire their pointer events (DOM listeners, GUI toolkit callbacks)
// into a Source; Dispatcher is a ready-made implementation.
type Source interface {
	Listen(typ EventType, fn func(Event)) (cancel func())
}

type listener struct {
	fn func(Event)
}

// Dispatcher registers lists of event listener functions to receive
// different event types. Listeners are called in registration order.
// The zero value is ready to use.
type Dispatcher struct {
	listeners map[EventType][]*listener
}

var _ Source = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher without listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen adds a function for a given event type.
func (d *Dispatcher) Listen(typ EventType, fn func(Event)) func() {
	if d.listeners == nil {
		d.listeners = make(map[EventType][]*listener)
	}
	l := &listener{fn: fn}
	d.listeners[typ] = append(d.listeners[typ], l)
	return func() {
		d.remove(typ, l)
	}
}

func (d *Dispatcher) remove(typ EventType, l *listener) {
	ls := d.listeners[typ]
	for i := range ls {
		if ls[i] == l {
			d.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
			if len(d.listeners[typ]) == 0 {
				delete(d.listeners, typ)
			}
			return
		}
	}
}

// Dispatch calls all functions registered for the event's type.
func (d *Dispatcher) Dispatch(ev Event) {
	ls := d.listeners[ev.Type]
	if len(ls) == 0 {
		return
	}
	// listeners may cancel registrations while being called
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Count returns the number of functions registered for an event type.
func (d *Dispatcher) Count(typ EventType) int {
	return len(d.listeners[typ])
}

// Total returns the number of registered functions over all event types.
func (d *Dispatcher) Total() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}
