package interact

import (
	"fmt"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/points"
)

// EventType is the type of a pointer event delivered to a surface.
type EventType int

const (
	// zero value is an unknown type
	UnknownEvent EventType = iota

	// PointerDown is a primary button press. Target is the point handle
	// pressed, if any.
	PointerDown

	// PointerMove is sent whenever the pointer moves over the surface,
	// whether or not a button is down.
	PointerMove

	// PointerUp is a primary button release anywhere.
	PointerUp

	// ContextClick is a secondary click (context menu action) at X,Y.
	ContextClick

	// DoubleClick is a double activation. Target is the point handle
	// activated, if any.
	DoubleClick
)

// EventTypes lists all event types a surface listens to.
var EventTypes = []EventType{PointerDown, PointerMove, PointerUp, ContextClick, DoubleClick}

var eventTypeNames = [...]string{"UnknownEvent", "PointerDown", "PointerMove", "PointerUp",
	"ContextClick", "DoubleClick"}

func (typ EventType) String() string {
	if typ < 0 || int(typ) >= len(eventTypeNames) {
		return fmt.Sprintf("EventType(%d)", int(typ))
	}
	return eventTypeNames[typ]
}

// Event is a single input event. X and Y are screen coordinates, which the
// surface maps onto the canvas. Target is points.NoPoint for events not
// aimed at a point handle.
type Event struct {
	Type   EventType
	X, Y   float64
	Target points.ID
}

// Pos returns the screen position of an event.
func (ev Event) Pos() curvedit.Pair {
	return curvedit.P(ev.X, ev.Y)
}

func (ev Event) String() string {
	return fmt.Sprintf("%v{Pos: (%g,%g), Target: %v}", ev.Type, ev.X, ev.Y, ev.Target)
}
