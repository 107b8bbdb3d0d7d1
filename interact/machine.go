package interact

import (
	"github.com/npillmayer/curvedit/points"
)

// State is the state of the drag state machine.
type State int

const (
	Idle State = iota
	Dragging
)

func (st State) String() string {
	if st == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// Machine is the drag state machine. It has two states, Idle and
// Dragging(id), and starts out Idle:
//
//	Idle         --pointer-down on handle--> Dragging(id)
//	Dragging(id) --pointer-move-->           Dragging(id), point id moved
//	Dragging(id) --pointer-up-->             Idle
//	Idle         --pointer-up-->             Idle
//
// The drag target lives in the point store; the machine translates pointer
// transitions into store operations.
type Machine struct {
	store *points.Store
}

// NewMachine creates a drag state machine operating on a store.
func NewMachine(store *points.Store) *Machine {
	return &Machine{store: store}
}

// State returns the current state and, when dragging, the drag target.
func (m *Machine) State() (State, points.ID) {
	if id, ok := m.store.Dragging(); ok {
		return Dragging, id
	}
	return Idle, points.NoPoint
}

// PointerDown starts dragging the point with the given ID. A press on
// a point which is not in the store is ignored. A press while dragging
// replaces the drag target.
func (m *Machine) PointerDown(id points.ID) {
	if _, ok := m.store.Point(id); !ok {
		return
	}
	m.store.BeginDrag(id)
	tracer().Debugf("drag machine: %s(%s)", Dragging, id)
}

// PointerMove moves the drag target to (x,y), in canvas coordinates.
// It is a no-op when idle.
func (m *Machine) PointerMove(x, y float64) {
	if st, _ := m.State(); st == Idle {
		return
	}
	m.store.UpdateDrag(x, y)
}

// PointerUp ends a drag. It is a no-op when idle.
func (m *Machine) PointerUp() {
	if st, id := m.State(); st == Dragging {
		m.store.EndDrag()
		tracer().Debugf("drag machine: %s after dragging %s", Idle, id)
	}
}
