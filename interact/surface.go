package interact

import (
	"errors"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/points"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/curvedit/render"
	"github.com/npillmayer/curvedit/shape"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit'
func tracer() tracing.Trace {
	return tracing.Select("curvedit")
}

var (
	// ErrAlreadyAttached indicates a second call to Attach.
	ErrAlreadyAttached = errors.New("surface is already attached")
	// ErrDetached indicates use of a surface after it has been torn down.
	ErrDetached = errors.New("surface has been detached")
	// ErrNilSource indicates an attempt to attach to a nil event source.
	ErrNilSource = errors.New("event source must not be nil")
)

// Surface is the interactive drawing surface of a curve editor. It owns the
// point store, the curve type selection and the drag state machine, and keeps
// the path description current: every change of points or curve type
// re-generates the path synchronously, before OnRender is called.
type Surface struct {
	conf     curvedit.Config
	store    *points.Store
	machine  *Machine
	gen      shape.Generator
	curve    curvedit.CurveType
	canvas   *polygon.Polygon // nil for an unbounded canvas
	view     curvedit.AT      // screen to canvas coordinates
	path     shape.Description
	cancels  []func()
	attached bool
	detached bool
	// OnRender, if set, is called with the new scene after every change.
	OnRender func(render.Scene)
}

// NewSurface creates a surface for a validated configuration.
func NewSurface(conf curvedit.Config) (*Surface, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	s := &Surface{
		conf:  conf,
		store: points.NewStore(),
		gen:   shape.NewGenerator(conf),
		curve: conf.CurveType(),
		view:  curvedit.Identity(),
	}
	if conf.Canvas.IsBounded() {
		s.canvas = polygon.Box(curvedit.Origin, curvedit.P(conf.Canvas.Width, conf.Canvas.Height))
		tracer().Debugf("canvas = %s", polygon.AsString(s.canvas))
	}
	s.machine = NewMachine(s.store)
	s.store.OnChange = s.recompute
	s.recompute()
	return s, nil
}

// Store returns the point store. Mutations through the store re-generate
// the path as well.
func (s *Surface) Store() *points.Store {
	return s.store
}

// Machine returns the drag state machine.
func (s *Surface) Machine() *Machine {
	return s.machine
}

// CurveType returns the current curve type.
func (s *Surface) CurveType() curvedit.CurveType {
	return s.curve
}

// SetCurveType selects the curve type and re-generates the path.
func (s *Surface) SetCurveType(ct curvedit.CurveType) {
	if !ct.IsKnown() {
		tracer().Infof("curve type %s draws no segments", ct)
	}
	s.curve = ct
	s.recompute()
}

// SelectCurve selects a curve type by name, see curvedit.ParseCurveType.
// An unknown name leaves the selection unchanged.
func (s *Surface) SelectCurve(name string) error {
	ct, err := curvedit.ParseCurveType(name)
	if err != nil {
		return err
	}
	s.SetCurveType(ct)
	return nil
}

// SetScroll sets the offset of the canvas relative to the screen. Event
// positions are shifted by (dx,dy) to get canvas coordinates.
func (s *Surface) SetScroll(dx, dy float64) {
	s.view = curvedit.Translation(curvedit.P(dx, dy))
}

// Path returns the current path description.
func (s *Surface) Path() shape.Description {
	return s.path
}

// PathData returns the current path as SVG path data.
func (s *Surface) PathData() string {
	return s.path.Format(s.conf.Precision)
}

// Scene returns what is to be drawn for the current state.
func (s *Surface) Scene() render.Scene {
	return render.NewScene(s.path, s.store.Points(), s.conf.HandleRadius, s.conf.Precision)
}

// HandleAt returns the top-most point whose handle covers (x,y), given in
// canvas coordinates.
func (s *Surface) HandleAt(x, y float64) (points.ID, bool) {
	h, ok := s.Scene().HandleAt(curvedit.P(x, y))
	return h.ID, ok
}

// Attach registers the surface's listeners for all event types with src.
// A surface may be attached once in its lifetime.
func (s *Surface) Attach(src Source) error {
	switch {
	case src == nil:
		return ErrNilSource
	case s.detached:
		return ErrDetached
	case s.attached:
		return ErrAlreadyAttached
	}
	for _, typ := range EventTypes {
		s.cancels = append(s.cancels, src.Listen(typ, s.Handle))
	}
	s.attached = true
	tracer().Debugf("surface attached, %d listeners", len(s.cancels))
	return nil
}

// Detach removes every listener registered by Attach. After Detach the
// surface does not receive events any more and cannot be attached again.
// Detaching twice is a no-op.
func (s *Surface) Detach() {
	if s.detached {
		return
	}
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.detached = true
	s.machine.PointerUp()
	tracer().Debugf("surface detached")
}

// Handle processes a single input event. Attach wires Handle to an event
// source; hosts without a Source may call it directly.
func (s *Surface) Handle(ev Event) {
	if s.detached {
		return
	}
	pos := s.view.Transform(ev.Pos())
	switch ev.Type {
	case PointerDown:
		if id := s.target(ev, pos); id != points.NoPoint {
			s.machine.PointerDown(id)
		}
	case PointerMove:
		s.machine.PointerMove(pos.X(), pos.Y())
	case PointerUp:
		s.machine.PointerUp()
	case ContextClick:
		if s.canvas != nil && !s.canvas.Contains(pos) {
			tracer().Debugf("context click outside of canvas at %v", pos)
			return
		}
		s.store.AddPoint(pos.X(), pos.Y())
	case DoubleClick:
		if id := s.target(ev, pos); id != points.NoPoint {
			s.store.DeletePoint(id)
		}
	default:
		tracer().Debugf("ignoring event %v", ev)
	}
}

// target returns the point an event is aimed at: its explicit target, or
// the handle under the pointer.
func (s *Surface) target(ev Event, pos curvedit.Pair) points.ID {
	if ev.Target != points.NoPoint {
		return ev.Target
	}
	id, _ := s.HandleAt(pos.X(), pos.Y())
	return id
}

func (s *Surface) recompute() {
	s.path = s.gen.Generate(s.store.Pairs(), s.curve)
	tracer().Debugf("path = %q", s.path.Format(s.conf.Precision))
	if s.OnRender != nil {
		s.OnRender(s.Scene())
	}
}
