package shape

import (
	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit'
func tracer() tracing.Trace {
	return tracing.Select("curvedit")
}

// Curve types, re-exported for convenience.
const (
	Quadratic = curvedit.Quadratic
	Cubic     = curvedit.Cubic
)

// Path is the concrete type for building skeleton paths. To construct a path,
// start with Nullpath(), which creates an empty path, and then extend it.
// Paths are always open; knot order is the drawing order.
type Path struct {
	points   []curvedit.Pair // point i
	Controls *Controls       // control points to be calculated
}

// Controls collects calculated spline control points. The segment between
// knots i and i+1 uses post-control i and pre-control i+1. Quadratic
// segments have a post-control only.
type Controls struct {
	prec  []curvedit.Pair // control point i-, to be calculated
	postc []curvedit.Pair // control point i+, to be calculated
}

// Generator produces path descriptions for a sequence of knots. The zero
// value is not useful; use NewGenerator or DefaultGenerator.
type Generator struct {
	Lift      float64 // upward offset of quadratic control points
	Precision int     // decimals in formatted coordinates
}
