package shape

import (
	"github.com/npillmayer/curvedit"
)

func (ctrls *Controls) SetPreControl(i int, c curvedit.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, curvedit.Unknown)
	ctrls.prec[i] = c
}

func (ctrls *Controls) SetPostControl(i int, c curvedit.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, curvedit.Unknown)
	ctrls.postc[i] = c
}

func (ctrls *Controls) PreControl(i int) curvedit.Pair {
	return getC(ctrls.prec, i, curvedit.Unknown)
}

func (ctrls *Controls) PostControl(i int) curvedit.Pair {
	return getC(ctrls.postc, i, curvedit.Unknown)
}

// FindControls finds the control points for a given skeleton path and curve
// type. If controls is nil, a new container is allocated. Segments of a
// curve type other than Quadratic or Cubic keep unknown controls.
//
// The quadratic lift is the default of 50 units; use a Generator for other
// values.
func FindControls(path *Path, ct curvedit.CurveType, controls *Controls) *Controls {
	return DefaultGenerator().FindControls(path, ct, controls)
}

// FindControls finds the control points for a given skeleton path and curve
// type, see package-level FindControls.
func (g Generator) FindControls(path *Path, ct curvedit.CurveType, controls *Controls) *Controls {
	if controls == nil {
		controls = &Controls{}
	}
	for i := 0; i < path.N()-1; i++ {
		prev, curr := path.Z(i), path.Z(i+1)
		switch ct {
		case curvedit.Quadratic:
			controls.SetPostControl(i, quadraticControl(prev, curr, g.Lift))
		case curvedit.Cubic:
			c1, c2 := cubicControls(prev, curr)
			controls.SetPostControl(i, c1)
			controls.SetPreControl(i+1, c2)
		default:
			tracer().Debugf("no controls for segment %d of curve type %s", i, ct)
		}
	}
	return controls
}

// Control point halfway between z.i and z.[i+1], lifted against the y-axis.
func quadraticControl(prev, curr curvedit.Pair, lift float64) curvedit.Pair {
	m := prev.Midpoint(curr)
	return curvedit.P(m.X(), m.Y()-lift)
}

// Control points at 1/3 and 2/3 of the horizontal distance between z.i and
// z.[i+1], each at the height of its neighbouring knot.
func cubicControls(prev, curr curvedit.Pair) (curvedit.Pair, curvedit.Pair) {
	dx := (curr.X() - prev.X()) / 3
	c1 := curvedit.P(prev.X()+dx, prev.Y())
	c2 := curvedit.P(curr.X()-dx, curr.Y())
	return c1, c2
}
