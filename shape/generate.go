package shape

import (
	"github.com/npillmayer/curvedit"
)

// NewGenerator creates a generator from an editor configuration.
func NewGenerator(conf curvedit.Config) Generator {
	return Generator{
		Lift:      conf.QuadraticLift,
		Precision: conf.Precision,
	}
}

// DefaultGenerator returns a generator with a quadratic lift of 50 units
// and two decimals precision.
func DefaultGenerator() Generator {
	return NewGenerator(curvedit.DefaultConfig())
}

// Generate threads a path through knots, in order, and returns its
// description. See Generator.Generate.
func Generate(knots []curvedit.Pair, ct curvedit.CurveType) Description {
	return DefaultGenerator().Generate(knots, ct)
}

// Generate threads a path through knots, in order, and returns its
// description. Fewer than two knots produce an empty description.
// Generate is a pure function of its arguments.
func (g Generator) Generate(knots []curvedit.Pair, ct curvedit.CurveType) Description {
	if len(knots) < 2 {
		return nil
	}
	path := PathOf(knots)
	controls := g.FindControls(path, ct, path.Controls)
	tracer().Debugf("%s path = %s", ct, AsString(path, controls))
	return Describe(path, controls)
}

// PathData is a shortcut for the SVG path data of Generate, formatted with
// the generator's precision.
func (g Generator) PathData(knots []curvedit.Pair, ct curvedit.CurveType) string {
	return g.Generate(knots, ct).Format(g.Precision)
}
