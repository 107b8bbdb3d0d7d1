// Package shape generates smooth paths through a sequence of knots.
/*

A path is threaded through the knots in their given order. Every pair of
consecutive knots is joined by a single Bézier segment whose control points
are derived from the two knots alone, depending on the curve type:

   quadratic   one control point, halfway between the knots and lifted
               by a constant (50 units by default) against the y-axis,
               which grows downwards on screen.

   cubic       two control points at one and two thirds of the horizontal
               distance, each on the height of its neighbouring knot.
               This eases the curve horizontally into every knot.

Usage

Clients build a "skeleton" path without control point information,
using a builder pattern (package qualifiers omitted):

   path := Nullpath().Knot(P(0,0)).Knot(P(100,0)).End()

The control points for a curve type are then found by

   controls := FindControls(path, Cubic, nil)

and the result may be turned into an SVG path description:

   d := Describe(path, controls).Format(2)   // "M 0,0 C 33.33,0 66.67,0 100,0"

Most clients will simply call Generate, which does all of the above in one
step. Generation is cheap (linear in the number of knots) and has no side
effects, so paths are re-generated from scratch on every change.

Control points which cannot be found, e.g. for a curve type other than
quadratic or cubic, stay unknown. Segments with unknown controls do not
produce any drawing command.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import "fmt"

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
//
// Example, a quadratic path through three knots:
//
//	(0,0) .. controls (50.0000,-50.0000)
//	  .. (100,0) .. controls (125.0000,-25.0000)
//	  .. (150,50)
//
// Segments with a single control point (quadratic) list one control only.
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				if pre := contr.PreControl(i); !pre.IsUnknown() {
					s += fmt.Sprintf(" and %s", ptstring(pre, true))
				}
				s += "\n  .. "
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < path.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}
