/*
Package polygon implements closed polygonal regions, e.g. the canvas area of
an interaction surface. Containment tests are delegated to polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'curvedit'.
func L() tracing.Trace {
	return tracing.Select("curvedit")
}

// ErrTooFewKnots indicates a polygon which cannot enclose an area.
var ErrTooFewKnots = errors.New("polygon has too few knots")

// Polygon is a closed polygonal region. Build it with NullPolygon() and
// subsequent calls to Knot(), then close it with Cycle().
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{contour: make(polyclip.Contour, 0, 4)}
}

// Box creates a rectangle from two opposite corners.
func Box(a, b curvedit.Pair) *Polygon {
	return NullPolygon().Knot(a).Knot(curvedit.P(b.X(), a.Y())).
		Knot(b).Knot(curvedit.P(a.X(), b.Y())).Cycle()
}

// Knot appends a corner. Part of builder functionality.
func (pg *Polygon) Knot(p curvedit.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: has the polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of corners.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns corner i.
func (pg *Polygon) Pt(i int) curvedit.Pair {
	p := pg.contour[i%pg.N()]
	return curvedit.P(p.X, p.Y)
}

// Validate checks that a polygon encloses an area.
func (pg *Polygon) Validate() error {
	if pg.N() < 3 {
		return fmt.Errorf("%w: need at least 3, have %d", ErrTooFewKnots, pg.N())
	}
	return nil
}

// Contains is a predicate: is p inside the polygon? Open or degenerate
// polygons contain nothing.
func (pg *Polygon) Contains(p curvedit.Pair) bool {
	if !pg.cycle || pg.Validate() != nil {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// BoundingBox returns the lower-left and upper-right corners of the
// polygon's bounding box.
func (pg *Polygon) BoundingBox() (curvedit.Pair, curvedit.Pair) {
	if pg.N() == 0 {
		return curvedit.Origin, curvedit.Origin
	}
	r := pg.contour.BoundingBox()
	return curvedit.P(r.Min.X, r.Min.Y), curvedit.P(r.Max.X, r.Max.Y)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Pt(i).String())
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
