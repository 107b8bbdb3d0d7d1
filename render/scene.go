// Package render produces the visual output of a curve editor: one path
// element for the generated curve and one circular handle per point.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/points"
	"github.com/npillmayer/curvedit/shape"
)

// Presentation attributes of the rendered elements.
const (
	PathStroke      = "red"
	PathStrokeWidth = 1
	HandleFill      = "blue"
)

// Handle is the visual marker of a point.
type Handle struct {
	ID     points.ID
	Center curvedit.Pair
	Radius float64
}

// Contains is a predicate: does the handle's circle cover p?
func (h Handle) Contains(p curvedit.Pair) bool {
	return h.Center.Distance(p) <= h.Radius
}

// Scene is everything a host has to draw: the path data of the curve and
// the handles, in point order. Later handles are drawn on top of earlier
// ones.
type Scene struct {
	Path    string
	Handles []Handle
}

// NewScene creates a scene from a path description and a snapshot of the
// points. Coordinates in the path data are printed to prec decimals.
func NewScene(d shape.Description, pts []points.Point, radius float64, prec int) Scene {
	sc := Scene{
		Path:    d.Format(prec),
		Handles: make([]Handle, len(pts)),
	}
	for i, pt := range pts {
		sc.Handles[i] = Handle{ID: pt.ID, Center: pt.Pair(), Radius: radius}
	}
	return sc
}

// HandleAt returns the top-most handle covering p.
func (sc Scene) HandleAt(p curvedit.Pair) (Handle, bool) {
	for i := len(sc.Handles) - 1; i >= 0; i-- {
		if sc.Handles[i].Contains(p) {
			return sc.Handles[i], true
		}
	}
	return Handle{}, false
}

// WriteSVG writes the scene as a fragment of SVG elements: an unfilled
// <path> followed by one <circle> per handle. The fragment is meant to be
// inserted into the host's <svg> element.
func (sc Scene) WriteSVG(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<path d=%q fill=\"none\" stroke=%q stroke-width=\"%d\"/>\n",
		sc.Path, PathStroke, PathStrokeWidth)
	if err != nil {
		return err
	}
	for _, h := range sc.Handles {
		_, err = fmt.Fprintf(w, "<circle data-point=\"%d\" cx=\"%s\" cy=\"%s\" r=\"%s\" fill=%q/>\n",
			uint64(h.ID), num(h.Center.X()), num(h.Center.Y()), num(h.Radius), HandleFill)
		if err != nil {
			return err
		}
	}
	return nil
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
