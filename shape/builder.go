package shape

import (
	"github.com/npillmayer/curvedit"
)

func newSkeletonPath(points []curvedit.Pair) *Path {
	path := &Path{}
	path.points = make([]curvedit.Pair, len(points), len(points)*2)
	copy(path.points, points)
	path.Controls = &Controls{}
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a path of three knots:
//
//	var path *Path
//	path = Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5)).End()
//
// Calling End() returns a path. Its control point container
// (path.Controls) is empty and to be filled by FindControls.
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// PathOf creates a skeleton path from a sequence of knots. The slice is
// copied.
func PathOf(knots []curvedit.Pair) *Path {
	return newSkeletonPath(knots)
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Knot appends a knot to a path. Part of builder functionality.
func (path *Path) Knot(pr curvedit.Pair) *Path {
	path.points = append(path.points, pr)
	return path
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.points)
}

// Z returns the knot at position i. Indices outside the path wrap around.
func (path *Path) Z(i int) curvedit.Pair {
	if i < 0 || i >= path.N() {
		i = i % path.N()
		if i < 0 {
			i += path.N()
		}
	}
	return path.points[i]
}
