package shape

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/curvedit"
)

// CommandKind is the kind of a drawing command.
type CommandKind int

const (
	// Move to P0 without drawing, starting the path.
	MoveToKind CommandKind = iota + 1
	// Draw a quadratic Bézier from the current location through control P0 to P1.
	QuadToKind
	// Draw a cubic Bézier from the current location through controls P0 and P1 to P2.
	CubicToKind
)

// Letter returns the SVG path command letter for a kind.
func (k CommandKind) Letter() string {
	switch k {
	case MoveToKind:
		return "M"
	case QuadToKind:
		return "Q"
	case CubicToKind:
		return "C"
	}
	return "?"
}

// Command is a single drawing command of a path description.
type Command struct {
	Kind CommandKind
	P0   curvedit.Pair
	P1   curvedit.Pair
	P2   curvedit.Pair
}

// Points returns the coordinates a command refers to, control points first
// and end point last.
func (cmd Command) Points() []curvedit.Pair {
	switch cmd.Kind {
	case MoveToKind:
		return []curvedit.Pair{cmd.P0}
	case QuadToKind:
		return []curvedit.Pair{cmd.P0, cmd.P1}
	case CubicToKind:
		return []curvedit.Pair{cmd.P0, cmd.P1, cmd.P2}
	}
	return nil
}

// EndPoint returns the location a command draws to.
func (cmd Command) EndPoint() curvedit.Pair {
	pts := cmd.Points()
	if len(pts) == 0 {
		return curvedit.Unknown
	}
	return pts[len(pts)-1]
}

func (cmd Command) String() string {
	return cmd.format(curvedit.DefaultPrecision)
}

func (cmd Command) format(prec int) string {
	var sb strings.Builder
	sb.WriteString(cmd.Kind.Letter())
	for _, pt := range cmd.Points() {
		sb.WriteByte(' ')
		sb.WriteString(fmtcoord(pt.X(), prec))
		sb.WriteByte(',')
		sb.WriteString(fmtcoord(pt.Y(), prec))
	}
	return sb.String()
}

// Description is a derived, read-only sequence of drawing commands. An empty
// description draws nothing.
type Description []Command

// Describe converts a path and its controls into drawing commands. Paths with
// less than two knots result in an empty description. Segments with an
// unknown post-control are skipped, segments with an unknown pre-control are
// drawn as quadratic curves.
func Describe(path *Path, controls *Controls) Description {
	if path.N() < 2 {
		return nil
	}
	if controls == nil {
		controls = path.Controls
	}
	d := make(Description, 0, path.N())
	d = append(d, Command{Kind: MoveToKind, P0: path.Z(0)})
	for i := 1; i < path.N(); i++ {
		post, pre := controls.PostControl(i-1), controls.PreControl(i)
		switch {
		case post.IsUnknown():
			continue
		case pre.IsUnknown():
			d = append(d, Command{Kind: QuadToKind, P0: post, P1: path.Z(i)})
		default:
			d = append(d, Command{Kind: CubicToKind, P0: post, P1: pre, P2: path.Z(i)})
		}
	}
	return d
}

// IsEmpty is a predicate: does this description draw nothing?
func (d Description) IsEmpty() bool {
	return len(d) == 0
}

// Format returns the SVG path data string, with coordinates printed to at
// most prec decimals.
func (d Description) Format(prec int) string {
	var sb strings.Builder
	_ = d.WriteSVG(&sb, prec)
	return sb.String()
}

func (d Description) String() string {
	return d.Format(curvedit.DefaultPrecision)
}

// WriteSVG writes the SVG path data to w, see Format.
func (d Description) WriteSVG(w io.Writer, prec int) error {
	for i, cmd := range d {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s", sep, cmd.format(prec)); err != nil {
			return err
		}
	}
	return nil
}
