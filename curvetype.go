package curvedit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCurveType is returned when a curve type name cannot be parsed.
var ErrUnknownCurveType = errors.New("unknown curve type")

// CurveType selects the kind of segments a path is built from. It is global
// to a point sequence.
type CurveType int

// Curve types selectable by the user. Other values are representable, but
// produce no segment commands.
const (
	Quadratic CurveType = iota
	Cubic
)

var curveTypeNames = map[CurveType]string{
	Quadratic: "quadratic",
	Cubic:     "cubic",
}

func (ct CurveType) String() string {
	if name, ok := curveTypeNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("CurveType(%d)", int(ct))
}

// IsKnown is a predicate: is ct one of the selectable curve types?
func (ct CurveType) IsKnown() bool {
	_, ok := curveTypeNames[ct]
	return ok
}

// ParseCurveType returns the curve type for a name ("quadratic" or "cubic",
// case-insensitive).
func ParseCurveType(name string) (CurveType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for ct, s := range curveTypeNames {
		if s == n {
			return ct, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownCurveType, name)
}
