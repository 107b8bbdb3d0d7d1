/*
Package points holds the ordered sequence of user-placed points of a curve
editor, together with the point currently being dragged.

Insertion order is significant: paths are threaded through the points in the
order they were added. Points are never re-ordered; moving or dragging a point
changes its coordinates only.

All operations are total. Deleting or moving an unknown point, or updating a
drag while no drag is active, is a no-op rather than an error.

A Store is owned by a single interaction loop and is not safe for concurrent
use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package points

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit'
func tracer() tracing.Trace {
	return tracing.Select("curvedit")
}

// ID identifies a point for its lifetime. IDs are never re-used within a
// store. The zero ID denotes "no point".
type ID uint64

// NoPoint is the zero ID, never assigned to a point.
const NoPoint ID = 0

func (id ID) String() string {
	if id == NoPoint {
		return "<none>"
	}
	return fmt.Sprintf("#%d", uint64(id))
}

// Point is a user-placed anchor of a path. Coordinates are neither validated
// nor clamped.
type Point struct {
	ID ID
	X  float64
	Y  float64
}

// Pair returns the coordinates of a point.
func (pt Point) Pair() curvedit.Pair {
	return curvedit.P(pt.X, pt.Y)
}

func (pt Point) String() string {
	return fmt.Sprintf("%s(%g,%g)", pt.ID, pt.X, pt.Y)
}

// Store holds the ordered point sequence and the drag state. Points are
// kept in a linked hash map of ID to Point, which preserves insertion order.
type Store struct {
	points   *linkedhashmap.Map
	lastID   ID
	dragging ID
	// OnChange, if set, is called synchronously after every mutation of
	// the point sequence.
	OnChange func()
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{points: linkedhashmap.New()}
}

// AddPoint appends a new point at (x,y) and returns its ID.
func (s *Store) AddPoint(x, y float64) ID {
	s.lastID++
	pt := Point{ID: s.lastID, X: x, Y: y}
	s.points.Put(pt.ID, pt)
	tracer().Debugf("added point %s", pt)
	s.changed()
	return pt.ID
}

// DeletePoint removes the point with the given ID, preserving the order of
// the remaining points. Deleting the point being dragged does not end the
// drag; subsequent drag updates are no-ops.
func (s *Store) DeletePoint(id ID) {
	if _, ok := s.Point(id); !ok {
		return
	}
	s.points.Remove(id)
	tracer().Debugf("deleted point %s", id)
	s.changed()
}

// MovePoint updates the coordinates of the point with the given ID in place.
func (s *Store) MovePoint(id ID, x, y float64) {
	pt, ok := s.Point(id)
	if !ok {
		return
	}
	pt.X, pt.Y = x, y
	s.points.Put(id, pt) // existing keys keep their position
	s.changed()
}

// BeginDrag marks id as the active drag target, replacing any previous one.
func (s *Store) BeginDrag(id ID) {
	if s.dragging != NoPoint && s.dragging != id {
		tracer().Debugf("drag of %s replaced by %s", s.dragging, id)
	}
	s.dragging = id
}

// UpdateDrag moves the active drag target to (x,y). Without an active drag
// this is a no-op.
func (s *Store) UpdateDrag(x, y float64) {
	if s.dragging == NoPoint {
		return
	}
	s.MovePoint(s.dragging, x, y)
}

// EndDrag clears the active drag target.
func (s *Store) EndDrag() {
	s.dragging = NoPoint
}

// Dragging returns the ID of the active drag target and true, or NoPoint and
// false if no drag is in progress.
func (s *Store) Dragging() (ID, bool) {
	return s.dragging, s.dragging != NoPoint
}

// Len returns the number of points.
func (s *Store) Len() int {
	return s.points.Size()
}

// Point returns the point with the given ID.
func (s *Store) Point(id ID) (Point, bool) {
	if id == NoPoint {
		return Point{}, false
	}
	v, found := s.points.Get(id)
	if !found {
		return Point{}, false
	}
	return v.(Point), true
}

// Points returns a copy of the point sequence, in order.
func (s *Store) Points() []Point {
	pts := make([]Point, 0, s.points.Size())
	it := s.points.Iterator()
	for it.Next() {
		pts = append(pts, it.Value().(Point))
	}
	return pts
}

// Pairs returns the coordinates of all points, in order.
func (s *Store) Pairs() []curvedit.Pair {
	pairs := make([]curvedit.Pair, 0, s.points.Size())
	it := s.points.Iterator()
	for it.Next() {
		pairs = append(pairs, it.Value().(Point).Pair())
	}
	return pairs
}

func (s *Store) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
