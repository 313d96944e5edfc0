package bezier

import (
	"errors"
	"fmt"

	"honnef.co/go/curve"
)

// ErrNotFound is returned when an operation references a point that does not
// exist, typically because it has been deleted.
var ErrNotFound = errors.New("no such point")

// PointID identifies a point in a [Store]. Ids are never reused.
type PointID int

// NoPoint is the zero value for "no handle on this side".
const NoPoint PointID = -1

// PointKind distinguishes anchors from control handles. It is bookkeeping
// only; both kinds behave identically inside the store.
type PointKind uint8

const (
	KindAnchor PointKind = iota + 1
	KindHandle
)

func (k PointKind) String() string {
	switch k {
	case KindAnchor:
		return "anchor"
	case KindHandle:
		return "handle"
	default:
		return "invalid"
	}
}

type pointRecord struct {
	pos   curve.Point
	kind  PointKind
	alive bool
}

// Store is a flat arena of addressable points. It knows nothing about chains
// or segments; it only maps identity to position.
//
// Deleted slots are tombstoned rather than recycled, so a stale id held by a
// caller after a deletion fails with [ErrNotFound] instead of aliasing a
// newer point.
type Store struct {
	points []pointRecord
}

// NewStore returns an empty point store.
func NewStore() *Store {
	return &Store{}
}

// Create adds a point at pt and returns its id. It never fails.
func (s *Store) Create(kind PointKind, pt curve.Point) PointID {
	s.points = append(s.points, pointRecord{pos: pt, kind: kind, alive: true})
	return PointID(len(s.points) - 1)
}

func (s *Store) record(id PointID) (*pointRecord, error) {
	if id < 0 || int(id) >= len(s.points) || !s.points[id].alive {
		return nil, fmt.Errorf("point %d: %w", id, ErrNotFound)
	}
	return &s.points[id], nil
}

// Move sets the point's position.
func (s *Store) Move(id PointID, pt curve.Point) error {
	rec, err := s.record(id)
	if err != nil {
		return err
	}
	rec.pos = pt
	return nil
}

// Position returns the point's current position.
func (s *Store) Position(id PointID) (curve.Point, error) {
	rec, err := s.record(id)
	if err != nil {
		return curve.Point{}, err
	}
	return rec.pos, nil
}

// KindOf reports whether the point is an anchor or a handle.
func (s *Store) KindOf(id PointID) (PointKind, error) {
	rec, err := s.record(id)
	if err != nil {
		return 0, err
	}
	return rec.kind, nil
}

// Delete removes the point. Its id stays retired forever.
func (s *Store) Delete(id PointID) error {
	rec, err := s.record(id)
	if err != nil {
		return err
	}
	rec.alive = false
	return nil
}

// Contains reports whether id names a live point.
func (s *Store) Contains(id PointID) bool {
	_, err := s.record(id)
	return err == nil
}

// Len returns the number of live points.
func (s *Store) Len() int {
	n := 0
	for i := range s.points {
		if s.points[i].alive {
			n++
		}
	}
	return n
}

// pos returns the position of a point the chain knows to be alive. The chain
// deletes points and their references in the same transaction, so a miss here
// is a bug, not a user error.
func (s *Store) pos(id PointID) curve.Point {
	pt, err := s.Position(id)
	if err != nil {
		panic(fmt.Sprintf("internal reference to dead point %d", id))
	}
	return pt
}
