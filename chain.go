package bezier

import (
	"fmt"
	"slices"

	"honnef.co/go/curve"
)

// Role classifies an anchor's position in the chain. It is derived, not
// stored by the user, and is recomputed after every insertion and removal.
// Roles decide which of an anchor's handles a presentation layer shows.
type Role uint8

const (
	// RoleOnly is the sole anchor of a one-anchor chain.
	RoleOnly Role = iota + 1
	// RoleFirst is the first anchor of a chain with at least two anchors.
	RoleFirst
	// RoleLast is the last anchor of a chain with at least two anchors.
	RoleLast
	// RoleCenter is any interior anchor.
	RoleCenter
)

func (r Role) String() string {
	switch r {
	case RoleOnly:
		return "only"
	case RoleFirst:
		return "first"
	case RoleLast:
		return "last"
	case RoleCenter:
		return "center"
	default:
		return "invalid"
	}
}

// HandleSide names which side of its anchor a handle sits on.
type HandleSide uint8

const (
	// SideBefore is the handle of the segment arriving at the anchor.
	SideBefore HandleSide = iota + 1
	// SideAfter is the handle of the segment leaving the anchor.
	SideAfter
)

func (s HandleSide) String() string {
	switch s {
	case SideBefore:
		return "before"
	case SideAfter:
		return "after"
	default:
		return "invalid"
	}
}

// Default placement of freshly synthesized handles relative to their anchor,
// in scene units.
var (
	afterHandleOffset  = curve.Vec(50, 50)
	beforeHandleOffset = curve.Vec(-50, 50)
)

// anchorEntry is the chain's bookkeeping for one anchor: its point, its up to
// two side handles, and the offsets used when handle following is on.
type anchorEntry struct {
	point  PointID
	before PointID // handle of the incoming segment, NoPoint at the chain start
	after  PointID // handle of the outgoing segment, NoPoint at the chain end

	// anchor − handle, recorded when a handle is created and again by
	// HandleDragEnd. Only read when FollowHandles is set.
	beforeOffset curve.Vec2
	afterOffset  curve.Vec2

	role Role
}

// segment is one cubic joining two consecutive anchors, together with its
// cached renderable geometry. Segments are derived: they are created and
// destroyed only as a side effect of anchor insertion and removal.
type segment struct {
	start, end *anchorEntry
	c1, c2     PointID // start's after handle, end's before handle

	cubic  curve.CubicBez
	guides [2]curve.Line // start↔c1, end↔c2
}

func (seg *segment) points() [4]PointID {
	return [4]PointID{seg.start.point, seg.c1, seg.c2, seg.end.point}
}

// Chain is an ordered sequence of anchors joined by cubic segments. The zero
// value is not usable; use [New].
//
// All operations are synchronous and run to completion; the chain is not safe
// for concurrent use.
type Chain struct {
	store    *Store
	anchors  []*anchorEntry
	segments []*segment
	deps     map[PointID][]*segment

	// FollowHandles makes MovePoint carry an anchor's handles along with the
	// anchor, each keeping its recorded offset. When off (the default),
	// handles move only when moved themselves.
	FollowHandles bool
}

// New returns an empty chain with its own point store.
func New() *Chain {
	return &Chain{
		store: NewStore(),
		deps:  make(map[PointID][]*segment),
	}
}

// Store exposes the underlying point store, for position lookups.
func (c *Chain) Store() *Store {
	return c.store
}

// Len returns the number of anchors.
func (c *Chain) Len() int {
	return len(c.anchors)
}

// Anchors returns the anchor ids in chain order.
func (c *Chain) Anchors() []PointID {
	ids := make([]PointID, len(c.anchors))
	for i, a := range c.anchors {
		ids[i] = a.point
	}
	return ids
}

// AddAnchor appends an anchor at pt and returns its id. The first anchor
// creates no further geometry. Every later anchor is linked to the previous
// one with a new segment and two new handles: the outgoing handle of the
// joint anchor mirrors that anchor's incoming handle when one exists
// (otherwise it is placed at a default offset), and the new anchor's incoming
// handle is always placed at a default offset.
func (c *Chain) AddAnchor(pt curve.Point) PointID {
	a := &anchorEntry{
		point:  c.store.Create(KindAnchor, pt),
		before: NoPoint,
		after:  NoPoint,
	}
	if n := len(c.anchors); n > 0 {
		c.segments = append(c.segments, c.link(c.anchors[n-1], a, true))
	}
	c.anchors = append(c.anchors, a)
	c.reclassify()
	return a.point
}

// link synthesizes the segment joining two consecutive anchors, creating both
// of its handles. With mirror set and an incoming handle present on from, the
// outgoing handle is the point-reflection of that handle through from, so the
// curve leaves the joint along the tangent it arrived on. Mirroring is a
// one-time placement; the handles move independently afterwards.
//
// The caller inserts the returned segment into c.segments.
func (c *Chain) link(from, to *anchorEntry, mirror bool) *segment {
	fromPos := c.store.pos(from.point)
	toPos := c.store.pos(to.point)

	c1Pos := fromPos.Translate(afterHandleOffset)
	if mirror && from.before != NoPoint {
		c1Pos = fromPos.Translate(fromPos.Sub(c.store.pos(from.before)))
	}
	c2Pos := toPos.Translate(beforeHandleOffset)

	seg := &segment{
		start: from,
		end:   to,
		c1:    c.store.Create(KindHandle, c1Pos),
		c2:    c.store.Create(KindHandle, c2Pos),
	}
	from.after = seg.c1
	from.afterOffset = fromPos.Sub(c1Pos)
	to.before = seg.c2
	to.beforeOffset = toPos.Sub(c2Pos)

	c.register(seg)
	c.refresh(seg)
	return seg
}

// RemoveAnchor removes the anchor and every segment and handle that depends
// on it. Removing a boundary anchor drops the one adjacent segment; removing
// an interior anchor drops both adjacent segments and joins the neighbors
// with a brand-new segment whose handles use the default offsets (tangent
// continuity is not preserved across a deletion).
//
// Removing the last remaining anchor is a silent no-op: once a chain exists,
// it always keeps at least one anchor. An id that does not name a current
// anchor fails with [ErrNotFound].
func (c *Chain) RemoveAnchor(id PointID) error {
	i := c.anchorIndex(id)
	if i < 0 {
		return fmt.Errorf("anchor %d: %w", id, ErrNotFound)
	}
	if len(c.anchors) == 1 {
		return nil
	}

	switch {
	case i == 0:
		c.dropSegment(0)
	case i == len(c.anchors)-1:
		c.dropSegment(len(c.segments) - 1)
	default:
		c.dropSegment(i)
		c.dropSegment(i - 1)
		seg := c.link(c.anchors[i-1], c.anchors[i+1], false)
		c.segments = slices.Insert(c.segments, i-1, seg)
	}

	c.store.Delete(c.anchors[i].point)
	c.anchors = slices.Delete(c.anchors, i, i+1)
	c.reclassify()
	return nil
}

// dropSegment destroys segment k: its dependency registrations, its two
// handle points, and the owning anchors' references to them.
func (c *Chain) dropSegment(k int) {
	seg := c.segments[k]
	c.unregister(seg)
	c.store.Delete(seg.c1)
	c.store.Delete(seg.c2)
	seg.start.after = NoPoint
	seg.end.before = NoPoint
	c.segments = slices.Delete(c.segments, k, k+1)
}

// MovePoint sets the point's position and refreshes exactly the segments and
// guide lines that reference it. With FollowHandles set and id naming an
// anchor, the anchor's handles are repositioned first, each at its recorded
// offset from the anchor.
func (c *Chain) MovePoint(id PointID, pt curve.Point) error {
	if err := c.store.Move(id, pt); err != nil {
		return err
	}
	if c.FollowHandles {
		if a := c.anchorByPoint(id); a != nil {
			if a.before != NoPoint {
				c.store.Move(a.before, pt.Translate(a.beforeOffset.Negate()))
			}
			if a.after != NoPoint {
				c.store.Move(a.after, pt.Translate(a.afterOffset.Negate()))
			}
		}
	}
	c.refreshPoint(id)
	return nil
}

// HandleDragEnd records the handle's current offset from its anchor, so that
// later anchor moves with FollowHandles reproduce the handle's manual
// placement. It fails with [ErrNotFound] if id does not name a current
// handle.
func (c *Chain) HandleDragEnd(id PointID) error {
	kind, err := c.store.KindOf(id)
	if err != nil {
		return err
	}
	if kind != KindHandle {
		return fmt.Errorf("point %d is not a handle: %w", id, ErrNotFound)
	}
	for _, a := range c.anchors {
		switch id {
		case a.before:
			a.beforeOffset = c.store.pos(a.point).Sub(c.store.pos(id))
			return nil
		case a.after:
			a.afterOffset = c.store.pos(a.point).Sub(c.store.pos(id))
			return nil
		}
	}
	return fmt.Errorf("handle %d: %w", id, ErrNotFound)
}

func (c *Chain) anchorIndex(id PointID) int {
	for i, a := range c.anchors {
		if a.point == id {
			return i
		}
	}
	return -1
}

func (c *Chain) anchorByPoint(id PointID) *anchorEntry {
	if i := c.anchorIndex(id); i >= 0 {
		return c.anchors[i]
	}
	return nil
}

// reclassify re-derives every anchor's role. Runs after each structural
// change.
func (c *Chain) reclassify() {
	for i, a := range c.anchors {
		switch {
		case len(c.anchors) == 1:
			a.role = RoleOnly
		case i == 0:
			a.role = RoleFirst
		case i == len(c.anchors)-1:
			a.role = RoleLast
		default:
			a.role = RoleCenter
		}
	}
}
