package bezier

import "honnef.co/go/curve"

// AnchorState describes one anchor in a render snapshot.
type AnchorState struct {
	ID   PointID
	Pos  curve.Point
	Role Role
}

// HandleState describes one visible handle in a render snapshot.
type HandleState struct {
	ID     PointID
	Anchor PointID
	Side   HandleSide
	Pos    curve.Point
}

// RenderState is a pure read snapshot of everything a presentation layer
// draws: the cubic segments, the dotted guide lines joining anchors to their
// visible handles, the anchors, and the visible handles themselves.
type RenderState struct {
	Segments   []curve.CubicBez
	GuideLines []curve.Line
	Anchors    []AnchorState
	Handles    []HandleState
}

// RenderState returns the current snapshot. Roles gate handle visibility: an
// anchor's before side is hidden for roles first and only, the after side for
// last and only. A hidden handle is omitted from the snapshot but stays
// addressable through [Chain.MovePoint].
func (c *Chain) RenderState() RenderState {
	var st RenderState
	for _, seg := range c.segments {
		st.Segments = append(st.Segments, seg.cubic)
		st.GuideLines = append(st.GuideLines, seg.guides[0], seg.guides[1])
	}
	for _, a := range c.anchors {
		pos := c.store.pos(a.point)
		st.Anchors = append(st.Anchors, AnchorState{ID: a.point, Pos: pos, Role: a.role})
		if a.before != NoPoint && a.role != RoleFirst && a.role != RoleOnly {
			st.Handles = append(st.Handles, HandleState{
				ID:     a.before,
				Anchor: a.point,
				Side:   SideBefore,
				Pos:    c.store.pos(a.before),
			})
		}
		if a.after != NoPoint && a.role != RoleLast && a.role != RoleOnly {
			st.Handles = append(st.Handles, HandleState{
				ID:     a.after,
				Anchor: a.point,
				Side:   SideAfter,
				Pos:    c.store.pos(a.after),
			})
		}
	}
	return st
}

// Path returns the chain as a single Bézier path: one MoveTo followed by a
// CubicTo per segment. An empty chain yields a nil path, a single anchor just
// the MoveTo.
func (c *Chain) Path() curve.BezPath {
	if len(c.anchors) == 0 {
		return nil
	}
	var p curve.BezPath
	p.MoveTo(c.store.pos(c.anchors[0].point))
	for _, seg := range c.segments {
		p.CubicTo(seg.cubic.P1, seg.cubic.P2, seg.cubic.P3)
	}
	return p
}
