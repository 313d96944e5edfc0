package bezier

import (
	"slices"

	"honnef.co/go/curve"
)

// The dependency index maps each point to the segments whose geometry it
// defines: at most two segments per anchor, exactly one per handle. A move
// therefore refreshes a small fixed set of segments rather than the whole
// chain.

// register adds the segment to the index under each of the four points that
// define it.
func (c *Chain) register(seg *segment) {
	for _, id := range seg.points() {
		c.deps[id] = append(c.deps[id], seg)
	}
}

// unregister removes the segment from the index.
func (c *Chain) unregister(seg *segment) {
	for _, id := range seg.points() {
		refs := slices.DeleteFunc(c.deps[id], func(s *segment) bool {
			return s == seg
		})
		if len(refs) == 0 {
			delete(c.deps, id)
		} else {
			c.deps[id] = refs
		}
	}
}

// refreshPoint recomputes the cached geometry of every segment referencing
// the point. Each recomputation reads current positions only, so refreshing
// is idempotent and order-independent.
func (c *Chain) refreshPoint(id PointID) {
	for _, seg := range c.deps[id] {
		c.refresh(seg)
	}
}

// refresh rebuilds the segment's cubic and its two guide lines from the
// store.
func (c *Chain) refresh(seg *segment) {
	p0 := c.store.pos(seg.start.point)
	p1 := c.store.pos(seg.c1)
	p2 := c.store.pos(seg.c2)
	p3 := c.store.pos(seg.end.point)
	seg.cubic = curve.CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
	seg.guides = [2]curve.Line{{P0: p0, P1: p1}, {P0: p3, P1: p2}}
}
