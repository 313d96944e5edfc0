// Package bezier implements the data model behind an interactive pen tool: an
// ordered chain of anchor points joined by cubic Bézier segments, with a pair
// of draggable control handles per segment.
//
// The package deliberately contains no rendering, hit-testing, or input
// handling. A presentation layer feeds it clicks ([Chain.AddAnchor]), drags
// ([Chain.MovePoint], [Chain.HandleDragEnd]), and removal requests
// ([Chain.RemoveAnchor]), and reads back a consistent snapshot
// ([Chain.RenderState], [Chain.Path]) to draw. Geometry types come from
// [honnef.co/go/curve]: segments are [curve.CubicBez] values, guide lines are
// [curve.Line] values, and the whole chain renders as a [curve.BezPath].
//
// # Chains, anchors, and handles
//
// A [Chain] is an ordered sequence of anchors; segment i joins anchor i to
// anchor i+1. Each segment owns two handles: one attached to its start anchor
// (the anchor's "after" side) and one attached to its end anchor (the "before"
// side). Handles never exist without a segment, and a segment's handles are
// created and destroyed with it.
//
// When a new anchor extends a chain that already has a segment, the outgoing
// handle of the joint anchor is placed as the point-reflection of that
// anchor's incoming handle, so the curve appears to leave the joint along the
// tangent it arrived on. This mirroring happens once, at creation; afterwards
// every handle moves freely.
//
// Each anchor carries a derived [Role] (only, first, last, or center) that
// tells the presentation layer which handles to show. Roles are recomputed on
// every insertion and removal.
//
// # Identity
//
// All points, anchors and handles alike, live in a [Store] and are addressed
// by [PointID]. Ids are arena indices and are never reused, so an operation
// against a point that has been deleted fails with [ErrNotFound] instead of
// silently hitting an unrelated point.
//
// # Handle following
//
// By default an anchor and its handles move independently. Setting
// [Chain.FollowHandles] switches to the behavior of a simple single-curve
// editor: moving an anchor drags its handles along, each keeping the offset
// recorded the last time it was released ([Chain.HandleDragEnd]).
package bezier
