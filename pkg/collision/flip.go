package collision

import (
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

// Result is the outcome of a flip attempt: the candidate position and the
// anchor spec actually used, which differs from the requested spec on any
// axis that flipped.
type Result struct {
	Position geom.Offset
	Spec     position.AnchorSpec
	FlippedX bool
	FlippedY bool
}

// Flip computes the candidate position for the requested anchor spec and,
// per enabled axis, swaps to the opposite anchor side when the element
// would exceed the region on that axis. A flip is a single swap, never a
// search: if the flipped position still collides, Fit is the designated
// fallback. Returns nil when the element or anchor is unavailable, so a
// positioning failure degrades to a no-op.
//
// The flip on an axis is suppressed when the anchor's own opposite edge
// already lies strictly outside the region on the side the element would
// move to; flipping an element toward an off-screen anchor edge only
// makes the overflow worse and invites oscillation. An anchor edge
// exactly on the region boundary still permits the flip.
func Flip(elem, anchor *dom.Element, offsetX, offsetY float64, spec position.AnchorSpec, region *dom.Element, axes Axes) *Result {
	if elem == nil || anchor == nil || !anchor.InDocument() {
		return nil
	}

	edges := RegionEdges(elem, region)
	anchorRect := position.TargetRect(anchor)
	base := position.CalculateSpecPosition(anchor, spec)
	candidate := geom.Offset{Left: base.Left + offsetX, Top: base.Top + offsetY}
	rect := position.TargetRect(elem).At(candidate)

	result := &Result{Position: candidate, Spec: spec}

	if axes.X {
		switch spec.X {
		case position.HorizLeft:
			if rect.Right() > edges.Right && anchorRect.Left >= edges.Left {
				result.Position.Left = anchorRect.Left - rect.Width - offsetX
				result.Spec = result.Spec.FlipX()
				result.FlippedX = true
			}
		case position.HorizRight:
			if rect.Left < edges.Left && anchorRect.Right() <= edges.Right {
				result.Position.Left = anchorRect.Right() + offsetX
				result.Spec = result.Spec.FlipX()
				result.FlippedX = true
			}
		}
	}

	if axes.Y {
		switch spec.Y {
		case position.VertTop:
			if rect.Bottom() > edges.Bottom && anchorRect.Top >= edges.Top {
				result.Position.Top = anchorRect.Top - rect.Height - offsetY
				result.Spec = result.Spec.FlipY()
				result.FlippedY = true
			}
		case position.VertBottom:
			if rect.Top < edges.Top && anchorRect.Bottom() <= edges.Bottom {
				result.Position.Top = anchorRect.Bottom() + offsetY
				result.Spec = result.Spec.FlipY()
				result.FlippedY = true
			}
		}
	}

	return result
}
