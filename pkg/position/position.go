package position

import (
	"log"

	"popmount/pkg/dom"
	"popmount/pkg/geom"
)

// HorizAnchor names a horizontal point on the anchor rectangle.
type HorizAnchor string

const (
	HorizLeft   HorizAnchor = "left"
	HorizCenter HorizAnchor = "center"
	HorizRight  HorizAnchor = "right"
)

// VertAnchor names a vertical point on the anchor rectangle.
type VertAnchor string

const (
	VertTop    VertAnchor = "top"
	VertCenter VertAnchor = "center"
	VertBottom VertAnchor = "bottom"
)

// AnchorSpec is the symbolic anchor point a floating element is derived
// from. It is a value type: flips produce a new spec, never mutate one.
type AnchorSpec struct {
	X HorizAnchor
	Y VertAnchor
}

// FlipX returns the spec with left and right swapped. Center is its own
// mirror. Flipping twice is the identity.
func (s AnchorSpec) FlipX() AnchorSpec {
	switch s.X {
	case HorizLeft:
		s.X = HorizRight
	case HorizRight:
		s.X = HorizLeft
	}
	return s
}

// FlipY returns the spec with top and bottom swapped.
func (s AnchorSpec) FlipY() AnchorSpec {
	switch s.Y {
	case VertTop:
		s.Y = VertBottom
	case VertBottom:
		s.Y = VertTop
	}
	return s
}

// warnf reports missing-reference diagnostics. Positioning never fails;
// these are breadcrumbs, not control flow. Tests may swap it out.
var warnf = log.Printf

// CalculatePosition maps the anchor's rectangle and the two keywords to
// an absolute document-space position. A nil or detached anchor yields
// the degraded {0, 0} default; layout must never be blocked by a
// positioning failure. Unrecognized keywords fall back to top-left.
func CalculatePosition(anchor *dom.Element, x HorizAnchor, y VertAnchor) geom.Offset {
	if anchor == nil {
		warnf("position: calculate called with nil anchor")
		return geom.Offset{}
	}
	if !anchor.InDocument() {
		warnf("position: anchor <%s> is not attached to a document", anchor.TagName)
		return geom.Offset{}
	}

	rect := TargetRect(anchor)

	var left, top float64
	switch x {
	case HorizCenter:
		left = rect.CenterX()
	case HorizRight:
		left = rect.Right()
	default:
		left = rect.Left
	}
	switch y {
	case VertCenter:
		top = rect.CenterY()
	case VertBottom:
		top = rect.Bottom()
	default:
		top = rect.Top
	}
	return geom.Offset{Left: left, Top: top}
}

// CalculateSpecPosition is CalculatePosition on an AnchorSpec.
func CalculateSpecPosition(anchor *dom.Element, spec AnchorSpec) geom.Offset {
	return CalculatePosition(anchor, spec.X, spec.Y)
}

// TargetRect returns the anchor's rectangle in document coordinates: the
// client rectangle normalized back from document zoom, then compensated
// by the document scroll. Fixed anchors are already viewport-relative and
// receive no scroll compensation.
func TargetRect(anchor *dom.Element) geom.Rect {
	rect := anchor.BoundingClientRect()

	root := anchor.Root()
	if zoom := root.Style.GetZoom(); zoom != 1 {
		rect = rect.Scale(1/zoom, 1/zoom)
	}
	if !anchor.IsFixed() {
		rect = rect.Translate(root.ScrollLeft(), root.ScrollTop())
	}
	return rect
}

// CalculateRelativePosition computes the anchor's offset inside an
// already-laid-out ancestor chain, for floating elements positioned via
// CSS containment instead of global absolute coordinates. It walks the
// anchor's offsetParent links and subtracts each ancestor's scroll
// offset. A fixed floating element keeps viewport coordinates.
func CalculateRelativePosition(anchor, element *dom.Element) geom.Offset {
	if anchor == nil {
		warnf("position: relative calculation called with nil anchor")
		return geom.Offset{}
	}
	if element != nil && element.IsFixed() {
		rect := anchor.BoundingClientRect()
		return geom.Offset{Left: rect.Left, Top: rect.Top}
	}

	left := anchor.OffsetLeft()
	top := anchor.OffsetTop()
	for parent := anchor.OffsetParent(); parent != nil; parent = parent.OffsetParent() {
		left -= parent.ScrollLeft()
		top -= parent.ScrollTop()
	}
	return geom.Offset{Left: left, Top: top}
}
