package collision

import (
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

// Side names one edge of the containing region.
type Side string

const (
	SideTop    Side = "top"
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
)

// Report is the set of region edges a candidate rectangle exceeds. It is
// a pure function of the two rectangles; recomputing it for the same
// inputs always yields the same set.
type Report []Side

// Has reports whether the given edge was exceeded.
func (r Report) Has(s Side) bool {
	for _, side := range r {
		if side == s {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no edge was exceeded.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// Axes is the per-axis opt-in for collision handling. The two axes are
// evaluated and resolved independently.
type Axes struct {
	X bool
	Y bool
}

// Detect compares the candidate rectangle against the region edges and
// reports every exceeded edge. Touching an edge exactly is not a
// collision.
func Detect(rect geom.Rect, region geom.Edges) Report {
	var report Report
	if rect.Top < region.Top {
		report = append(report, SideTop)
	}
	if rect.Left < region.Left {
		report = append(report, SideLeft)
	}
	if rect.Right() > region.Right {
		report = append(report, SideRight)
	}
	if rect.Bottom() > region.Bottom {
		report = append(report, SideBottom)
	}
	return report
}

// IsCollide reports which region edges the element exceeds. With a nil
// region the document viewport is the containing region. A non-nil `at`
// overrides the element's live position, answering "what if I moved it
// here" before committing. A nil element never collides.
func IsCollide(elem *dom.Element, region *dom.Element, at *geom.Offset) Report {
	if elem == nil {
		return nil
	}
	rect := position.TargetRect(elem)
	if at != nil {
		rect = rect.At(*at)
	}
	return Detect(rect, RegionEdges(elem, region))
}

// RegionEdges resolves the containing region to document-space edges.
// The viewport region is the window rectangle at the current document
// scroll; an element region is its rectangle adjusted by its own scroll
// position.
func RegionEdges(elem *dom.Element, region *dom.Element) geom.Edges {
	doc := elem.OwnerDocument()
	zoom := doc.Zoom()

	if region == nil {
		width, height := doc.ViewportSize()
		left, top := doc.ScrollLeft(), doc.ScrollTop()
		return geom.Edges{
			Left:   left,
			Top:    top,
			Right:  left + width/zoom,
			Bottom: top + height/zoom,
		}
	}
	edges := position.TargetRect(region).Edges()
	return edges.Translate(region.ScrollLeft(), region.ScrollTop())
}
