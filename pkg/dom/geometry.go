package dom

import (
	"popmount/pkg/css"
	"popmount/pkg/geom"
)

// Layout geometry. The embedder assigns each element a layout rectangle
// in document coordinates (viewport coordinates for fixed elements);
// everything else is derived from it.

// SetLayoutRect assigns the element's border box. Coordinates are
// document-space, except for fixed-position elements whose rectangle is
// viewport-space.
func (e *Element) SetLayoutRect(r geom.Rect) {
	e.rect = r
}

// LayoutRect returns the border box as assigned by the embedder.
func (e *Element) LayoutRect() geom.Rect {
	return e.rect
}

// ScrollLeft returns the element's own horizontal scroll offset.
func (e *Element) ScrollLeft() float64 { return e.scrollLeft }

// ScrollTop returns the element's own vertical scroll offset.
func (e *Element) ScrollTop() float64 { return e.scrollTop }

// SetScroll scrolls the element's content and notifies its scroll
// listeners.
func (e *Element) SetScroll(left, top float64) {
	e.scrollLeft = left
	e.scrollTop = top
	e.DispatchEvent(Event{Type: EventScroll, Target: e})
}

// IsScrollable reports whether either overflow axis is auto or scroll.
func (e *Element) IsScrollable() bool {
	return e.Style.IsScrollable()
}

// IsFixed reports whether the element's computed position is fixed.
func (e *Element) IsFixed() bool {
	return e.Style.GetPosition() == css.PositionFixed
}

// InFixedContext reports whether the element or any ancestor is
// position: fixed. Fixed subtrees are viewport-relative and exempt from
// document scroll compensation.
func (e *Element) InFixedContext() bool {
	for cur := e; cur != nil; cur = cur.Parent {
		if cur.IsFixed() {
			return true
		}
	}
	return false
}

// EffectiveScale returns the accumulated transform scale factors from the
// element and its ancestors. Scaling is applied from the element's own
// top-left corner, so only sizes are affected.
func (e *Element) EffectiveScale() (float64, float64) {
	sx, sy := 1.0, 1.0
	for cur := e; cur != nil; cur = cur.Parent {
		fx, fy := cur.Style.GetTransformScale()
		sx *= fx
		sy *= fy
	}
	return sx, sy
}

// BoundingClientRect returns the element's rectangle in viewport
// coordinates, the way a browser reports it: the layout rectangle shifted
// by every scrolled ancestor and by the document scroll (fixed subtrees
// are exempt), then magnified by the document zoom. Ancestor transform
// scale magnifies the size from the element's own origin.
func (e *Element) BoundingClientRect() geom.Rect {
	r := e.rect

	if !e.InFixedContext() {
		for cur := e.Parent; cur != nil && cur.doc != nil; cur = cur.Parent {
			if cur.IsScrollable() {
				r = r.Translate(-cur.scrollLeft, -cur.scrollTop)
			}
		}
		root := e.Root()
		r = r.Translate(-root.scrollLeft, -root.scrollTop)
	}

	sx, sy := e.EffectiveScale()
	r.Width *= sx
	r.Height *= sy

	zoom := e.Root().Style.GetZoom()
	if zoom != 1 {
		r = r.Scale(zoom, zoom)
	}
	return r
}

// OffsetParent returns the nearest positioned ancestor, or the document
// root when no ancestor is positioned. The root itself has no offset
// parent.
func (e *Element) OffsetParent() *Element {
	if e.doc == nil || e.Parent == nil {
		return nil
	}
	for cur := e.Parent; cur != nil; cur = cur.Parent {
		if cur.doc == nil {
			return cur // reached the root
		}
		if cur.Style.IsPositioned() {
			return cur
		}
	}
	return e.doc
}

// OffsetLeft returns the element's horizontal offset from its offset
// parent's layout rectangle.
func (e *Element) OffsetLeft() float64 {
	if p := e.OffsetParent(); p != nil {
		return e.rect.Left - p.rect.Left
	}
	return e.rect.Left
}

// OffsetTop returns the element's vertical offset from its offset
// parent's layout rectangle.
func (e *Element) OffsetTop() float64 {
	if p := e.OffsetParent(); p != nil {
		return e.rect.Top - p.rect.Top
	}
	return e.rect.Top
}
