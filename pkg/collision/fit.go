package collision

import (
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

// Fit clamps the candidate position so the element's bounding box stays
// inside the containing region, per enabled axis, without changing the
// anchor side. A nil element returns the candidate unchanged.
func Fit(elem *dom.Element, region *dom.Element, axes Axes, at geom.Offset) geom.Offset {
	if elem == nil {
		return at
	}
	rect := position.TargetRect(elem).At(at)
	return FitRect(rect, RegionEdges(elem, region), axes)
}

// FitRect is the pure clamping core. Far-edge overflow shifts the
// position back flush with the far edge; near-edge overflow clamps
// forward to the near edge. The near-edge clamp runs second so it wins
// when both apply: an element larger than the region must show its
// top/left, not its bottom/right.
func FitRect(rect geom.Rect, region geom.Edges, axes Axes) geom.Offset {
	pos := rect.Origin()

	if axes.X {
		if pos.Left+rect.Width > region.Right {
			pos.Left = region.Right - rect.Width
		}
		if pos.Left < region.Left {
			pos.Left = region.Left
		}
	}
	if axes.Y {
		if pos.Top+rect.Height > region.Bottom {
			pos.Top = region.Bottom - rect.Height
		}
		if pos.Top < region.Top {
			pos.Top = region.Top
		}
	}
	return pos
}
