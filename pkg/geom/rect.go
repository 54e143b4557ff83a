package geom

// Offset is an absolute pixel position in document coordinates
// (viewport coordinates for fixed-position elements).
type Offset struct {
	Left float64
	Top  float64
}

// Rect is a rectangle described by its top-left corner and size.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from a corner and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the right edge (left + width).
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge (top + height).
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 {
	return r.Left + r.Width/2
}

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return r.Top + r.Height/2
}

// Origin returns the rectangle's top-left corner as an Offset.
func (r Rect) Origin() Offset {
	return Offset{Left: r.Left, Top: r.Top}
}

// At returns a copy of the rectangle moved so its top-left corner sits at o.
func (r Rect) At(o Offset) Rect {
	return Rect{Left: o.Left, Top: o.Top, Width: r.Width, Height: r.Height}
}

// Translate returns a copy of the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Width: r.Width, Height: r.Height}
}

// Scale returns a copy of the rectangle with every coordinate multiplied
// by the given per-axis factors. Used for zoom and transform handling.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{Left: r.Left * sx, Top: r.Top * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// Edges is a rectangle resolved to its four edge coordinates. Containing
// regions are always reduced to this form before collision comparisons.
type Edges struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Edges resolves the rectangle to edge form.
func (r Rect) Edges() Edges {
	return Edges{Top: r.Top, Left: r.Left, Right: r.Right(), Bottom: r.Bottom()}
}

// Translate returns a copy of the edge rectangle shifted by (dx, dy).
func (e Edges) Translate(dx, dy float64) Edges {
	return Edges{Top: e.Top + dy, Left: e.Left + dx, Right: e.Right + dx, Bottom: e.Bottom + dy}
}

// Contains reports whether the inner rectangle lies fully inside e.
func (e Edges) Contains(r Rect) bool {
	return r.Left >= e.Left && r.Top >= e.Top && r.Right() <= e.Right && r.Bottom() <= e.Bottom
}
