package render

import (
	"image"

	"github.com/fogleman/gg"

	"popmount/pkg/collision"
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

// Renderer paints a positioning outcome into an image for visual
// debugging: the containing region, the anchor, the floating element at
// its committed position, and any still-colliding edges.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Scene is one positioning outcome to paint.
type Scene struct {
	Region geom.Edges
	Anchor geom.Rect
	Popup  geom.Rect
	Report collision.Report
}

// SceneFor captures the live geometry of an anchor/element pair against
// the given containing region (nil for the viewport).
func SceneFor(anchor, elem, region *dom.Element) Scene {
	scene := Scene{}
	if elem != nil {
		scene.Region = collision.RegionEdges(elem, region)
		scene.Popup = position.TargetRect(elem)
		scene.Report = collision.IsCollide(elem, region, nil)
	}
	if anchor != nil {
		scene.Anchor = position.TargetRect(anchor)
	}
	return scene
}

// Draw paints the scene back-to-front: region, anchor, popup, collision
// markers.
func (r *Renderer) Draw(scene Scene) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	// Containing region outline.
	r.context.SetRGB(0.6, 0.6, 0.6)
	r.context.SetLineWidth(1)
	r.drawEdges(scene.Region)
	r.context.Stroke()

	// Anchor box.
	r.context.SetRGBA(0.2, 0.4, 0.8, 0.9)
	r.drawRect(scene.Anchor)
	r.context.Fill()

	// Floating element.
	r.context.SetRGBA(0.95, 0.75, 0.2, 0.8)
	r.drawRect(scene.Popup)
	r.context.Fill()
	r.context.SetRGB(0.6, 0.45, 0.05)
	r.drawRect(scene.Popup)
	r.context.Stroke()

	r.markCollisions(scene)
}

// markCollisions strokes the exceeded region edges in red.
func (r *Renderer) markCollisions(scene Scene) {
	if scene.Report.IsEmpty() {
		return
	}
	r.context.SetRGB(0.85, 0.1, 0.1)
	r.context.SetLineWidth(3)
	e := scene.Region
	if scene.Report.Has(collision.SideTop) {
		r.context.DrawLine(e.Left, e.Top, e.Right, e.Top)
	}
	if scene.Report.Has(collision.SideLeft) {
		r.context.DrawLine(e.Left, e.Top, e.Left, e.Bottom)
	}
	if scene.Report.Has(collision.SideRight) {
		r.context.DrawLine(e.Right, e.Top, e.Right, e.Bottom)
	}
	if scene.Report.Has(collision.SideBottom) {
		r.context.DrawLine(e.Left, e.Bottom, e.Right, e.Bottom)
	}
	r.context.Stroke()
}

func (r *Renderer) drawRect(rect geom.Rect) {
	r.context.DrawRectangle(rect.Left, rect.Top, rect.Width, rect.Height)
}

func (r *Renderer) drawEdges(e geom.Edges) {
	r.context.DrawRectangle(e.Left, e.Top, e.Right-e.Left, e.Bottom-e.Top)
}

// Image returns the rendered snapshot.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the snapshot to disk.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
