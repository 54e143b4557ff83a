package dom

import (
	"popmount/pkg/css"
	"popmount/pkg/geom"
)

// Element is a node in a Document tree. It carries the computed style and
// layout geometry the positioning engine reads, plus per-element scroll
// state and event listeners. The embedder (a layout engine, a UI shell,
// or a test) owns the tree shape and the layout rectangles.
type Element struct {
	TagName    string
	Attributes map[string]string
	Style      *css.Style
	Parent     *Element
	Children   []*Element

	doc *Element // document root this element was created for; nil for the root itself

	rect       geom.Rect
	scrollLeft float64
	scrollTop  float64

	listeners []*Listener

	// Document-root-only state.
	viewportWidth  float64
	viewportHeight float64
}

// Document is the root element of a tree plus viewport state. The root
// plays the part of the html element: it is excluded from stacking scans
// and owns the document scroll position.
type Document struct {
	Root *Element
}

// NewDocument creates a document with the given viewport size.
func NewDocument(viewportWidth, viewportHeight float64) *Document {
	root := &Element{
		TagName:        "html",
		Style:          css.NewStyle(),
		Children:       make([]*Element, 0),
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
	return &Document{Root: root}
}

// CreateElement creates a detached element belonging to this document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		TagName:  tag,
		Style:    css.NewStyle(),
		Children: make([]*Element, 0),
		doc:      d.Root,
	}
}

// ViewportSize returns the window dimensions.
func (d *Document) ViewportSize() (float64, float64) {
	return d.Root.viewportWidth, d.Root.viewportHeight
}

// SetViewportSize resizes the window and notifies resize listeners on the
// document root.
func (d *Document) SetViewportSize(width, height float64) {
	d.Root.viewportWidth = width
	d.Root.viewportHeight = height
	d.Root.DispatchEvent(Event{Type: EventResize, Target: d.Root})
}

// ScrollLeft returns the document's horizontal scroll offset.
func (d *Document) ScrollLeft() float64 { return d.Root.scrollLeft }

// ScrollTop returns the document's vertical scroll offset.
func (d *Document) ScrollTop() float64 { return d.Root.scrollTop }

// SetScroll scrolls the document and notifies scroll listeners on the root.
func (d *Document) SetScroll(left, top float64) {
	d.Root.scrollLeft = left
	d.Root.scrollTop = top
	d.Root.DispatchEvent(Event{Type: EventScroll, Target: d.Root})
}

// Zoom returns the document zoom factor, read from the root's style.
func (d *Document) Zoom() float64 {
	return d.Root.Style.GetZoom()
}

// GetElementByID finds the element with the given id attribute, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return findByID(d.Root, id)
}

func findByID(n *Element, id string) *Element {
	if got, ok := n.GetAttribute("id"); ok && got == id {
		return n
	}
	for _, child := range n.Children {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

func (e *Element) GetAttribute(name string) (string, bool) {
	if e.Attributes == nil {
		return "", false
	}
	val, ok := e.Attributes[name]
	return val, ok
}

func (e *Element) SetAttribute(name, value string) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
	if name == "style" {
		e.Style = css.ParseInlineStyle(value)
	}
}

// AddChild adds a child element and sets up the parent relationship.
func (e *Element) AddChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
}

// RemoveChild removes the given child from this element's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (e *Element) RemoveChild(child *Element) *Element {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// Contains returns true if other is a descendant of e (or e itself).
func (e *Element) Contains(other *Element) bool {
	if e == other {
		return true
	}
	for _, child := range e.Children {
		if child.Contains(other) {
			return true
		}
	}
	return false
}

// Root returns the document root this element is created for. For a root
// element it returns the element itself.
func (e *Element) Root() *Element {
	if e.doc == nil {
		return e
	}
	return e.doc
}

// OwnerDocument returns the document view over this element's root.
func (e *Element) OwnerDocument() *Document {
	return &Document{Root: e.Root()}
}

// InDocument reports whether the element is attached under its document
// root. Detached elements position to the degraded {0,0} default.
func (e *Element) InDocument() bool {
	if e.doc == nil {
		return true // the root itself
	}
	return e.doc.Contains(e)
}

// Siblings returns the other children of this element's parent.
func (e *Element) Siblings() []*Element {
	if e.Parent == nil {
		return nil
	}
	siblings := make([]*Element, 0, len(e.Parent.Children))
	for _, c := range e.Parent.Children {
		if c != e {
			siblings = append(siblings, c)
		}
	}
	return siblings
}
