package popup

import (
	"popmount/pkg/dom"
)

// ScrollPolicy selects what a scroll on a registered ancestor does to an
// open popup.
type ScrollPolicy int

const (
	// Reposition re-runs the calculator and resolvers.
	Reposition ScrollPolicy = iota
	// Hide force-closes the popup.
	Hide
	// None leaves the popup where it is.
	None
)

func (p ScrollPolicy) String() string {
	switch p {
	case Reposition:
		return "reposition"
	case Hide:
		return "hide"
	case None:
		return "none"
	}
	return "unknown"
}

// ScrollableParents returns every scrollable ancestor of the anchor:
// elements whose computed overflow on either axis is auto or scroll,
// walked from the anchor up to, but not including, the document root —
// plus the root itself, unless the anchor sits in a fixed-position
// subtree (fixed content does not move with the document scroll).
func ScrollableParents(anchor *dom.Element) []*dom.Element {
	if anchor == nil {
		return nil
	}
	root := anchor.Root()
	var parents []*dom.Element
	for cur := anchor.Parent; cur != nil && cur != root; cur = cur.Parent {
		if cur.IsScrollable() {
			parents = append(parents, cur)
		}
	}
	if !anchor.InFixedContext() {
		parents = append(parents, root)
	}
	return parents
}

// registration pairs a listener handle with the element it was attached
// to, so teardown can always find its way back.
type registration struct {
	target *dom.Element
	handle *dom.Listener
}

// attachListeners registers scroll listeners on every scrollable ancestor
// of the anchor, and a resize listener on the document root. Idempotent:
// an already-attached popup is left alone, so a listener is never
// registered twice for one scroll source.
func (p *Popup) attachListeners() {
	if len(p.registrations) > 0 || p.anchor == nil {
		return
	}
	for _, parent := range ScrollableParents(p.anchor) {
		handle := parent.AddEventListener(dom.EventScroll, p.onScroll)
		p.registrations = append(p.registrations, registration{target: parent, handle: handle})
	}
	root := p.anchor.Root()
	handle := root.AddEventListener(dom.EventResize, p.onResize)
	p.registrations = append(p.registrations, registration{target: root, handle: handle})
}

// detachListeners removes every registration. Safe to call repeatedly and
// in any state; cleanup must be unconditional so abnormal teardown never
// leaks listeners across open/close cycles.
func (p *Popup) detachListeners() {
	for _, reg := range p.registrations {
		reg.target.RemoveEventListener(reg.handle)
	}
	p.registrations = nil
}

func (p *Popup) onScroll(dom.Event) {
	// Anything but Open means a close is already underway or done; a
	// second listener firing for the same burst must not close twice.
	if p.state != StateOpen {
		return
	}
	p.checkTargetVisibility()
	switch p.policy {
	case Reposition:
		p.refreshPosition()
	case Hide:
		p.Hide()
	case None:
	}
}

func (p *Popup) onResize(dom.Event) {
	if p.state != StateOpen {
		return
	}
	p.checkTargetVisibility()
	switch p.policy {
	case Hide:
		p.Hide()
	case Reposition, None:
		// A resize moves region edges even under the None scroll policy.
		p.refreshPosition()
	}
}

// checkTargetVisibility fires the target-exited callback when the
// anchor's rectangle leaves the window. The notification fires once per
// exit, not once per scroll event.
func (p *Popup) checkTargetVisibility() {
	if p.anchor == nil {
		return
	}
	rect := p.anchor.BoundingClientRect()
	width, height := p.anchor.OwnerDocument().ViewportSize()
	inView := rect.Left >= 0 && rect.Top >= 0 && rect.Right() <= width && rect.Bottom() <= height

	if !inView && p.targetInView && p.onTargetExit != nil {
		p.onTargetExit()
	}
	p.targetInView = inView
}
