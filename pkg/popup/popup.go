package popup

import (
	"strconv"

	"popmount/pkg/collision"
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

// State is a popup's lifecycle phase.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// Popup owns one floating element positioned against one anchor. All
// geometry flows through pure calculator/resolver calls into a single
// commit step; the instance only keeps the committed result, the
// lifecycle state, and its listener registrations. No two instances
// touch each other's element or listeners.
type Popup struct {
	element *dom.Element
	anchor  *dom.Element

	spec     position.AnchorSpec
	offsetX  float64
	offsetY  float64
	axes     collision.Axes
	viewport *dom.Element
	policy   ScrollPolicy
	relative bool

	state        State
	committed    geom.Offset
	resolvedSpec position.AnchorSpec
	zIndex       int
	targetInView bool

	registrations []registration
	closeSeq      int

	onOpen       func()
	onClose      func()
	onTargetExit func()
	enter        func()
	exit         func(done func())
}

// Option configures a popup at construction.
type Option func(*Popup)

// WithAnchorSpec sets the anchor point the element is derived from.
// Default: left, bottom (drop-down placement).
func WithAnchorSpec(x position.HorizAnchor, y position.VertAnchor) Option {
	return func(p *Popup) { p.spec = position.AnchorSpec{X: x, Y: y} }
}

// WithOffsets adds fixed pixel offsets to the calculated position.
func WithOffsets(x, y float64) Option {
	return func(p *Popup) { p.offsetX, p.offsetY = x, y }
}

// WithCollisionHandling enables flip/fit resolution per axis.
func WithCollisionHandling(axes collision.Axes) Option {
	return func(p *Popup) { p.axes = axes }
}

// WithViewport sets an explicit containing region element instead of the
// window viewport.
func WithViewport(region *dom.Element) Option {
	return func(p *Popup) { p.viewport = region }
}

// WithScrollPolicy selects the reaction to ancestor scrolls.
// Default: Reposition.
func WithScrollPolicy(policy ScrollPolicy) Option {
	return func(p *Popup) { p.policy = policy }
}

// WithRelativePositioning positions via the anchor's offset-parent chain
// (CSS containment) instead of global absolute coordinates. Collision
// handling does not apply in this mode; the containing element is
// expected to clip its own content.
func WithRelativePositioning() Option {
	return func(p *Popup) { p.relative = true }
}

// OnOpen registers a callback fired after the popup reaches Open.
func OnOpen(fn func()) Option {
	return func(p *Popup) { p.onOpen = fn }
}

// OnClose registers a callback fired after the popup reaches Closed.
func OnClose(fn func()) Option {
	return func(p *Popup) { p.onClose = fn }
}

// OnTargetExit registers a callback fired when the anchor leaves the
// window viewport.
func OnTargetExit(fn func()) Option {
	return func(p *Popup) { p.onTargetExit = fn }
}

// WithTransitions installs entrance and exit hooks. The exit hook
// receives a done function and decides when the close completes, which
// is how an exit animation defers the Closed state. A Show during the
// deferred close cancels it outright.
func WithTransitions(enter func(), exit func(done func())) Option {
	return func(p *Popup) { p.enter, p.exit = enter, exit }
}

// New creates a popup for the given floating element and anchor. The
// element stays closed until Show.
func New(element, anchor *dom.Element, opts ...Option) *Popup {
	p := &Popup{
		element:      element,
		anchor:       anchor,
		spec:         position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom},
		policy:       Reposition,
		targetInView: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.resolvedSpec = p.spec
	return p
}

// Show opens the popup: listeners attach and the initial position is
// computed and committed before the entrance hook runs. Showing while a
// deferred close is pending cancels that close and restores Open without
// replaying the open callbacks.
func (p *Popup) Show() {
	switch p.state {
	case StateOpen, StateOpening:
		return
	case StateClosing:
		p.closeSeq++
		p.state = StateOpen
		p.attachListeners()
		p.refreshPosition()
		return
	}

	p.state = StateOpening
	p.attachListeners()
	p.refreshPosition()
	if p.enter != nil {
		p.enter()
	}
	p.state = StateOpen
	if p.onOpen != nil {
		p.onOpen()
	}
}

// Hide closes the popup. Listeners detach immediately, before any exit
// transition completes, so a rapid re-open never races a queued close.
func (p *Popup) Hide() {
	if p.state != StateOpen && p.state != StateOpening {
		return
	}
	p.state = StateClosing
	p.detachListeners()

	p.closeSeq++
	seq := p.closeSeq
	finish := func() {
		// A Show since this Hide began has cancelled the close.
		if p.closeSeq != seq || p.state != StateClosing {
			return
		}
		p.state = StateClosed
		if p.onClose != nil {
			p.onClose()
		}
	}
	if p.exit != nil {
		p.exit(finish)
	} else {
		finish()
	}
}

// Refresh recomputes and commits the position of an open popup. Each
// recomputation is idempotent; callers may invoke it after anchor or
// content changes.
func (p *Popup) Refresh() {
	if p.state != StateOpen && p.state != StateOpening {
		return
	}
	p.refreshPosition()
}

// Destroy tears the popup down unconditionally: listeners are removed
// regardless of state, and any pending close is abandoned without its
// callback.
func (p *Popup) Destroy() {
	p.closeSeq++
	p.detachListeners()
	p.state = StateClosed
}

// State returns the lifecycle phase.
func (p *Popup) State() State { return p.state }

// Position returns the last committed offset.
func (p *Popup) Position() geom.Offset { return p.committed }

// ZIndex returns the last committed stack index.
func (p *Popup) ZIndex() int { return p.zIndex }

// ResolvedSpec returns the anchor spec in effect after collision
// handling; it differs from the configured spec on flipped axes.
func (p *Popup) ResolvedSpec() position.AnchorSpec { return p.resolvedSpec }

// refreshPosition runs the full pipeline and commits the result in one
// step. Ordering within the pipeline is fixed: calculator, detector,
// flip, re-check, fit, commit. No resolver observes a half-applied
// position.
func (p *Popup) refreshPosition() {
	offset, spec := p.resolve()
	p.commit(offset, spec)
}

func (p *Popup) resolve() (geom.Offset, position.AnchorSpec) {
	spec := p.spec

	if p.relative {
		base := position.CalculateRelativePosition(p.anchor, p.element)
		return geom.Offset{Left: base.Left + p.offsetX, Top: base.Top + p.offsetY}, spec
	}

	base := position.CalculateSpecPosition(p.anchor, spec)
	offset := geom.Offset{Left: base.Left + p.offsetX, Top: base.Top + p.offsetY}
	if !p.axes.X && !p.axes.Y {
		return offset, spec
	}

	report := collision.IsCollide(p.element, p.viewport, &offset)
	if report.IsEmpty() {
		return offset, spec
	}

	// Attempt flip, re-check, then fit whatever still collides. The
	// two-step pipeline bounds the work: one swap per axis, one clamp.
	if flipped := collision.Flip(p.element, p.anchor, p.offsetX, p.offsetY, spec, p.viewport, p.axes); flipped != nil {
		offset = flipped.Position
		spec = flipped.Spec
	}
	report = collision.IsCollide(p.element, p.viewport, &offset)
	if report.IsEmpty() {
		return offset, spec
	}
	fitAxes := collision.Axes{
		X: p.axes.X && (report.Has(collision.SideLeft) || report.Has(collision.SideRight)),
		Y: p.axes.Y && (report.Has(collision.SideTop) || report.Has(collision.SideBottom)),
	}
	offset = collision.Fit(p.element, p.viewport, fitAxes, offset)
	return offset, spec
}

// commit is the single apply step: record the result, raise the element
// above the document's stacking contexts, and mirror the position into
// the element's inline style.
func (p *Popup) commit(offset geom.Offset, spec position.AnchorSpec) {
	p.committed = offset
	p.resolvedSpec = spec
	p.zIndex = ComputeStackIndex(StackQueryFor(p.element))

	if p.element == nil {
		return
	}
	p.element.SetLayoutRect(p.element.LayoutRect().At(offset))
	p.element.Style.Set("left", formatPx(offset.Left))
	p.element.Style.Set("top", formatPx(offset.Top))
	p.element.Style.Set("z-index", strconv.Itoa(p.zIndex))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
