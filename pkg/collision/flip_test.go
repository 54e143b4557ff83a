package collision

import (
	"testing"

	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/position"
)

func flipFixture(t *testing.T, anchorRect geom.Rect) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument(800, 600)
	anchor := doc.CreateElement("button")
	doc.Root.AddChild(anchor)
	anchor.SetLayoutRect(anchorRect)

	popup := doc.CreateElement("div")
	popup.SetAttribute("style", "position: absolute")
	doc.Root.AddChild(popup)
	popup.SetLayoutRect(geom.NewRect(0, 0, 200, 100))
	return doc, anchor, popup
}

func TestFlip_XOverflowSwapsToRight(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(650, 50, 100, 40))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 10, 0, spec, nil, Axes{X: true, Y: false})
	if res == nil {
		t.Fatal("expected a flip result")
	}
	if !res.FlippedX {
		t.Fatal("expected an X flip")
	}
	// anchor.left - width - offsetX = 650 - 200 - 10
	if res.Position.Left != 440 {
		t.Errorf("expected flipped left 440, got %f", res.Position.Left)
	}
	if res.Spec.X != position.HorizRight {
		t.Errorf("expected spec rewritten to right, got %s", res.Spec.X)
	}
	if res.Spec.Y != position.VertBottom {
		t.Error("flip must not touch the orthogonal axis")
	}
}

func TestFlip_YOverflowSwapsToBottom(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(100, 500, 200, 50))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertTop}
	res := Flip(popup, anchor, 0, 5, spec, nil, Axes{X: false, Y: true})
	if res == nil || !res.FlippedY {
		t.Fatal("expected a Y flip")
	}
	// anchor.top - height - offsetY = 500 - 100 - 5
	if res.Position.Top != 395 {
		t.Errorf("expected flipped top 395, got %f", res.Position.Top)
	}
	if res.Spec.Y != position.VertBottom {
		t.Errorf("expected spec rewritten to bottom, got %s", res.Spec.Y)
	}
}

func TestFlip_NoCollisionNoSwap(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(100, 50, 200, 100))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 0, 0, spec, nil, Axes{X: true, Y: true})
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.FlippedX || res.FlippedY {
		t.Error("in-bounds candidate must not flip")
	}
	if res.Position.Left != 100 || res.Position.Top != 150 {
		t.Errorf("expected untouched candidate (100, 150), got %+v", res.Position)
	}
	if res.Spec != spec {
		t.Error("spec must be unchanged without a flip")
	}
}

func TestFlip_DisabledAxisNeverFlips(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(650, 50, 100, 40))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 0, 0, spec, nil, Axes{X: false, Y: true})
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.FlippedX {
		t.Error("X axis is disabled and must not flip")
	}
}

func TestFlip_SuppressedWhenAnchorOffRegion(t *testing.T) {
	// The anchor's left edge sits outside the region; flipping the popup
	// to hang off that edge would make the overflow worse.
	_, anchor, popup := flipFixture(t, geom.NewRect(-20, 50, 100, 40))
	popup.SetLayoutRect(geom.NewRect(0, 0, 850, 100))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 0, 0, spec, nil, Axes{X: true, Y: false})
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.FlippedX {
		t.Error("flip must be suppressed when the anchor's opposite edge is off-region")
	}
}

func TestFlip_AnchorExactlyOnBoundaryStillFlips(t *testing.T) {
	// Strict inequality at the boundary: an anchor edge flush with the
	// region edge still permits the flip.
	_, anchor, popup := flipFixture(t, geom.NewRect(0, 50, 900, 40))
	popup.SetLayoutRect(geom.NewRect(0, 0, 850, 100))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 0, 0, spec, nil, Axes{X: true, Y: false})
	if res == nil {
		t.Fatal("expected a result")
	}
	if !res.FlippedX {
		t.Error("anchor edge exactly on the boundary must still flip")
	}
}

func TestFlip_RightSpecCollidingLeft(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(150, 50, 100, 40))

	// A large negative offset pushes the candidate past the left edge.
	spec := position.AnchorSpec{X: position.HorizRight, Y: position.VertBottom}
	res := Flip(popup, anchor, -300, 0, spec, nil, Axes{X: true, Y: false})
	if res == nil || !res.FlippedX {
		t.Fatal("expected an X flip back to the right side")
	}
	// anchor.right + offsetX = 250 - 300
	if res.Position.Left != -50 {
		t.Errorf("expected mirrored formula result -50, got %f", res.Position.Left)
	}
	if res.Spec.X != position.HorizLeft {
		t.Errorf("expected spec rewritten to left, got %s", res.Spec.X)
	}
}

func TestFlip_DoubleFlipRestoresSpec(t *testing.T) {
	_, anchor, popup := flipFixture(t, geom.NewRect(650, 50, 100, 40))

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	res := Flip(popup, anchor, 0, 0, spec, nil, Axes{X: true, Y: false})
	if res == nil || !res.FlippedX {
		t.Fatal("expected an X flip")
	}
	if res.Spec.FlipX() != spec {
		t.Error("flipping the rewritten spec must restore the original")
	}
}

func TestFlip_NilInputs(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := doc.CreateElement("div")
	doc.Root.AddChild(el)

	spec := position.AnchorSpec{X: position.HorizLeft, Y: position.VertBottom}
	if Flip(nil, el, 0, 0, spec, nil, Axes{X: true}) != nil {
		t.Error("nil element must yield a nil result")
	}
	if Flip(el, nil, 0, 0, spec, nil, Axes{X: true}) != nil {
		t.Error("nil anchor must yield a nil result")
	}

	detached := doc.CreateElement("button")
	if Flip(el, detached, 0, 0, spec, nil, Axes{X: true}) != nil {
		t.Error("detached anchor must yield a nil result")
	}
}
