package popup

import (
	"testing"

	"popmount/pkg/dom"
)

func TestScrollableParents_WalksToRoot(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	outer := doc.CreateElement("div")
	outer.SetAttribute("style", "overflow: auto")
	middle := doc.CreateElement("div") // not scrollable
	inner := doc.CreateElement("div")
	inner.SetAttribute("style", "overflow-y: scroll")
	anchor := doc.CreateElement("button")

	inner.AddChild(anchor)
	middle.AddChild(inner)
	outer.AddChild(middle)
	doc.Root.AddChild(outer)

	parents := ScrollableParents(anchor)
	if len(parents) != 3 {
		t.Fatalf("expected inner, outer and root, got %d parents", len(parents))
	}
	if parents[0] != inner || parents[1] != outer {
		t.Error("scrollable ancestors must come innermost first")
	}
	if parents[2] != doc.Root {
		t.Error("the document root must be included")
	}
}

func TestScrollableParents_FixedAncestorExcludesRoot(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	fixed := doc.CreateElement("div")
	fixed.SetAttribute("style", "position: fixed")
	pane := doc.CreateElement("div")
	pane.SetAttribute("style", "overflow: auto")
	anchor := doc.CreateElement("button")

	pane.AddChild(anchor)
	fixed.AddChild(pane)
	doc.Root.AddChild(fixed)

	parents := ScrollableParents(anchor)
	if len(parents) != 1 || parents[0] != pane {
		t.Fatalf("expected only the pane for a fixed subtree, got %d parents", len(parents))
	}
}

func TestScrollableParents_NilAnchor(t *testing.T) {
	if ScrollableParents(nil) != nil {
		t.Error("nil anchor must yield no parents")
	}
}

func TestScrollPolicyString(t *testing.T) {
	if Reposition.String() != "reposition" || Hide.String() != "hide" || None.String() != "none" {
		t.Error("unexpected policy names")
	}
	if ScrollPolicy(42).String() != "unknown" {
		t.Error("out-of-range policy must stringify as unknown")
	}
}
