package popup

import (
	"math"
	"testing"

	"popmount/pkg/dom"
)

type fakeStack struct {
	ancestors []int
	rootKids  []int
	siblings  []int
}

func (f *fakeStack) AncestorIndices() []int      { return f.ancestors }
func (f *fakeStack) RootChildIndices() []int     { return f.rootKids }
func (f *fakeStack) ParentSiblingIndices() []int { return f.siblings }

func TestComputeStackIndex_FloorApplies(t *testing.T) {
	got := ComputeStackIndex(&fakeStack{})
	if got != 1000 {
		t.Errorf("empty document must yield floor+1 = 1000, got %d", got)
	}
}

func TestComputeStackIndex_NilQuery(t *testing.T) {
	if got := ComputeStackIndex(nil); got != 1 {
		t.Errorf("nil query must degrade to 1, got %d", got)
	}
}

func TestComputeStackIndex_TakesOverallMax(t *testing.T) {
	q := &fakeStack{
		ancestors: []int{10, 1200},
		rootKids:  []int{500},
		siblings:  []int{3000, 40},
	}
	if got := ComputeStackIndex(q); got != 3001 {
		t.Errorf("expected 3001, got %d", got)
	}
}

func TestComputeStackIndex_Monotonicity(t *testing.T) {
	q := &fakeStack{siblings: []int{2000}}
	first := ComputeStackIndex(q)
	second := ComputeStackIndex(q)
	if first != second {
		t.Errorf("repeat computation must be stable: %d vs %d", first, second)
	}

	q.siblings = append(q.siblings, 5000)
	raised := ComputeStackIndex(q)
	if raised != 5001 {
		t.Errorf("a higher sibling must raise the result, got %d", raised)
	}
	if raised <= first {
		t.Error("result must grow with new stacked siblings")
	}
}

func TestComputeStackIndex_SaturatesAtMaxInt32(t *testing.T) {
	q := &fakeStack{ancestors: []int{math.MaxInt32}}
	if got := ComputeStackIndex(q); got != math.MaxInt32 {
		t.Errorf("expected saturation at MaxInt32, got %d", got)
	}
	q = &fakeStack{ancestors: []int{math.MaxInt32 - 1}}
	if got := ComputeStackIndex(q); got != math.MaxInt32 {
		t.Errorf("expected MaxInt32, got %d", got)
	}
}

func TestStackQueryFor_LiveTree(t *testing.T) {
	doc := dom.NewDocument(800, 600)

	// Positioned, stacked ancestor chain.
	outer := doc.CreateElement("div")
	outer.SetAttribute("style", "position: relative; z-index: 40")
	inner := doc.CreateElement("div")
	inner.SetAttribute("style", "position: absolute; z-index: 70")

	// A non-positioned z-index and a positioned auto never qualify.
	noisy := doc.CreateElement("div")
	noisy.SetAttribute("style", "z-index: 9000")
	autoZ := doc.CreateElement("div")
	autoZ.SetAttribute("style", "position: absolute; z-index: auto")

	el := doc.CreateElement("div")
	inner.AddChild(noisy)
	inner.AddChild(autoZ)
	inner.AddChild(el)
	outer.AddChild(inner)
	doc.Root.AddChild(outer)

	// A stacked element elsewhere at document level.
	portal := doc.CreateElement("div")
	portal.SetAttribute("style", "position: absolute; z-index: 2500")
	doc.Root.AddChild(portal)

	got := ComputeStackIndex(StackQueryFor(el))
	if got != 2501 {
		t.Errorf("expected 2501 (document-level 2500 + 1), got %d", got)
	}
}

func TestStackQueryFor_ExcludesElementItself(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := doc.CreateElement("div")
	el.SetAttribute("style", "position: absolute; z-index: 5000")
	doc.Root.AddChild(el)

	first := ComputeStackIndex(StackQueryFor(el))
	second := ComputeStackIndex(StackQueryFor(el))
	if first != 1000 || second != 1000 {
		t.Errorf("the element must not out-rank itself: %d, %d", first, second)
	}
}

func TestStackQueryFor_NilElement(t *testing.T) {
	if StackQueryFor(nil) != nil {
		t.Error("nil element must yield a nil query")
	}
}
