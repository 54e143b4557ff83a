package popup

import (
	"math"

	"popmount/pkg/dom"
)

// StackQuery supplies the z-index collections a stacking decision is
// computed from. It exists as an interface so tests can feed synthetic
// ancestor/sibling stacks without building a document tree.
type StackQuery interface {
	// AncestorIndices returns the z-indices of ancestors (document root
	// excluded) that have both a non-auto z-index and a non-static
	// position.
	AncestorIndices() []int
	// RootChildIndices returns the qualifying z-indices of the document
	// root's direct children, the floating element itself excluded.
	RootChildIndices() []int
	// ParentSiblingIndices returns the qualifying z-indices of the
	// element's parent's other children.
	ParentSiblingIndices() []int
}

// stackFloor guarantees a floating element out-ranks common page chrome
// even in documents with no explicit stacking at all.
const stackFloor = 999

// ComputeStackIndex returns a z-index above every collected stack level:
// the maximum of all three collections and the floor, plus one, saturated
// at the 32-bit signed maximum. Floating elements are typically
// portal-rendered outside their logical parent, so they must out-rank the
// whole document, not just their own ancestor chain. A nil query yields
// the degraded floor of 1.
func ComputeStackIndex(q StackQuery) int {
	if q == nil {
		return 1
	}
	highest := stackFloor
	for _, indices := range [][]int{q.AncestorIndices(), q.RootChildIndices(), q.ParentSiblingIndices()} {
		for _, z := range indices {
			if z > highest {
				highest = z
			}
		}
	}
	if highest >= math.MaxInt32 {
		return math.MaxInt32
	}
	return highest + 1
}

// StackQueryFor adapts a live element to the StackQuery capability.
// Returns nil for a nil element.
func StackQueryFor(el *dom.Element) StackQuery {
	if el == nil {
		return nil
	}
	return &elementStack{el: el}
}

type elementStack struct {
	el *dom.Element
}

func (s *elementStack) AncestorIndices() []int {
	root := s.el.Root()
	var indices []int
	for cur := s.el.Parent; cur != nil && cur != root; cur = cur.Parent {
		if z, ok := stackLevel(cur); ok {
			indices = append(indices, z)
		}
	}
	return indices
}

func (s *elementStack) RootChildIndices() []int {
	var indices []int
	for _, child := range s.el.Root().Children {
		if child == s.el {
			continue
		}
		if z, ok := stackLevel(child); ok {
			indices = append(indices, z)
		}
	}
	return indices
}

func (s *elementStack) ParentSiblingIndices() []int {
	var indices []int
	for _, sibling := range s.el.Siblings() {
		if z, ok := stackLevel(sibling); ok {
			indices = append(indices, z)
		}
	}
	return indices
}

// stackLevel returns the element's z-index when it participates in
// stacking: a non-auto z-index on a non-static position.
func stackLevel(el *dom.Element) (int, bool) {
	z, ok := el.Style.GetZIndex()
	if !ok || !el.Style.IsPositioned() {
		return 0, false
	}
	return z, true
}
