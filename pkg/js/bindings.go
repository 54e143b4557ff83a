package js

import (
	"github.com/dop251/goja"

	"popmount/pkg/collision"
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/popup"
	"popmount/pkg/position"
)

// registerDocument sets up a minimal `document` global: element lookup,
// scroll control, and viewport queries. Scripts address elements by id.
func registerDocument(vm *goja.Runtime, doc *dom.Document) {
	docObj := vm.NewObject()

	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		el := doc.GetElementByID(call.Argument(0).String())
		if el == nil {
			return goja.Null()
		}
		return elementProxy(vm, el)
	})
	docObj.Set("setScroll", func(call goja.FunctionCall) goja.Value {
		doc.SetScroll(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
		return goja.Undefined()
	})
	docObj.Set("viewportWidth", func(call goja.FunctionCall) goja.Value {
		w, _ := doc.ViewportSize()
		return vm.ToValue(w)
	})
	docObj.Set("viewportHeight", func(call goja.FunctionCall) goja.Value {
		_, h := doc.ViewportSize()
		return vm.ToValue(h)
	})

	vm.Set("document", docObj)
}

// elementProxy exposes the geometry surface of one element.
func elementProxy(vm *goja.Runtime, el *dom.Element) goja.Value {
	obj := vm.NewObject()
	obj.Set("tagName", el.TagName)
	obj.Set("getBoundingClientRect", func(call goja.FunctionCall) goja.Value {
		return rectValue(vm, el.BoundingClientRect())
	})
	obj.Set("setScroll", func(call goja.FunctionCall) goja.Value {
		el.SetScroll(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
		return goja.Undefined()
	})
	return obj
}

// registerPositioning installs the `popmount` global mirroring the Go
// API: calculatePosition, relativePosition, isCollide, flip, fit, and
// zIndex, all addressed by element id so fixtures stay declarative.
func registerPositioning(vm *goja.Runtime, doc *dom.Document) {
	byID := func(v goja.Value) *dom.Element {
		if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
			return nil
		}
		return doc.GetElementByID(v.String())
	}

	api := vm.NewObject()

	api.Set("calculatePosition", func(call goja.FunctionCall) goja.Value {
		off := position.CalculatePosition(
			byID(call.Argument(0)),
			position.HorizAnchor(call.Argument(1).String()),
			position.VertAnchor(call.Argument(2).String()),
		)
		return offsetValue(vm, off)
	})

	api.Set("relativePosition", func(call goja.FunctionCall) goja.Value {
		off := position.CalculateRelativePosition(byID(call.Argument(0)), byID(call.Argument(1)))
		return offsetValue(vm, off)
	})

	api.Set("isCollide", func(call goja.FunctionCall) goja.Value {
		report := collision.IsCollide(byID(call.Argument(0)), byID(call.Argument(1)), nil)
		sides := make([]interface{}, len(report))
		for i, side := range report {
			sides[i] = string(side)
		}
		return vm.ToValue(sides)
	})

	api.Set("flip", func(call goja.FunctionCall) goja.Value {
		spec := position.AnchorSpec{
			X: position.HorizAnchor(call.Argument(4).String()),
			Y: position.VertAnchor(call.Argument(5).String()),
		}
		res := collision.Flip(
			byID(call.Argument(0)),
			byID(call.Argument(1)),
			call.Argument(2).ToFloat(),
			call.Argument(3).ToFloat(),
			spec,
			byID(call.Argument(6)),
			axesArg(call.Argument(7)),
		)
		if res == nil {
			return goja.Null()
		}
		obj := vm.NewObject()
		obj.Set("left", res.Position.Left)
		obj.Set("top", res.Position.Top)
		obj.Set("x", string(res.Spec.X))
		obj.Set("y", string(res.Spec.Y))
		obj.Set("flippedX", res.FlippedX)
		obj.Set("flippedY", res.FlippedY)
		return obj
	})

	api.Set("fit", func(call goja.FunctionCall) goja.Value {
		at := geom.Offset{
			Left: call.Argument(3).ToFloat(),
			Top:  call.Argument(4).ToFloat(),
		}
		off := collision.Fit(byID(call.Argument(0)), byID(call.Argument(1)), axesArg(call.Argument(2)), at)
		return offsetValue(vm, off)
	})

	api.Set("zIndex", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(popup.ComputeStackIndex(popup.StackQueryFor(byID(call.Argument(0)))))
	})

	vm.Set("popmount", api)
}

// axesArg reads an {x, y} object into collision axes; anything else
// enables both.
func axesArg(v goja.Value) collision.Axes {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return collision.Axes{X: true, Y: true}
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return collision.Axes{X: true, Y: true}
	}
	return collision.Axes{
		X: obj.Get("x") != nil && obj.Get("x").ToBoolean(),
		Y: obj.Get("y") != nil && obj.Get("y").ToBoolean(),
	}
}

func offsetValue(vm *goja.Runtime, off geom.Offset) goja.Value {
	obj := vm.NewObject()
	obj.Set("left", off.Left)
	obj.Set("top", off.Top)
	return obj
}

func rectValue(vm *goja.Runtime, r geom.Rect) goja.Value {
	obj := vm.NewObject()
	obj.Set("left", r.Left)
	obj.Set("top", r.Top)
	obj.Set("width", r.Width)
	obj.Set("height", r.Height)
	obj.Set("right", r.Right())
	obj.Set("bottom", r.Bottom())
	return obj
}
