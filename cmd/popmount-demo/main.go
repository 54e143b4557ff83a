package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"popmount/pkg/collision"
	"popmount/pkg/dom"
	"popmount/pkg/geom"
	"popmount/pkg/popup"
	"popmount/pkg/position"
	"popmount/pkg/render"
)

const (
	viewWidth  = 800
	viewHeight = 600
)

// demoTree builds the document the window visualizes: a scrollable pane
// holding an anchor, and a popup element positioned against it.
func demoTree() (*dom.Document, *dom.Element, *dom.Element, *dom.Element) {
	doc := dom.NewDocument(viewWidth, viewHeight)

	pane := doc.CreateElement("div")
	pane.SetAttribute("id", "pane")
	pane.SetAttribute("style", "overflow: auto")
	pane.SetLayoutRect(geom.NewRect(40, 40, 720, 520))
	doc.Root.AddChild(pane)

	anchor := doc.CreateElement("button")
	anchor.SetAttribute("id", "anchor")
	anchor.SetLayoutRect(geom.NewRect(560, 200, 160, 48))
	pane.AddChild(anchor)

	pop := doc.CreateElement("div")
	pop.SetAttribute("id", "popup")
	pop.SetAttribute("style", "position: absolute")
	pop.SetLayoutRect(geom.NewRect(0, 0, 260, 140))
	doc.Root.AddChild(pop)

	return doc, pane, anchor, pop
}

func main() {
	a := app.New()
	w := a.NewWindow("popmount demo")
	w.Resize(fyne.NewSize(viewWidth, viewHeight+120))

	doc, pane, anchor, popEl := demoTree()

	pop := popup.New(popEl, anchor,
		popup.WithAnchorSpec(position.HorizLeft, position.VertBottom),
		popup.WithOffsets(8, 4),
		popup.WithCollisionHandling(collision.Axes{X: true, Y: true}),
		popup.WithScrollPolicy(popup.Reposition),
	)

	renderer := render.NewRenderer(viewWidth, viewHeight)
	view := canvas.NewImageFromImage(renderer.Image())
	view.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("closed")

	redraw := func() {
		renderer.Draw(render.SceneFor(anchor, popEl, nil))
		view.Image = renderer.Image()
		view.Refresh()
		at := pop.Position()
		status.SetText(fmt.Sprintf("%s  pos=(%.0f, %.0f)  z=%d  spec=%s/%s",
			pop.State(), at.Left, at.Top, pop.ZIndex(),
			pop.ResolvedSpec().X, pop.ResolvedSpec().Y))
	}

	toggle := widget.NewButton("Toggle popup", func() {
		if pop.State() == popup.StateOpen {
			pop.Hide()
		} else {
			pop.Show()
		}
		redraw()
	})

	// Scrolling the pane drives the popup's scroll listeners, which
	// reposition the element; the slider stands in for a wheel.
	scroll := widget.NewSlider(0, 200)
	scroll.OnChanged = func(v float64) {
		pane.SetScroll(0, v)
		redraw()
	}

	controls := container.NewVBox(toggle, scroll, status)
	w.SetContent(container.NewBorder(nil, controls, nil, nil, view))

	pop.Show()
	redraw()

	w.ShowAndRun()
}
