package render

import (
	"image/color"
	"testing"

	"popmount/pkg/dom"
	"popmount/pkg/geom"
)

func TestSceneFor(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	anchor := doc.CreateElement("button")
	doc.Root.AddChild(anchor)
	anchor.SetLayoutRect(geom.NewRect(100, 50, 200, 100))

	el := doc.CreateElement("div")
	doc.Root.AddChild(el)
	el.SetLayoutRect(geom.NewRect(750, 10, 100, 50))

	scene := SceneFor(anchor, el, nil)
	if scene.Anchor.Left != 100 || scene.Popup.Left != 750 {
		t.Errorf("unexpected scene geometry: anchor %+v, popup %+v", scene.Anchor, scene.Popup)
	}
	if scene.Region.Right != 800 || scene.Region.Bottom != 600 {
		t.Errorf("expected viewport region, got %+v", scene.Region)
	}
	if !scene.Report.Has("right") {
		t.Errorf("expected right collision in scene, got %v", scene.Report)
	}
}

func TestDrawPaintsBoxes(t *testing.T) {
	r := NewRenderer(800, 600)
	r.Draw(Scene{
		Region: geom.NewRect(0, 0, 800, 600).Edges(),
		Anchor: geom.NewRect(100, 50, 200, 100),
		Popup:  geom.NewRect(100, 150, 150, 80),
	})

	img := r.Image()
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}

	// The anchor's center must not be background white.
	c := color.NRGBAModel.Convert(img.At(200, 100)).(color.NRGBA)
	if c.R == 255 && c.G == 255 && c.B == 255 {
		t.Error("anchor box was not painted")
	}
	// A point outside every box stays white.
	c = color.NRGBAModel.Convert(img.At(700, 500)).(color.NRGBA)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Error("background must stay white")
	}
}
