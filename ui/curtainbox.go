// Package ui is a Fyne demo for the curtain behavior: widgets that host a
// DOM element with the behavior attached, translating real desktop hover
// events into pointer events and rendering the overlay's tweened offset.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/curtain/curtain"
	"github.com/chrisuehlinger/curtain/dom"
)

// CurtainBox is a hoverable widget backed by a DOM host element with the
// curtain behavior attached. MouseIn/MouseOut feed pointerenter/pointerleave
// into the DOM; the renderer draws the overlay at its current tween offset.
type CurtainBox struct {
	widget.BaseWidget

	host    *dom.Element
	overlay *dom.Element
	detach  func()

	label        string
	baseColor    color.Color
	overlayColor color.Color

	// Fyne's MouseOut carries no position, so the exit edge is detected
	// from the last moved position.
	lastPos fyne.Position
}

// NewCurtainBox creates a widget whose host element lives under doc's body
// and is attached through controller.
func NewCurtainBox(doc *dom.Document, controller *curtain.Controller, label string, opts *curtain.Options) *CurtainBox {
	host := doc.CreateElement("div")
	host.SetTextContent(label)
	doc.Body().AsNode().AppendChild(host.AsNode())

	b := &CurtainBox{
		host:         host,
		label:        label,
		baseColor:    color.NRGBA{R: 0x2d, G: 0x2d, B: 0x3a, A: 0xff},
		overlayColor: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x59},
	}
	b.detach = controller.Attach(host, opts)
	if first := host.AsNode().FirstChild(); first != nil {
		b.overlay = first.AsElement()
	}
	b.ExtendBaseWidget(b)
	return b
}

// Detach tears the behavior down and restores the host element.
func (b *CurtainBox) Detach() {
	if b.detach != nil {
		b.detach()
	}
}

// MouseIn implements desktop.Hoverable.
func (b *CurtainBox) MouseIn(ev *desktop.MouseEvent) {
	b.lastPos = ev.Position
	b.dispatch("pointerenter", ev.Position)
}

// MouseMoved implements desktop.Hoverable.
func (b *CurtainBox) MouseMoved(ev *desktop.MouseEvent) {
	b.lastPos = ev.Position
}

// MouseOut implements desktop.Hoverable.
func (b *CurtainBox) MouseOut() {
	b.dispatch("pointerleave", b.lastPos)
}

func (b *CurtainBox) dispatch(eventType string, pos fyne.Position) {
	size := b.Size()
	b.host.SetGeometry(0, 0, float64(size.Width), float64(size.Height))
	b.host.DispatchEvent(&dom.Event{
		Type:    eventType,
		ClientX: float64(pos.X),
		ClientY: float64(pos.Y),
	})
}

// CreateRenderer implements fyne.Widget.
func (b *CurtainBox) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(b.baseColor)
	overlay := canvas.NewRectangle(b.overlayColor)
	text := canvas.NewText(b.label, color.White)
	text.Alignment = fyne.TextAlignCenter
	return &curtainBoxRenderer{
		box:        b,
		background: background,
		overlay:    overlay,
		text:       text,
	}
}

type curtainBoxRenderer struct {
	box        *CurtainBox
	background *canvas.Rectangle
	overlay    *canvas.Rectangle
	text       *canvas.Text
}

func (r *curtainBoxRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 160)
}

func (r *curtainBoxRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.overlay.Resize(size)
	r.text.Resize(fyne.NewSize(size.Width, r.text.MinSize().Height))
	r.text.Move(fyne.NewPos(0, (size.Height-r.text.MinSize().Height)/2))
	r.positionOverlay(size)
}

func (r *curtainBoxRenderer) Refresh() {
	r.positionOverlay(r.box.Size())
	canvas.Refresh(r.box)
}

// positionOverlay converts the overlay's translate percentages into an
// absolute offset within the widget.
func (r *curtainBoxRenderer) positionOverlay(size fyne.Size) {
	if r.box.overlay == nil {
		r.overlay.Move(fyne.NewPos(0, size.Height))
		return
	}
	x, y, ok := ParseTranslate(r.box.overlay.Style().GetPropertyValue("transform"))
	if !ok {
		x, y = 0, 0
	}
	r.overlay.Move(fyne.NewPos(
		float32(x)/100*size.Width,
		float32(y)/100*size.Height,
	))
}

func (r *curtainBoxRenderer) Objects() []fyne.CanvasObject {
	// Overlay before text: the original content stacks above the curtain.
	return []fyne.CanvasObject{r.background, r.overlay, r.text}
}

func (r *curtainBoxRenderer) Destroy() {}
