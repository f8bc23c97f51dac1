package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PaintPlus/internal/state"
	"PaintPlus/internal/surface"
)

// BoardWidget shows the drawing surface and feeds it pointer events through a
// stroke controller. It is also the canvas the controller and the persister
// paint on, so the on-screen image follows every change.
type BoardWidget struct {
	widget.BaseWidget
	surface    *surface.Surface
	controller *state.Controller
	image      *canvas.Image
	border     *canvas.Rectangle
	statusBar  *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ state.Canvas = (*BoardWidget)(nil)

func NewBoardWidget(s *surface.Surface) *BoardWidget {
	b := &BoardWidget{
		surface:   s,
		statusBar: widget.NewLabel("Ready"),
	}
	b.controller = state.NewController(b, nil)

	b.image = canvas.NewImageFromImage(s.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels

	b.border = canvas.NewRectangle(color.Transparent)
	b.border.StrokeColor = color.Black
	b.border.StrokeWidth = 1

	b.ExtendBaseWidget(b)
	return b
}

// SetSaver installs what runs at the end of every stroke. Call before the
// window is shown.
func (b *BoardWidget) SetSaver(saver state.Saver) {
	b.controller.SetSaver(saver)
}

func (b *BoardWidget) Controller() *state.Controller { return b.controller }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) SetStrokeColor(c color.Color) {
	b.surface.SetStrokeColor(c)
	log.Printf("[UI] stroke color %s", surface.FormatColor(c))
}

// SetStrokeWidth clamps w to the control range before it reaches the surface.
func (b *BoardWidget) SetStrokeWidth(w float64) {
	w = surface.ClampWidth(w)
	b.surface.SetStrokeWidth(w)
	log.Printf("[UI] stroke width %v", w)
}

func (b *BoardWidget) StrokeColor() color.Color { return b.surface.StrokeColor() }

func (b *BoardWidget) StrokeWidth() float64 { return b.surface.StrokeWidth() }

// Image returns a copy of what is currently drawn.
func (b *BoardWidget) Image() image.Image { return b.surface.Image() }

func (b *BoardWidget) BeginStroke(x, y float64) {
	b.surface.BeginStroke(x, y)
}

func (b *BoardWidget) ExtendStroke(toX, toY, fromX, fromY float64) error {
	err := b.surface.ExtendStroke(toX, toY, fromX, fromY)
	b.repaint()
	return err
}

func (b *BoardWidget) Snapshot() (string, error) {
	return b.surface.Snapshot()
}

func (b *BoardWidget) Restore(img image.Image) {
	b.surface.Restore(img)
	b.repaint()
}

func (b *BoardWidget) repaint() {
	b.image.Image = b.surface.Image()
	b.image.Refresh()
}

// toSurface maps a widget-local position to surface pixels. The image is
// stretched over the widget, so scale by the ratio of the two sizes.
func (b *BoardWidget) toSurface(pos fyne.Position) state.Point {
	w, h := b.surface.Size()
	size := b.Size()
	p := state.Point{X: float64(pos.X), Y: float64(pos.Y)}
	if size.Width > 0 {
		p.X = p.X * float64(w) / float64(size.Width)
	}
	if size.Height > 0 {
		p.Y = p.Y * float64(h) / float64(size.Height)
	}
	return p
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.controller.PointerDown(b.toSurface(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.controller.PointerUp(b.toSurface(e.Position))
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.controller.PointerMove(b.toSurface(e.Position))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

// MouseOut closes a stroke whose button is released off the surface; the up
// event would never reach us.
func (b *BoardWidget) MouseOut() {
	b.controller.PointerLeave()
}

func (b *BoardWidget) MinSize() fyne.Size {
	w, h := b.surface.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.image, b.border))
}
