package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PaintPlus/internal/surface"
)

// colorSwatch shows the current stroke color and opens the picker when tapped.
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c), OnTapped: tapped}
	s.rect.SetMinSize(fyne.NewSize(32, 32))
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Controls holds the inputs bound to a board.
type Controls struct {
	board  *BoardWidget
	swatch *colorSwatch
	width  *widget.Slider
}

func newControls(board *BoardWidget) *Controls {
	c := &Controls{board: board}

	c.width = widget.NewSlider(surface.MinWidth, surface.MaxWidth)
	c.width.Step = 1
	c.width.SetValue(board.StrokeWidth())
	c.width.OnChangeEnded = c.widthChanged

	return c
}

// colorChanged pushes a picked color straight into the surface.
func (c *Controls) colorChanged(col color.Color) {
	if col == nil {
		return
	}
	c.board.SetStrokeColor(col)
	if c.swatch != nil {
		c.swatch.SetColor(col)
	}
}

func (c *Controls) widthChanged(v float64) {
	c.board.SetStrokeWidth(v)
}

// NewToolbar lays out the color picker, the width slider, the export buttons
// and their labels.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	c := newControls(board)

	pick := func() {
		d := dialog.NewColorPicker("Stroke color", "Pick a color", c.colorChanged, win)
		d.Advanced = true
		d.SetColor(board.StrokeColor())
		d.Show()
	}
	c.swatch = newColorSwatch(board.StrokeColor(), pick)

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), c.width)

	return container.NewHBox(
		c.swatch,
		widget.NewLabel("Pick a color"),
		widget.NewSeparator(),
		sliderContainer,
		widget.NewLabel("Select stroke width"),
		layout.NewSpacer(),
		widget.NewButton("Export PDF", func() { showExportDialog(board, win, "paint-plus.pdf") }),
		widget.NewButton("Export PNG", func() { showExportDialog(board, win, "paint-plus.png") }),
	)
}
