package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

var ErrInvalidSize = errors.New("surface: width and height must be positive")

// Surface is a fixed-size raster canvas with the paint attributes used for strokes.
// The current color and width ARE the style state; they are read every time a
// segment is painted.
type Surface struct {
	mu     sync.RWMutex
	dc     *gg.Context
	width  int
	height int
	color  color.Color
	stroke float64
}

// New allocates the pixel buffer. There is no resize.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	return &Surface{
		dc:     dc,
		width:  width,
		height: height,
		color:  color.Black,
		stroke: DefaultWidth,
	}, nil
}

func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// SetStrokeColor sets the color for every segment painted after the call.
func (s *Surface) SetStrokeColor(c color.Color) {
	if c == nil {
		return
	}
	s.mu.Lock()
	s.color = c
	s.mu.Unlock()
}

func (s *Surface) StrokeColor() color.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

// SetStrokeWidth sets the line thickness for subsequent segments. No bound is
// applied here; see ClampWidth.
func (s *Surface) SetStrokeWidth(w float64) {
	s.mu.Lock()
	s.stroke = w
	s.mu.Unlock()
}

func (s *Surface) StrokeWidth() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stroke
}

// BeginStroke drops any unstroked path and moves the cursor to (x, y).
func (s *Surface) BeginStroke(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc.ClearPath()
	s.dc.MoveTo(x, y)
}

// ExtendStroke paints one segment from (fromX, fromY) to (toX, toY) and starts a
// fresh path at the end point, so every call commits an independent segment.
func (s *Surface) ExtendStroke(toX, toY, fromX, fromY float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dc.SetColor(s.color)
	s.dc.SetLineWidth(s.stroke)

	s.dc.ClearPath()
	s.dc.MoveTo(fromX, fromY)
	s.dc.LineTo(toX, toY)
	err := s.dc.Stroke()
	s.dc.MoveTo(toX, toY)
	if err != nil {
		return fmt.Errorf("stroke segment (%.1f,%.1f)->(%.1f,%.1f): %w", fromX, fromY, toX, toY, err)
	}
	return nil
}

// Image returns a copy of the pixel buffer.
func (s *Surface) Image() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dc.Image()
}

// Restore paints img over the buffer at (0,0). Anything outside the surface is
// dropped.
func (s *Surface) Restore(img image.Image) {
	if img == nil {
		return
	}
	rgba := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	b := img.Bounds()
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc.DrawImage(gg.ImageBufFromImage(rgba), 0, 0)
}
