package surface

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func newTestSurface(t *testing.T) *Surface {
	t.Helper()
	s, err := New(100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func rgba8(img image.Image, x, y int) (r, g, b, a uint8) {
	c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	return c.R, c.G, c.B, c.A
}

func TestNew_InvalidSize(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := New(tc.w, tc.h); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	s := newTestSurface(t)

	w, h := s.Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = %dx%d, want 100x100", w, h)
	}
	if got := s.StrokeWidth(); got != DefaultWidth {
		t.Errorf("StrokeWidth() = %v, want %v", got, DefaultWidth)
	}
	if got := FormatColor(s.StrokeColor()); got != "#000000" {
		t.Errorf("StrokeColor() = %s, want #000000", got)
	}
	if _, _, _, a := rgba8(s.Image(), 50, 50); a != 0 {
		t.Errorf("fresh surface alpha = %d, want 0", a)
	}
}

func TestSurface_BeginStrokeDoesNotPaint(t *testing.T) {
	s := newTestSurface(t)
	s.BeginStroke(20, 20)

	if _, _, _, a := rgba8(s.Image(), 20, 20); a != 0 {
		t.Errorf("alpha after BeginStroke = %d, want 0", a)
	}
}

func TestSurface_ExtendStrokePaintsSegment(t *testing.T) {
	s := newTestSurface(t)
	s.SetStrokeColor(red)
	s.SetStrokeWidth(5)

	s.BeginStroke(10, 10)
	if err := s.ExtendStroke(50, 50, 10, 10); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}

	img := s.Image()
	r, g, _, a := rgba8(img, 30, 30)
	if r < 200 || g > 50 || a < 200 {
		t.Errorf("pixel on segment = (%d,%d,_,%d), want opaque red", r, g, a)
	}
	if _, _, _, a := rgba8(img, 80, 20); a != 0 {
		t.Errorf("pixel off segment alpha = %d, want 0", a)
	}
}

func TestSurface_StyleChangesAreForwardOnly(t *testing.T) {
	s := newTestSurface(t)
	s.SetStrokeColor(red)
	s.SetStrokeWidth(5)
	s.BeginStroke(10, 10)
	if err := s.ExtendStroke(50, 50, 10, 10); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}

	s.SetStrokeColor(blue)
	s.SetStrokeWidth(2)

	img := s.Image()
	if r, _, b, _ := rgba8(img, 30, 30); r < 200 || b > 50 {
		t.Errorf("old segment changed after style change: r=%d b=%d", r, b)
	}

	s.BeginStroke(10, 80)
	if err := s.ExtendStroke(60, 80, 10, 80); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}
	img = s.Image()
	if r, _, b, a := rgba8(img, 35, 80); b < 150 || r > 50 || a < 150 {
		t.Errorf("new segment = (r=%d,b=%d,a=%d), want blue", r, b, a)
	}
	if r, _, _, _ := rgba8(img, 30, 30); r < 200 {
		t.Errorf("old red segment lost: r=%d", r)
	}
}

func TestSurface_SetStrokeColorIgnoresNil(t *testing.T) {
	s := newTestSurface(t)
	s.SetStrokeColor(red)
	s.SetStrokeColor(nil)
	if got := FormatColor(s.StrokeColor()); got != "#ff0000" {
		t.Errorf("StrokeColor() = %s, want #ff0000", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := newTestSurface(t)
	s.SetStrokeColor(red)
	s.SetStrokeWidth(5)
	s.BeginStroke(10, 10)
	if err := s.ExtendStroke(50, 50, 10, 10); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}
	s.SetStrokeColor(blue)
	if err := s.ExtendStroke(90, 20, 50, 50); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !strings.HasPrefix(snap, "data:image/png;base64,") {
		t.Fatalf("Snapshot() prefix = %q", snap[:min(len(snap), 30)])
	}

	img, err := DecodeSnapshot(snap)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	restored := newTestSurface(t)
	restored.Restore(img)

	want, got := s.Image(), restored.Image()
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			wr, wg, wb, wa := rgba8(want, x, y)
			if wa != 0 && wa != 255 {
				// anti-aliased edge pixels lose precision through PNG's straight alpha
				continue
			}
			gr, gg, gb, ga := rgba8(got, x, y)
			if diff(wr, gr) > 2 || diff(wg, gg) > 2 || diff(wb, gb) > 2 || diff(wa, ga) > 2 {
				t.Fatalf("pixel (%d,%d) = %v, want %v",
					x, y, [4]uint8{gr, gg, gb, ga}, [4]uint8{wr, wg, wb, wa})
			}
		}
	}
}

func TestSurface_RestoreThenDrawOnTop(t *testing.T) {
	prior := newTestSurface(t)
	prior.SetStrokeColor(red)
	prior.SetStrokeWidth(5)
	prior.BeginStroke(10, 10)
	if err := prior.ExtendStroke(50, 50, 10, 10); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}

	s := newTestSurface(t)
	s.Restore(prior.Image())
	s.SetStrokeColor(blue)
	s.BeginStroke(10, 80)
	if err := s.ExtendStroke(60, 80, 10, 80); err != nil {
		t.Fatalf("ExtendStroke: %v", err)
	}

	img := s.Image()
	if r, _, _, _ := rgba8(img, 30, 30); r < 200 {
		t.Errorf("restored red segment missing: r=%d", r)
	}
	if _, _, b, _ := rgba8(img, 35, 80); b < 150 {
		t.Errorf("new blue segment missing: b=%d", b)
	}
}

func TestSurface_RestoreNilIsNoop(t *testing.T) {
	s := newTestSurface(t)
	s.Restore(nil)
	if _, _, _, a := rgba8(s.Image(), 0, 0); a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"wrong prefix", "data:image/jpeg;base64,AAAA"},
		{"bad base64", "data:image/png;base64,!!!"},
		{"not png", "data:image/png;base64,aGVsbG8="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(tt.value); err == nil {
				t.Error("DecodeSnapshot() error = nil, want error")
			}
		})
	}
	if _, err := DecodeSnapshot("garbage"); !errors.Is(err, ErrNotDataURL) {
		t.Errorf("error = %v, want ErrNotDataURL", err)
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{3, 3},
		{1, 1},
		{10, 10},
		{0, MinWidth},
		{-4, MinWidth},
		{42, MaxWidth},
		{math.NaN(), DefaultWidth},
		{math.Inf(1), DefaultWidth},
		{math.Inf(-1), DefaultWidth},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ff0000", "#ff0000", false},
		{"0000ff", "#0000ff", false},
		{"#fff", "#ffffff", false},
		{"#00ff00ff", "#00ff00", false},
		{"", "", true},
		{"#12", "", true},
		{"#gg0000", "", true},
		{"red", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := FormatColor(c); got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
