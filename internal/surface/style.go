package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

const (
	DefaultWidth = 3.0
	MinWidth     = 1.0
	MaxWidth     = 10.0
)

var ErrInvalidColor = errors.New("invalid color")

// ClampWidth guards the width control: non-finite input falls back to the
// default, anything else is clamped to [MinWidth, MaxWidth].
func ClampWidth(w float64) float64 {
	switch {
	case math.IsNaN(w), math.IsInf(w, 0):
		return DefaultWidth
	case w < MinWidth:
		return MinWidth
	case w > MaxWidth:
		return MaxWidth
	}
	return w
}

// ParseColor accepts the hex forms a color input produces: #rgb, #rrggbb and
// #rrggbbaa. The leading '#' is optional.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex).Color(), nil
}

// FormatColor renders c as #rrggbb, dropping alpha.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
