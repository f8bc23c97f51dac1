package surface

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const dataURLPrefix = "data:image/png;base64,"

var ErrNotDataURL = errors.New("snapshot: not a PNG data URL")

// Snapshot encodes the whole buffer as a base64 PNG data URL.
func (s *Surface) Snapshot() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("snapshot: encode png: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeSnapshot turns a value produced by Snapshot back into an image.
func DecodeSnapshot(value string) (image.Image, error) {
	if !strings.HasPrefix(value, dataURLPrefix) {
		return nil, ErrNotDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, dataURLPrefix))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode png: %w", err)
	}
	return img, nil
}
