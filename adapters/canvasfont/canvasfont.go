// Package canvasfont implements pageflow's FontMetrics port on top of
// github.com/tdewolff/canvas font faces. Callers register one font family
// per face id (the same face id strings used in a pageflow.FontConfig) and
// the Metrics value answers WidthOfString/LineHeight purely from the
// registered font's outlines, never touching a rasterizer or PDF writer.
package canvasfont

import (
	"fmt"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
)

// Metrics is a pageflow.FontMetrics backed by loaded canvas font families.
// The zero value is not usable; construct with New.
type Metrics struct {
	mu       sync.Mutex
	families map[string]*canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace
}

type faceKey struct {
	id   string
	size float64
}

// New returns an empty Metrics with no registered faces.
func New() *Metrics {
	return &Metrics{
		families: make(map[string]*canvas.FontFamily),
		faces:    make(map[faceKey]*canvas.FontFace),
	}
}

// RegisterFont loads font data (TTF/OTF bytes) under faceID. A face id
// registered twice is overwritten by the later call.
func (m *Metrics) RegisterFont(faceID string, data []byte) error {
	family := canvas.NewFontFamily(faceID)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("canvasfont: load font %q: %w", faceID, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.families[faceID] = family
	for k := range m.faces {
		if k.id == faceID {
			delete(m.faces, k)
		}
	}
	return nil
}

// RegisterFontFile reads path from disk and registers it under faceID.
func (m *Metrics) RegisterFontFile(faceID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("canvasfont: read %q: %w", path, err)
	}
	return m.RegisterFont(faceID, data)
}

func (m *Metrics) face(faceID string, sizePt float64) (*canvas.FontFace, error) {
	key := faceKey{id: faceID, size: sizePt}

	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	family, ok := m.families[faceID]
	if !ok {
		return nil, fmt.Errorf("canvasfont: face %q is not registered", faceID)
	}
	f := family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	m.faces[key] = f
	return f, nil
}

// WidthOfString implements pageflow's FontMetrics port.
func (m *Metrics) WidthOfString(faceID string, sizePt float64, text string) (float64, error) {
	f, err := m.face(faceID, sizePt)
	if err != nil {
		return 0, err
	}
	return f.TextWidth(text), nil
}

// LineHeight implements pageflow's FontMetrics port.
func (m *Metrics) LineHeight(faceID string, sizePt float64) (float64, error) {
	f, err := m.face(faceID, sizePt)
	if err != nil {
		return 0, err
	}
	return f.Metrics().LineHeight, nil
}

// Face returns a colored, drawable face for faceID at sizePt, for callers
// that need to paint glyphs rather than just measure them.
func (m *Metrics) Face(faceID string, sizePt float64, col canvas.Color) (*canvas.FontFace, error) {
	m.mu.Lock()
	family, ok := m.families[faceID]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("canvasfont: face %q is not registered", faceID)
	}
	return family.Face(sizePt, col, canvas.FontRegular, canvas.FontNormal), nil
}
