// Package rasterimage implements pageflow's ImageMetrics port using the
// standard image package's format-sniffing decoder, resolving sources to
// files under a base directory the same way the teacher's canvas renderer
// resolves path-based image resources.
package rasterimage

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
)

// pointsPerPixel assumes a 96 DPI source raster, matching the common web/
// design-tool default; 72/96 converts pixels to PDF points.
const pointsPerPixel = 72.0 / 96.0

// Metrics is a pageflow.ImageMetrics backed by decoding image files from
// disk. Results are cached per source string since Describe is called once
// per FIT-sized image per solve pass but the same source may recur.
type Metrics struct {
	baseDir string

	mu    sync.Mutex
	cache map[string][2]float64
}

// New returns a Metrics that resolves relative sources against baseDir. An
// empty baseDir requires all sources to be absolute paths.
func New(baseDir string) *Metrics {
	return &Metrics{baseDir: baseDir, cache: make(map[string][2]float64)}
}

// Describe implements pageflow's ImageMetrics port.
func (m *Metrics) Describe(source string) (width, height float64, err error) {
	m.mu.Lock()
	if wh, ok := m.cache[source]; ok {
		m.mu.Unlock()
		return wh[0], wh[1], nil
	}
	m.mu.Unlock()

	path := source
	if !filepath.IsAbs(path) {
		if m.baseDir == "" {
			return 0, 0, fmt.Errorf("rasterimage: relative source %q with no base directory configured", source)
		}
		path = filepath.Join(m.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("rasterimage: open %q: %w", source, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("rasterimage: decode %q: %w", source, err)
	}

	width = float64(cfg.Width) * pointsPerPixel
	height = float64(cfg.Height) * pointsPerPixel

	m.mu.Lock()
	m.cache[source] = [2]float64{width, height}
	m.mu.Unlock()
	return width, height, nil
}
