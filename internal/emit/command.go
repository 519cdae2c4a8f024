// Package emit walks a solved element tree and produces a flat, z-ordered
// vector of render commands, clipping any overconstrained child to its
// parent's content box along the way.
package emit

import (
	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

// Payload is the tagged union of what a RenderCommand draws.
type Payload interface{ payload() }

// RectanglePayload draws a filled, optionally rounded rectangle.
type RectanglePayload struct {
	Color        geom.Color
	CornerRadius *geom.CornerRadius
}

func (RectanglePayload) payload() {}

// CirclePayload draws a filled circle inscribed in the command's bounding box.
type CirclePayload struct {
	Color geom.Color
}

func (CirclePayload) payload() {}

// TextPayload draws one wrapped line as a sequence of same-face runs.
type TextPayload struct {
	Runs       []Run
	Color      geom.Color
	FontSize   float64
	LineHeight float64
}

func (TextPayload) payload() {}

// ImagePayload references an opaque, unresolved image source; the engine
// never decodes bytes.
type ImagePayload struct {
	Source       string
	Fit          tree.FitMode
	Opacity      float64
	CornerRadius *geom.CornerRadius
	Rounded      bool
}

func (ImagePayload) payload() {}

// RenderCommand is one positioned drawing instruction.
type RenderCommand struct {
	PageID      string
	BoundingBox geom.BoundingBox
	ZIndex      int
	Payload     Payload
}
