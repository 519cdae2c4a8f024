package pageflow

import (
	"github.com/inkwell-labs/pageflow/internal/emit"
	"github.com/inkwell-labs/pageflow/internal/geom"
)

// BoundingBox is an axis-aligned rectangle in points, origin top-left,
// x to the right, y downward.
type BoundingBox = geom.BoundingBox

// RenderCommand is one positioned drawing instruction produced by Render.
type RenderCommand = emit.RenderCommand

// Payload is the tagged union of what a RenderCommand draws: one of
// RectanglePayload, CirclePayload, TextPayload, or ImagePayload.
type Payload = emit.Payload

// RectanglePayload draws a filled, optionally rounded rectangle.
type RectanglePayload = emit.RectanglePayload

// CirclePayload draws a filled circle inscribed in the command's bounding box.
type CirclePayload = emit.CirclePayload

// TextPayload draws one wrapped line as a sequence of same-face glyph runs.
type TextPayload = emit.TextPayload

// ImagePayload references an opaque, unresolved image source.
type ImagePayload = emit.ImagePayload

// Run is a contiguous span of a wrapped line rendered under a single font
// face.
type Run = emit.Run
