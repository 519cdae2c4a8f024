package pageflow

import "github.com/inkwell-labs/pageflow/internal/geom"

// Color is an RGBA color with channels in [0,1].
type Color = geom.Color

// Black is the default text/shape color.
var Black = geom.Black

// Transparent has zero alpha; the default for an unset fill color.
var Transparent = geom.Transparent

// RGBA255 builds a Color from 0-255 byte channels.
func RGBA255(r, g, b, a uint8) Color { return geom.RGBA255(r, g, b, a) }

// ParseHexColor parses a "#rgb", "#rrggbb", or "#rrggbbaa" hex string into a
// Color.
func ParseHexColor(s string) (Color, error) { return geom.ParseHexColor(s) }

// CornerRadius holds independent radii for the four corners of a rectangle
// or rounded image, in points.
type CornerRadius = geom.CornerRadius

// UniformCornerRadius builds a CornerRadius with the same radius on all
// four corners.
func UniformCornerRadius(n float64) CornerRadius { return geom.UniformCornerRadius(n) }
