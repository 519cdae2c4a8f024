// Package geom holds the scalar geometry primitives shared by the layout
// core: bounding boxes, padding, corner radii, color, and the sizing axis
// tagged union.
package geom

// Point is a 2D point in page-space points, origin top-left, y downward.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in points.
type Size struct {
	Width, Height float64
}

// BoundingBox is an axis-aligned rectangle in points, origin top-left.
type BoundingBox struct {
	X, Y, Width, Height float64
}

// Right returns the box's right edge.
func (b BoundingBox) Right() float64 { return b.X + b.Width }

// Bottom returns the box's bottom edge.
func (b BoundingBox) Bottom() float64 { return b.Y + b.Height }

// Contains reports whether other fits inside b, up to eps of slack.
func (b BoundingBox) Contains(other BoundingBox, eps float64) bool {
	return other.X >= b.X-eps &&
		other.Y >= b.Y-eps &&
		other.Right() <= b.Right()+eps &&
		other.Bottom() <= b.Bottom()+eps
}

// Clip constrains other to lie within b, used when an overconstrained child
// would otherwise overflow its parent's content box at emission time.
func (b BoundingBox) Clip(other BoundingBox) BoundingBox {
	x0 := clampF(other.X, b.X, b.Right())
	y0 := clampF(other.Y, b.Y, b.Bottom())
	x1 := clampF(other.Right(), b.X, b.Right())
	y1 := clampF(other.Bottom(), b.Y, b.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Padding is inset space on the four sides of an element's border box.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// X returns the total horizontal padding (left+right).
func (p Padding) X() float64 { return p.Left + p.Right }

// Y returns the total vertical padding (top+bottom).
func (p Padding) Y() float64 { return p.Top + p.Bottom }

// UniformPadding builds a Padding with the same inset on all four sides.
func UniformPadding(n float64) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// CornerRadius holds independent radii for the four corners of a rectangle
// or rounded image, in points.
type CornerRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float64
}

// UniformCornerRadius builds a CornerRadius with the same radius on all
// four corners.
func UniformCornerRadius(n float64) CornerRadius {
	return CornerRadius{TopLeft: n, TopRight: n, BottomLeft: n, BottomRight: n}
}

// IsZero reports whether all four radii are zero.
func (c CornerRadius) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomLeft == 0 && c.BottomRight == 0
}

// Color is an RGBA color with channels in [0,1], matching the boundary
// tdewolff/canvas expects when handed off to a renderer.
type Color struct {
	R, G, B, A float64
}

// Black is the default text/shape color.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// Transparent has zero alpha.
var Transparent = Color{}

// RGBA255 builds a Color from 0-255 byte channels.
func RGBA255(r, g, b, a uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp restricts v to [lo,hi]. If hi < lo, hi is ignored and only the
// lower bound lo is applied.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if hi >= lo && v > hi {
		v = hi
	}
	return v
}
