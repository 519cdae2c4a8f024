package pageflow

import (
	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

// SizingAxis is the tagged union of an element's per-axis sizing rule:
// Fit (to content), Grow (share of free space), Percent (of the parent's
// content-box remainder), or Fixed (absolute points), each clamped to an
// optional (min,max) pair in points.
type SizingAxis = geom.SizingAxis

// Fit builds a SizingAxis that sizes to intrinsic content, optionally
// clamped by (min[, max]).
func Fit(minMax ...float64) SizingAxis { return geom.Fit(minMax...) }

// Grow builds a SizingAxis that shares free space with Grow siblings.
func Grow(minMax ...float64) SizingAxis { return geom.Grow(minMax...) }

// Percent builds a SizingAxis sized to a fraction p (0..1) of the parent's
// content-box remainder.
func Percent(p float64, minMax ...float64) SizingAxis { return geom.Percent(p, minMax...) }

// Fixed builds a SizingAxis with an absolute point value.
func Fixed(n float64) SizingAxis { return geom.Fixed(n) }

// Padding is inset space on the four sides of an element's border box.
type Padding = geom.Padding

// UniformPadding builds a Padding with the same inset on all four sides.
func UniformPadding(n float64) Padding { return geom.UniformPadding(n) }

// Direction selects the main axis a container lays its children along.
type Direction = tree.Direction

const (
	Row    = tree.Row
	Column = tree.Column
)

// AlignX is the horizontal alignment of a container's children on the
// cross axis, or of leftover main-axis space in a ROW.
type AlignX = tree.AlignX

const (
	AlignLeft    = tree.AlignLeft
	AlignCenterX = tree.AlignCenterX
	AlignRight   = tree.AlignRight
)

// AlignY is the vertical counterpart of AlignX.
type AlignY = tree.AlignY

const (
	AlignTop    = tree.AlignTop
	AlignCenterY = tree.AlignCenterY
	AlignBottom = tree.AlignBottom
)

// ChildAlignment bundles a container's main- and cross-axis child alignment.
type ChildAlignment = tree.ChildAlignment

// TextAlign is the horizontal alignment of wrapped lines within a TEXT
// element's content box.
type TextAlign = tree.TextAlign

const (
	TextLeft   = tree.TextLeft
	TextCenter = tree.TextCenter
	TextRight  = tree.TextRight
)

// FitMode selects how an image's intrinsic aspect interacts with its
// assigned box.
type FitMode = tree.FitMode

const (
	FitFill    = tree.FitFill
	FitContain = tree.FitContain
	FitCover   = tree.FitCover
)

// LayoutConfig is the sizing/spacing configuration every element carries.
type LayoutConfig struct {
	Width, Height  SizingAxis
	Padding        Padding
	ChildGap       float64
	ChildAlignment ChildAlignment
	Direction      Direction
}

func (c LayoutConfig) toTree() tree.LayoutConfig {
	return tree.LayoutConfig{
		Width: c.Width, Height: c.Height, Padding: c.Padding,
		ChildGap: c.ChildGap, ChildAlignment: c.ChildAlignment, Direction: c.Direction,
	}
}
