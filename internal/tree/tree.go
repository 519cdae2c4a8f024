// Package tree implements the element arena: the single-owner store of
// layout nodes the builder populates and the solver mutates in place.
package tree

import (
	"fmt"

	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/richtext"
)

// Kind tags which of the four element variants a node is.
type Kind uint8

const (
	Rectangle Kind = iota
	Circle
	Text
	Image
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "RECTANGLE"
	case Circle:
		return "CIRCLE"
	case Text:
		return "TEXT"
	case Image:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// Direction selects the main axis a container lays its children along.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// AlignX is the horizontal alignment of a ROW group's leftover space, or a
// child's cross-axis position within a COLUMN.
type AlignX uint8

const (
	AlignLeft AlignX = iota
	AlignCenterX
	AlignRight
)

// AlignY is the vertical counterpart of AlignX.
type AlignY uint8

const (
	AlignTop AlignY = iota
	AlignCenterY
	AlignBottom
)

// ChildAlignment bundles the main- and cross-axis alignment of a container's
// children.
type ChildAlignment struct {
	X AlignX
	Y AlignY
}

// LayoutConfig is the sizing/spacing configuration every element carries.
type LayoutConfig struct {
	Width, Height  geom.SizingAxis
	Padding        geom.Padding
	ChildGap       float64
	ChildAlignment ChildAlignment
	Direction      Direction
}

// TextAlign is the horizontal alignment of wrapped lines within a TEXT
// element's content box.
type TextAlign uint8

const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
)

// TextConfig is the payload of a TEXT element.
type TextConfig struct {
	Content           string
	FontSize          float64
	LineSpacingFactor float64
	LineHeight        *float64 // nil means fontSize * LineSpacingFactor
	TextAlign         TextAlign
	Color             geom.Color
	Bold              bool // base style; markdown toggles apply on top
	Italic            bool
}

// ResolvedLineHeight returns the line box height to use for this text
// config: the explicit override if set, else fontSize scaled by the
// line-spacing factor.
func (t TextConfig) ResolvedLineHeight() float64 {
	if t.LineHeight != nil {
		return *t.LineHeight
	}
	factor := t.LineSpacingFactor
	if factor == 0 {
		factor = 1.2
	}
	return t.FontSize * factor
}

// FitMode selects how an image's intrinsic aspect interacts with its
// assigned box.
type FitMode uint8

const (
	FitFill FitMode = iota
	FitContain
	FitCover
)

// ImageConfig is the payload of an IMAGE element.
type ImageConfig struct {
	Source       string
	Fit          FitMode
	Opacity      float64
	CornerRadius *geom.CornerRadius
	Rounded      bool
}

// Element is one node of the layout tree. Children are referenced by arena
// index, never by pointer, so the arena remains the sole owner.
type Element struct {
	idx int

	ID     string
	PageID string
	Kind   Kind
	Parent int // arena index, -1 for a root
	Children []int

	Layout LayoutConfig
	Text   *TextConfig
	Image  *ImageConfig

	FillColor    *geom.Color
	CornerRadius geom.CornerRadius

	// Populated only by the solver's three mutable geometry fields, never
	// by the builder.
	MinDimensions geom.Size
	Dimensions    geom.Size
	Position      geom.Point

	// WrappedLines holds the text-reflow output for TEXT elements; nil for
	// every other kind.
	WrappedLines []richtext.Line
}

// Index returns this element's stable arena index.
func (e *Element) Index() int { return e.idx }

// Arena owns every element created during one render. It never shrinks and
// never reassigns indices, so an index taken at any point stays valid for
// the arena's lifetime.
type Arena struct {
	elements []*Element
	autoID   int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates a new element with the given kind, page id, and parent
// index (-1 for a root), auto-generating an id if requested id is empty.
func (a *Arena) New(kind Kind, pageID string, parent int, id string) *Element {
	idx := len(a.elements)
	if id == "" {
		a.autoID++
		id = fmt.Sprintf("el-%d", a.autoID)
	}
	a.elements = append(a.elements, &Element{
		idx:    idx,
		ID:     id,
		PageID: pageID,
		Kind:   kind,
		Parent: parent,
	})
	if parent >= 0 {
		p := a.Elem(parent)
		p.Children = append(p.Children, idx)
	}
	return a.Elem(idx)
}

// Elem returns a pointer to the element at idx, valid for the arena's
// lifetime.
func (a *Arena) Elem(idx int) *Element { return a.elements[idx] }

// Len returns the total number of elements ever allocated.
func (a *Arena) Len() int { return len(a.elements) }

// Roots returns the indices of every element with no parent, in creation
// order.
func (a *Arena) Roots() []int {
	var roots []int
	for i := range a.elements {
		if a.elements[i].Parent < 0 {
			roots = append(roots, i)
		}
	}
	return roots
}
