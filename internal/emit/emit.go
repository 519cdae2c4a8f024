package emit

import (
	"sort"

	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

// Emit produces the render-command vector for the subtrees rooted at
// roots. Commands come back stable-sorted by pageId ascending, then by
// zIndex ascending within a page.
func Emit(a *tree.Arena, roots []int) []RenderCommand {
	var out []RenderCommand
	for _, r := range roots {
		emitSubtree(a, r, 0, nil, &out)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PageID != out[j].PageID {
			return out[i].PageID < out[j].PageID
		}
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

func emitSubtree(a *tree.Arena, idx, depth int, parentContent *geom.BoundingBox, out *[]RenderCommand) {
	e := a.Elem(idx)
	box := geom.BoundingBox{X: e.Position.X, Y: e.Position.Y, Width: e.Dimensions.Width, Height: e.Dimensions.Height}
	if parentContent != nil && !parentContent.Contains(box, 1e-6) {
		box = parentContent.Clip(box)
	}

	switch e.Kind {
	case tree.Rectangle:
		*out = append(*out, RenderCommand{
			PageID: e.PageID, BoundingBox: box, ZIndex: depth,
			Payload: RectanglePayload{Color: fillColor(e), CornerRadius: cornerRadius(e)},
		})
	case tree.Circle:
		*out = append(*out, RenderCommand{
			PageID: e.PageID, BoundingBox: box, ZIndex: depth,
			Payload: CirclePayload{Color: fillColor(e)},
		})
	case tree.Image:
		if e.Image != nil {
			*out = append(*out, RenderCommand{
				PageID: e.PageID, BoundingBox: box, ZIndex: depth,
				Payload: ImagePayload{
					Source: e.Image.Source, Fit: e.Image.Fit, Opacity: e.Image.Opacity,
					CornerRadius: e.Image.CornerRadius, Rounded: e.Image.Rounded,
				},
			})
		}
	case tree.Text:
		emitTextLines(e, box, depth, out)
	}

	if len(e.Children) == 0 {
		return
	}
	content := geom.BoundingBox{
		X: box.X + e.Layout.Padding.Left, Y: box.Y + e.Layout.Padding.Top,
		Width: box.Width - e.Layout.Padding.X(), Height: box.Height - e.Layout.Padding.Y(),
	}
	for _, ci := range e.Children {
		emitSubtree(a, ci, depth+1, &content, out)
	}
}

// emitTextLines stacks a text element's wrapped lines from its own content
// top, each horizontally offset by its textAlign within the content width.
func emitTextLines(e *tree.Element, box geom.BoundingBox, depth int, out *[]RenderCommand) {
	tc := e.Text
	contentLeft := box.X + e.Layout.Padding.Left
	contentTop := box.Y + e.Layout.Padding.Top
	contentWidth := box.Width - e.Layout.Padding.X()
	lineHeight := tc.ResolvedLineHeight()

	y := contentTop
	for _, line := range e.WrappedLines {
		var xOffset float64
		switch tc.TextAlign {
		case tree.TextCenter:
			xOffset = (contentWidth - line.Width) / 2
		case tree.TextRight:
			xOffset = contentWidth - line.Width
		}
		lineBox := geom.BoundingBox{X: contentLeft + xOffset, Y: y, Width: line.Width, Height: line.Height}
		*out = append(*out, RenderCommand{
			PageID: e.PageID, BoundingBox: lineBox, ZIndex: depth,
			Payload: TextPayload{Runs: GroupRuns(line.Words), Color: tc.Color, FontSize: tc.FontSize, LineHeight: lineHeight},
		})
		y += lineHeight
	}
}

func fillColor(e *tree.Element) geom.Color {
	if e.FillColor != nil {
		return *e.FillColor
	}
	return geom.Transparent
}

func cornerRadius(e *tree.Element) *geom.CornerRadius {
	if e.CornerRadius.IsZero() {
		return nil
	}
	r := e.CornerRadius
	return &r
}
