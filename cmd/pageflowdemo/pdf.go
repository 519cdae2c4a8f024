package main

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/inkwell-labs/pageflow"
	"github.com/inkwell-labs/pageflow/adapters/canvasfont"
)

func writePDF(w io.Writer, commands []pageflow.RenderCommand, fonts *canvasfont.Metrics, fontConfig pageflow.FontConfig, pageOrder []string, pageSizes map[string][2]float64) error {
	if len(pageOrder) == 0 {
		return fmt.Errorf("pageflowdemo: no pages to render")
	}
	byPage := make(map[string][]pageflow.RenderCommand, len(pageOrder))
	for _, c := range commands {
		byPage[c.PageID] = append(byPage[c.PageID], c)
	}

	first := pageSizes[pageOrder[0]]
	writer := pdf.New(w, first[0], first[1], nil)
	for i, pageID := range pageOrder {
		size := pageSizes[pageID]
		if i > 0 {
			writer.NewPage(size[0], size[1])
		}
		c := canvas.New(size[0], size[1])
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV)
		for _, cmd := range byPage[pageID] {
			if err := drawCommand(ctx, fonts, fontConfig, cmd); err != nil {
				return err
			}
		}
		c.RenderTo(writer)
	}
	return writer.Close()
}

var transparent = canvas.RGBA(0, 0, 0, 0)

func drawCommand(ctx *canvas.Context, fonts *canvasfont.Metrics, fontConfig pageflow.FontConfig, cmd pageflow.RenderCommand) error {
	box := cmd.BoundingBox
	switch p := cmd.Payload.(type) {
	case pageflow.RectanglePayload:
		ctx.SetFillColor(toCanvasColor(p.Color))
		ctx.SetStrokeColor(transparent)
		ctx.DrawPath(box.X, box.Y, canvas.Rectangle(box.Width, box.Height))
	case pageflow.CirclePayload:
		ctx.SetFillColor(toCanvasColor(p.Color))
		ctx.SetStrokeColor(transparent)
		r := box.Width / 2
		if box.Height < box.Width {
			r = box.Height / 2
		}
		ctx.DrawPath(box.X+box.Width/2-r, box.Y+box.Height/2-r, canvas.Circle(r))
	case pageflow.TextPayload:
		return drawText(ctx, fonts, fontConfig, box, p)
	case pageflow.ImagePayload:
		// Image bytes are not resolved by the demo command; only shape and
		// text output are wired to the PDF writer.
		return nil
	default:
		return fmt.Errorf("pageflowdemo: unknown render payload %T", p)
	}
	return nil
}

func drawText(ctx *canvas.Context, fonts *canvasfont.Metrics, fontConfig pageflow.FontConfig, box pageflow.BoundingBox, p pageflow.TextPayload) error {
	x := box.X
	col := toCanvasColor(p.Color)
	for _, run := range p.Runs {
		faceID := fontConfig.Resolve(run.Face)
		face, err := fonts.Face(faceID, p.FontSize, col)
		if err != nil {
			return err
		}
		line := canvas.NewTextLine(face, run.Text, canvas.Left)
		baseline := box.Y + face.Metrics().Ascent
		ctx.DrawText(x, baseline, line)
		x += face.TextWidth(run.Text)
	}
	return nil
}

func toCanvasColor(c pageflow.Color) canvas.Color {
	return canvas.RGBA(c.R, c.G, c.B, c.A)
}
