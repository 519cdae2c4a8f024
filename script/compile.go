package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkwell-labs/pageflow"
)

// Compile walks a parsed Document and issues the corresponding builder API
// calls against e. It opens exactly one page per PageDecl and never leaves a
// container open on error.
func Compile(doc *Document, e *pageflow.Engine) error {
	for _, p := range doc.Pages {
		if _, err := e.OpenPage(p.Width, p.Height); err != nil {
			return err
		}
		if err := compileNodes(p.Body, e); err != nil {
			return err
		}
	}
	return nil
}

func compileNodes(nodes []*Node, e *pageflow.Engine) error {
	for _, n := range nodes {
		switch {
		case n.Rect != nil:
			if err := compileContainer(pageflow.Rectangle, n.Rect, e); err != nil {
				return err
			}
		case n.Circle != nil:
			if err := compileContainer(pageflow.Circle, n.Circle, e); err != nil {
				return err
			}
		case n.Text != nil:
			if err := compileText(n.Text, e); err != nil {
				return err
			}
		case n.Image != nil:
			if err := compileImage(n.Image, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func compileContainer(kind pageflow.ElementKind, c *ContainerBody, e *pageflow.Engine) error {
	cfg := pageflow.ContainerConfig{Layout: pageflow.LayoutConfig{
		Width: pageflow.Fit(), Height: pageflow.Fit(),
	}}
	attrs := attrMap(c.Attrs)
	if err := applyLayoutAttrs(&cfg.Layout, attrs); err != nil {
		return err
	}
	if v, ok := attrs["id"]; ok {
		cfg.ID = v
	}
	if v, ok := attrs["fill"]; ok {
		col, err := pageflow.ParseHexColor(v)
		if err != nil {
			return fmt.Errorf("script: fill: %w", err)
		}
		cfg.FillColor = &col
	}
	if v, ok := attrs["corner"]; ok {
		r, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: corner: %w", err)
		}
		cfg.CornerRadius = pageflow.UniformCornerRadius(r)
	}
	if _, err := e.OpenContainer(kind, cfg); err != nil {
		return err
	}
	if err := compileNodes(c.Body, e); err != nil {
		_ = e.CloseContainer()
		return err
	}
	return e.CloseContainer()
}

func compileText(t *TextDecl, e *pageflow.Engine) error {
	cfg := pageflow.TextConfig{
		Layout:   pageflow.LayoutConfig{Width: pageflow.Fit(), Height: pageflow.Fit()},
		FontSize: 12,
		Color:    pageflow.Black,
	}
	attrs := attrMap(t.Attrs)
	if err := applyLayoutAttrs(&cfg.Layout, attrs); err != nil {
		return err
	}
	if v, ok := attrs["id"]; ok {
		cfg.ID = v
	}
	if v, ok := attrs["fontSize"]; ok {
		f, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: fontSize: %w", err)
		}
		cfg.FontSize = f
	}
	if v, ok := attrs["color"]; ok {
		col, err := pageflow.ParseHexColor(v)
		if err != nil {
			return fmt.Errorf("script: color: %w", err)
		}
		cfg.Color = col
	}
	if v, ok := attrs["align"]; ok {
		switch v {
		case "left":
			cfg.TextAlign = pageflow.TextLeft
		case "center":
			cfg.TextAlign = pageflow.TextCenter
		case "right":
			cfg.TextAlign = pageflow.TextRight
		default:
			return fmt.Errorf("script: align: unknown value %q", v)
		}
	}
	if v, ok := attrs["lineHeight"]; ok {
		f, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: lineHeight: %w", err)
		}
		cfg.LineHeight = &f
	}
	if v, ok := attrs["lineSpacingFactor"]; ok {
		f, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: lineSpacingFactor: %w", err)
		}
		cfg.LineSpacingFactor = f
	}
	if v, ok := attrs["bold"]; ok {
		cfg.Bold = v == "true"
	}
	if v, ok := attrs["italic"]; ok {
		cfg.Italic = v == "true"
	}
	_, err := e.Text(t.Content, cfg)
	return err
}

func compileImage(i *ImageDecl, e *pageflow.Engine) error {
	cfg := pageflow.ImageConfig{
		Layout:  pageflow.LayoutConfig{Width: pageflow.Fit(), Height: pageflow.Fit()},
		Opacity: 1,
	}
	attrs := attrMap(i.Attrs)
	if err := applyLayoutAttrs(&cfg.Layout, attrs); err != nil {
		return err
	}
	if v, ok := attrs["id"]; ok {
		cfg.ID = v
	}
	if v, ok := attrs["fit"]; ok {
		switch v {
		case "fill":
			cfg.Fit = pageflow.FitFill
		case "contain":
			cfg.Fit = pageflow.FitContain
		case "cover":
			cfg.Fit = pageflow.FitCover
		default:
			return fmt.Errorf("script: fit: unknown value %q", v)
		}
	}
	if v, ok := attrs["opacity"]; ok {
		f, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: opacity: %w", err)
		}
		cfg.Opacity = f
	}
	if v, ok := attrs["rounded"]; ok {
		cfg.Rounded = v == "true"
	}
	if v, ok := attrs["corner"]; ok {
		r, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: corner: %w", err)
		}
		radius := pageflow.UniformCornerRadius(r)
		cfg.CornerRadius = &radius
	}
	_, err := e.Image(i.Source, cfg)
	return err
}

func applyLayoutAttrs(l *pageflow.LayoutConfig, attrs map[string]string) error {
	if v, ok := attrs["width"]; ok {
		ax, err := parseSizing(v)
		if err != nil {
			return fmt.Errorf("script: width: %w", err)
		}
		l.Width = ax
	}
	if v, ok := attrs["height"]; ok {
		ax, err := parseSizing(v)
		if err != nil {
			return fmt.Errorf("script: height: %w", err)
		}
		l.Height = ax
	}
	if v, ok := attrs["padding"]; ok {
		p, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: padding: %w", err)
		}
		l.Padding = pageflow.UniformPadding(p)
	}
	if v, ok := attrs["childGap"]; ok {
		g, err := parseFloat(v)
		if err != nil {
			return fmt.Errorf("script: childGap: %w", err)
		}
		l.ChildGap = g
	}
	if v, ok := attrs["direction"]; ok {
		switch v {
		case "row":
			l.Direction = pageflow.Row
		case "column":
			l.Direction = pageflow.Column
		default:
			return fmt.Errorf("script: direction: unknown value %q", v)
		}
	}
	if v, ok := attrs["alignX"]; ok {
		switch v {
		case "left":
			l.ChildAlignment.X = pageflow.AlignLeft
		case "center":
			l.ChildAlignment.X = pageflow.AlignCenterX
		case "right":
			l.ChildAlignment.X = pageflow.AlignRight
		default:
			return fmt.Errorf("script: alignX: unknown value %q", v)
		}
	}
	if v, ok := attrs["alignY"]; ok {
		switch v {
		case "top":
			l.ChildAlignment.Y = pageflow.AlignTop
		case "center":
			l.ChildAlignment.Y = pageflow.AlignCenterY
		case "bottom":
			l.ChildAlignment.Y = pageflow.AlignBottom
		default:
			return fmt.Errorf("script: alignY: unknown value %q", v)
		}
	}
	return nil
}

// parseSizing interprets a width/height attribute value: "fit", "grow", a
// bare number ("120") for Fixed points, or a percentage ("25%") for
// Percent of the parent's content-box remainder.
func parseSizing(v string) (pageflow.SizingAxis, error) {
	switch v {
	case "fit":
		return pageflow.Fit(), nil
	case "grow":
		return pageflow.Grow(), nil
	}
	if strings.HasSuffix(v, "%") {
		f, err := parseFloat(strings.TrimSuffix(v, "%"))
		if err != nil {
			return pageflow.SizingAxis{}, err
		}
		return pageflow.Percent(f / 100), nil
	}
	f, err := parseFloat(v)
	if err != nil {
		return pageflow.SizingAxis{}, err
	}
	return pageflow.Fixed(f), nil
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

func attrMap(attrs []*Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value()
	}
	return out
}
