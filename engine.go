// Package pageflow is a declarative document layout engine: a tree of
// nested container, text, and image nodes is solved into absolutely
// positioned render commands via a multi-pass constraint solver and a
// markdown-aware text-shaping pipeline.
//
// The core never touches fonts, pixels, or PDF bytes. Callers supply a
// FontMetrics and (optionally) an ImageMetrics port; the adapters package
// ships reference implementations of both against github.com/tdewolff/canvas
// and the standard image package.
package pageflow

import (
	"fmt"

	"github.com/inkwell-labs/pageflow/internal/emit"
	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/solver"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

// ElementKind selects which kind of container OpenContainer opens.
type ElementKind = tree.Kind

const (
	Rectangle = tree.Rectangle
	Circle    = tree.Circle
)

// ContainerConfig configures a RECTANGLE or CIRCLE container opened by
// OpenContainer.
type ContainerConfig struct {
	ID           string
	Layout       LayoutConfig
	FillColor    *Color
	CornerRadius CornerRadius
}

// TextConfig configures a TEXT element created by Text.
type TextConfig struct {
	ID                string
	Layout            LayoutConfig
	FontSize          float64
	LineSpacingFactor float64 // 0 defers to the engine's default
	LineHeight        *float64
	TextAlign         TextAlign
	Color             Color
	Bold, Italic      bool
}

// ImageConfig configures an IMAGE element created by Image.
type ImageConfig struct {
	ID           string
	Layout       LayoutConfig
	Fit          FitMode
	Opacity      float64
	CornerRadius *CornerRadius
	Rounded      bool
}

// Engine owns the element arena, the page registry, and the ports the
// solver and emitter consult, for the duration of one render lifecycle.
// It is not safe for concurrent use; run independent Engines on separate
// goroutines if you need concurrency.
type Engine struct {
	arena *tree.Arena
	opts  Options

	pageSizes   map[string]geom.Size
	pageOrder   []string
	currentPage string
	autoPage    int

	stack []int // open container arena indices, innermost last
}

// NewEngine constructs an Engine. WithFontMetrics is required; NewEngine
// returns a *UsageError if it was never supplied.
func NewEngine(opts ...Option) (*Engine, error) {
	o := newOptions(opts)
	if o.fontMetrics == nil {
		return nil, usageError("NewEngine", "WithFontMetrics is required")
	}
	return &Engine{
		arena:     tree.NewArena(),
		opts:      o,
		pageSizes: make(map[string]geom.Size),
	}, nil
}

// OpenPage begins a new top-level subtree with its own page id. sizePt, if
// given as (width, height), overrides the engine's default page size for
// this page only. OpenPage returns a UsageError if a container from a
// previous page was never closed.
func (e *Engine) OpenPage(sizePt ...float64) (string, error) {
	if len(e.stack) != 0 {
		return "", usageError("OpenPage", "previous page has an unclosed container")
	}
	width, height := e.opts.pageWidthPt, e.opts.pageHeightPt
	if len(sizePt) >= 2 {
		width, height = sizePt[0], sizePt[1]
	}
	if width <= 0 || height <= 0 {
		return "", usageError("OpenPage", "page size must be positive")
	}
	e.autoPage++
	id := fmt.Sprintf("page-%d", e.autoPage)
	e.pageSizes[id] = geom.Size{Width: width, Height: height}
	e.pageOrder = append(e.pageOrder, id)
	e.currentPage = id
	return id, nil
}

// validateLayout rejects a negative width/height before it ever reaches the
// arena: a Fixed axis stores its value in Min/Max both, so this also catches
// Fixed(-N); an explicit negative Min on Fit/Grow/Percent is caught the same
// way.
func validateLayout(op string, l LayoutConfig) error {
	if l.Width.Min < 0 {
		return usageError(op, "layout width must be non-negative")
	}
	if l.Height.Min < 0 {
		return usageError(op, "layout height must be non-negative")
	}
	return nil
}

func (e *Engine) parent() int {
	if len(e.stack) == 0 {
		return -1
	}
	return e.stack[len(e.stack)-1]
}

// OpenContainer creates a RECTANGLE or CIRCLE element as a child of the
// currently open container (or as a new top-level root of the current page,
// if none is open) and pushes it onto the open-container stack.
func (e *Engine) OpenContainer(kind ElementKind, cfg ContainerConfig) (string, error) {
	if e.currentPage == "" {
		return "", usageError("OpenContainer", "no page is open")
	}
	if cfg.CornerRadius != (CornerRadius{}) && kind != Rectangle {
		return "", usageError("OpenContainer", "cornerRadius only applies to RECTANGLE containers")
	}
	if err := validateLayout("OpenContainer", cfg.Layout); err != nil {
		return "", err
	}
	el := e.arena.New(kind, e.currentPage, e.parent(), cfg.ID)
	el.Layout = cfg.Layout.toTree()
	el.FillColor = cfg.FillColor
	el.CornerRadius = cfg.CornerRadius
	e.stack = append(e.stack, el.Index())
	return el.ID, nil
}

// CloseContainer pops the innermost open container. Returns a UsageError
// if the stack is already empty.
func (e *Engine) CloseContainer() error {
	if len(e.stack) == 0 {
		return usageError("CloseContainer", "no open container to close")
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// Text creates a TEXT leaf element under the currently open container (or
// as a new top-level root of the current page) with the given
// markdown-flavored content.
func (e *Engine) Text(content string, cfg TextConfig) (string, error) {
	if e.currentPage == "" {
		return "", usageError("Text", "no page is open")
	}
	if cfg.FontSize < 0 {
		return "", usageError("Text", "fontSize must be non-negative")
	}
	if err := validateLayout("Text", cfg.Layout); err != nil {
		return "", err
	}
	el := e.arena.New(tree.Text, e.currentPage, e.parent(), cfg.ID)
	el.Layout = cfg.Layout.toTree()
	el.Text = &tree.TextConfig{
		Content: content, FontSize: cfg.FontSize, LineSpacingFactor: cfg.LineSpacingFactor,
		LineHeight: cfg.LineHeight, TextAlign: cfg.TextAlign, Color: cfg.Color,
		Bold: cfg.Bold, Italic: cfg.Italic,
	}
	if el.Text.LineSpacingFactor == 0 {
		el.Text.LineSpacingFactor = e.opts.lineSpacingFactor
	}
	return el.ID, nil
}

// Image creates an IMAGE leaf element referencing an opaque source; the
// engine never decodes it.
func (e *Engine) Image(source string, cfg ImageConfig) (string, error) {
	if e.currentPage == "" {
		return "", usageError("Image", "no page is open")
	}
	if cfg.Opacity < 0 || cfg.Opacity > 1 {
		return "", usageError("Image", "opacity must be in [0,1]")
	}
	if err := validateLayout("Image", cfg.Layout); err != nil {
		return "", err
	}
	el := e.arena.New(tree.Image, e.currentPage, e.parent(), cfg.ID)
	el.Layout = cfg.Layout.toTree()
	el.Image = &tree.ImageConfig{
		Source: source, Fit: cfg.Fit, Opacity: cfg.Opacity,
		CornerRadius: cfg.CornerRadius, Rounded: cfg.Rounded,
	}
	return el.ID, nil
}

// Render solves the layout of every page opened so far and emits the flat,
// z-ordered command vector, along with any non-fatal warnings collected
// along the way. It returns a *UsageError if any container was left open.
func (e *Engine) Render() ([]RenderCommand, []Warning, error) {
	if len(e.stack) != 0 {
		return nil, nil, usageError("Render", "unmatched OpenContainer: a container was never closed")
	}
	if len(e.pageOrder) == 0 {
		return nil, nil, usageError("Render", "no page was opened")
	}

	s := solver.New(e.arena, e.opts.fontMetrics, e.opts.imageMetrics, e.opts.fonts, e.opts.useImageForEmojis, e.opts.logger)
	warnings := s.Solve(e.arena.Roots(), e.pageSizes)
	commands := emit.Emit(e.arena, e.arena.Roots())
	return commands, warnings, nil
}
