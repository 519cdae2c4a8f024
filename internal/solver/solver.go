// Package solver implements the seven-pass constraint solver: root init,
// bottom-up minima, X distribution, text reflow, minima recompute, Y
// distribution, and top-down positioning.
package solver

import (
	"fmt"
	"math"

	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/ports"
	"github.com/inkwell-labs/pageflow/internal/richtext"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

const eps = 1e-6

// Solver owns the per-render caches (measured tokens, glyph widths) so
// repeated words are only ever measured once.
type Solver struct {
	arena             *tree.Arena
	fm                ports.FontMetrics
	im                ports.ImageMetrics
	fonts             ports.FontConfig
	useImageForEmojis bool
	logger            ports.Logger

	warnings   []Warning
	widthCache map[string]float64
	tokenCache map[int][]richtext.StyledWord
}

// New builds a Solver bound to arena and the given external ports.
func New(arena *tree.Arena, fm ports.FontMetrics, im ports.ImageMetrics, fonts ports.FontConfig, useImageForEmojis bool, logger ports.Logger) *Solver {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &Solver{
		arena:             arena,
		fm:                fm,
		im:                im,
		fonts:             fonts,
		useImageForEmojis: useImageForEmojis,
		logger:            logger,
		widthCache:        make(map[string]float64),
		tokenCache:        make(map[int][]richtext.StyledWord),
	}
}

// Solve runs all seven passes over the subtrees rooted at roots, mutating
// every element's MinDimensions, Dimensions, Position, and (for TEXT
// elements) WrappedLines in place. It records each accumulated non-fatal
// warning through the logger and returns them.
func (s *Solver) Solve(roots []int, pageSizes map[string]geom.Size) []Warning {
	s.initRoots(roots, pageSizes)

	for _, r := range roots {
		s.computeMinima(r)
	}
	s.inflateRootWidths(roots)

	for _, r := range roots {
		s.distribute(r, axisX)
	}

	s.reflowText()

	for _, r := range roots {
		s.computeMinima(r)
	}
	s.inflateRootHeights(roots)

	for _, r := range roots {
		s.distribute(r, axisY)
	}

	for _, r := range roots {
		e := s.arena.Elem(r)
		e.Position = geom.Point{}
		s.positionChildren(r)
	}

	s.validateContainment(roots)
	for _, w := range s.warnings {
		s.logger.Warn(w.Message, "kind", w.Kind.String(), "element", w.ElementID)
	}
	return s.warnings
}

// --- pass 1: root initialization ---

func (s *Solver) initRoots(roots []int, pageSizes map[string]geom.Size) {
	for _, r := range roots {
		e := s.arena.Elem(r)
		page := pageSizes[e.PageID]
		e.Dimensions.Width = rootAxisInit(e.Layout.Width, page.Width)
		e.Dimensions.Height = rootAxisInit(e.Layout.Height, page.Height)
	}
}

func rootAxisInit(ax geom.SizingAxis, pageDim float64) float64 {
	switch {
	case ax.IsFixed():
		return ax.Fixed
	case ax.IsPercent():
		return ax.Clamp(pageDim * ax.Percent)
	case ax.IsGrow():
		return ax.Clamp(pageDim)
	default: // Fit — inflated after minima are known
		return 0
	}
}

func (s *Solver) inflateRootWidths(roots []int) {
	for _, r := range roots {
		e := s.arena.Elem(r)
		if e.Layout.Width.IsFit() {
			e.Dimensions.Width = e.MinDimensions.Width
		}
	}
}

func (s *Solver) inflateRootHeights(roots []int) {
	for _, r := range roots {
		e := s.arena.Elem(r)
		if e.Layout.Height.IsFit() {
			e.Dimensions.Height = e.MinDimensions.Height
		}
	}
}

// --- passes 2 & 5: intrinsic minima, bottom-up ---

func (s *Solver) computeMinima(idx int) {
	e := s.arena.Elem(idx)
	switch {
	case e.Kind == tree.Text:
		s.textMinima(e)
	case len(e.Children) == 0:
		s.leafMinima(e)
	default:
		for _, ci := range e.Children {
			s.computeMinima(ci)
		}
		s.containerMinima(e)
	}
}

func (s *Solver) leafMinima(e *tree.Element) {
	if e.Kind == tree.Image && e.Image != nil && e.Layout.Width.IsFit() && e.Layout.Height.IsFit() {
		w, h, err := s.im.Describe(e.Image.Source)
		if err != nil {
			s.warnings = append(s.warnings, imageUnavailable(e.ID, err))
			w, h = 0, 0
		}
		e.MinDimensions.Width = e.Layout.Width.Clamp(w)
		e.MinDimensions.Height = e.Layout.Height.Clamp(h)
		return
	}
	e.MinDimensions.Width = axisLeafMin(e.Layout.Width)
	e.MinDimensions.Height = axisLeafMin(e.Layout.Height)
}

// axisLeafMin gives a non-text leaf's minimum on one axis: the axis's own
// bound if FIT, else 0, extended so a Fixed axis contributes its exact
// value — otherwise a Fixed leaf would silently vanish from an ancestor's
// Fit-derived minimum.
func axisLeafMin(ax geom.SizingAxis) float64 {
	switch {
	case ax.IsFixed():
		return ax.Fixed
	case ax.IsFit():
		return ax.Min
	default:
		return 0
	}
}

func (s *Solver) containerMinima(e *tree.Element) {
	n := len(e.Children)
	var minW, minH float64
	if e.Layout.Direction == tree.Row {
		var sumW, maxH float64
		for _, ci := range e.Children {
			c := s.arena.Elem(ci)
			sumW += c.MinDimensions.Width
			if c.MinDimensions.Height > maxH {
				maxH = c.MinDimensions.Height
			}
		}
		minW = sumW + float64(n-1)*e.Layout.ChildGap + e.Layout.Padding.X()
		minH = maxH + e.Layout.Padding.Y()
	} else {
		var maxW, sumH float64
		for _, ci := range e.Children {
			c := s.arena.Elem(ci)
			if c.MinDimensions.Width > maxW {
				maxW = c.MinDimensions.Width
			}
			sumH += c.MinDimensions.Height
		}
		minW = maxW + e.Layout.Padding.X()
		minH = sumH + float64(n-1)*e.Layout.ChildGap + e.Layout.Padding.Y()
	}
	switch {
	case e.Layout.Width.IsFixed():
		minW = e.Layout.Width.Fixed
	case e.Layout.Width.IsFit():
		minW = e.Layout.Width.Clamp(minW)
	}
	switch {
	case e.Layout.Height.IsFixed():
		minH = e.Layout.Height.Fixed
	case e.Layout.Height.IsFit():
		minH = e.Layout.Height.Clamp(minH)
	}
	e.MinDimensions.Width = minW
	e.MinDimensions.Height = minH
}

// --- text measurement helpers shared by passes 2, 4, 5 ---

func (s *Solver) measuredTokens(e *tree.Element) []richtext.StyledWord {
	if cached, ok := s.tokenCache[e.Index()]; ok {
		return cached
	}
	raw := richtext.Tokenize(e.Text.Content)
	raw = applyBaseStyle(raw, e.Text.Bold, e.Text.Italic)
	measured, _ := richtext.Measure(cachedMetrics{s: s, elementID: e.ID}, s.fonts, e.Text.FontSize, raw, s.useImageForEmojis)
	s.tokenCache[e.Index()] = measured
	return measured
}

func applyBaseStyle(words []richtext.StyledWord, bold, italic bool) []richtext.StyledWord {
	if !bold && !italic {
		return words
	}
	out := make([]richtext.StyledWord, len(words))
	for i, w := range words {
		w.Bold = w.Bold || bold
		w.Italic = w.Italic || italic
		out[i] = w
	}
	return out
}

// knownWidth reports the width an element is already committed to, either
// because it is Fixed (independent of any parent) or because a previous
// pass already assigned Dimensions.Width.
func (s *Solver) knownWidth(e *tree.Element) (float64, bool) {
	if e.Layout.Width.IsFixed() {
		return e.Layout.Width.Fixed, true
	}
	if e.Dimensions.Width > 0 {
		return e.Dimensions.Width, true
	}
	return 0, false
}

func (s *Solver) textMinima(e *tree.Element) {
	tokens := s.measuredTokens(e)
	lineHeight := e.Text.ResolvedLineHeight()

	if w, ok := s.knownWidth(e); ok {
		contentW := math.Max(0, w-e.Layout.Padding.X())
		lines := richtext.Wrap(tokens, contentW)
		e.WrappedLines = lines
		total := textBlockHeight(lines, lineHeight)
		e.Dimensions.Width = w
		e.Dimensions.Height = total + e.Layout.Padding.Y()
		e.MinDimensions.Width = w
		e.MinDimensions.Height = e.Dimensions.Height
		return
	}

	// Natural, unconstrained width: wrap only at explicit hard breaks.
	lines := richtext.Wrap(tokens, math.MaxFloat64/2)
	var naturalWidth float64
	for _, l := range lines {
		if l.Width > naturalWidth {
			naturalWidth = l.Width
		}
	}
	total := textBlockHeight(lines, lineHeight)
	e.MinDimensions.Width = naturalWidth + e.Layout.Padding.X()
	e.MinDimensions.Height = total + e.Layout.Padding.Y()
}

// textBlockHeight sums a wrapped block's rendered height as n-1 nominal
// line-height advances plus the last line's actual content height.
func textBlockHeight(lines []richtext.Line, lineHeight float64) float64 {
	if len(lines) == 0 {
		return 0
	}
	n := len(lines)
	return float64(n-1)*lineHeight + lines[n-1].Height
}

// --- pass 4: text reflow + FIT-ancestor bubbling ---

func (s *Solver) reflowText() {
	for idx := 0; idx < s.arena.Len(); idx++ {
		e := s.arena.Elem(idx)
		if e.Kind != tree.Text {
			continue
		}
		s.reflowOne(idx)
	}
}

func (s *Solver) reflowOne(idx int) {
	e := s.arena.Elem(idx)
	tokens := s.measuredTokens(e)
	contentW := math.Max(0, e.Dimensions.Width-e.Layout.Padding.X())
	lines := richtext.Wrap(tokens, contentW)
	e.WrappedLines = lines

	lineHeight := e.Text.ResolvedLineHeight()
	total := textBlockHeight(lines, lineHeight)
	e.Dimensions.Height = total + e.Layout.Padding.Y()
	e.MinDimensions.Width = e.Dimensions.Width
	e.MinDimensions.Height = e.Dimensions.Height

	s.bubbleFitHeight(e.Parent)
}

// bubbleFitHeight walks the full ancestor chain, recomputing each
// Fit-height parent's minimum from its children's current Dimensions —
// propagation continues through every FIT ancestor, not just one level.
func (s *Solver) bubbleFitHeight(parentIdx int) {
	for parentIdx >= 0 {
		p := s.arena.Elem(parentIdx)
		if !p.Layout.Height.IsFit() {
			return
		}
		n := len(p.Children)
		var newMin float64
		if p.Layout.Direction == tree.Column {
			var sum float64
			for _, ci := range p.Children {
				sum += s.arena.Elem(ci).Dimensions.Height
			}
			newMin = sum + float64(n-1)*p.Layout.ChildGap + p.Layout.Padding.Y()
		} else {
			var maxH float64
			for _, ci := range p.Children {
				if h := s.arena.Elem(ci).Dimensions.Height; h > maxH {
					maxH = h
				}
			}
			newMin = maxH + p.Layout.Padding.Y()
		}
		newMin = p.Layout.Height.Clamp(newMin)
		if newMin > p.MinDimensions.Height {
			p.MinDimensions.Height = newMin
		}
		parentIdx = p.Parent
	}
}

// --- passes 3 & 6: distribute along an axis ---

type axisKind uint8

const (
	axisX axisKind = iota
	axisY
)

func (s *Solver) distribute(idx int, axis axisKind) {
	e := s.arena.Elem(idx)
	n := len(e.Children)
	if n == 0 {
		return
	}

	var content float64
	if axis == axisX {
		content = e.Dimensions.Width - e.Layout.Padding.X() - float64(n-1)*e.Layout.ChildGap
	} else {
		content = e.Dimensions.Height - e.Layout.Padding.Y() - float64(n-1)*e.Layout.ChildGap
	}
	if content < 0 {
		content = 0
	}

	mainDirection := tree.Row
	if axis == axisY {
		mainDirection = tree.Column
	}
	isMain := e.Layout.Direction == mainDirection

	assigned := make([]float64, n)
	var growIdx []int
	var growAxes []geom.SizingAxis
	var sum float64

	for i, ci := range e.Children {
		c := s.arena.Elem(ci)
		ax := c.Layout.Width
		if axis == axisY {
			ax = c.Layout.Height
		}
		switch {
		case ax.IsFixed():
			assigned[i] = ax.Fixed
			sum += assigned[i]
		case ax.IsPercent():
			assigned[i] = ax.Clamp(content * ax.Percent)
			sum += assigned[i]
		case ax.IsFit():
			if axis == axisX {
				assigned[i] = c.MinDimensions.Width
			} else {
				assigned[i] = c.MinDimensions.Height
			}
			sum += assigned[i]
		case ax.IsGrow():
			if isMain {
				growIdx = append(growIdx, i)
				growAxes = append(growAxes, ax)
			} else {
				assigned[i] = ax.Clamp(content)
				sum += assigned[i]
			}
		}
	}

	if isMain && len(growIdx) > 0 {
		remainder := content - sum
		shares := resolveGrow(remainder, growAxes)
		for k, i := range growIdx {
			assigned[i] = shares[k]
		}
	}

	for i, ci := range e.Children {
		c := s.arena.Elem(ci)
		if axis == axisX {
			c.Dimensions.Width = assigned[i]
		} else {
			c.Dimensions.Height = assigned[i]
		}
	}
	for _, ci := range e.Children {
		s.distribute(ci, axis)
	}
}

// --- pass 7: position, top-down ---

func (s *Solver) positionChildren(idx int) {
	e := s.arena.Elem(idx)
	n := len(e.Children)
	if n == 0 {
		return
	}
	contentX := e.Position.X + e.Layout.Padding.Left
	contentY := e.Position.Y + e.Layout.Padding.Top
	contentW := e.Dimensions.Width - e.Layout.Padding.X()
	contentH := e.Dimensions.Height - e.Layout.Padding.Y()
	gap := e.Layout.ChildGap

	if e.Layout.Direction == tree.Row {
		var sumW float64
		for _, ci := range e.Children {
			sumW += s.arena.Elem(ci).Dimensions.Width
		}
		free := math.Max(0, contentW-sumW-float64(n-1)*gap)
		var offset float64
		switch e.Layout.ChildAlignment.X {
		case tree.AlignCenterX:
			offset = free / 2
		case tree.AlignRight:
			offset = free
		}
		cursor := contentX + offset
		for _, ci := range e.Children {
			c := s.arena.Elem(ci)
			cy := contentY
			switch e.Layout.ChildAlignment.Y {
			case tree.AlignCenterY:
				cy = contentY + (contentH-c.Dimensions.Height)/2
			case tree.AlignBottom:
				cy = contentY + (contentH - c.Dimensions.Height)
			}
			c.Position = geom.Point{X: cursor, Y: cy}
			cursor += c.Dimensions.Width + gap
			s.positionChildren(ci)
		}
		return
	}

	var sumH float64
	for _, ci := range e.Children {
		sumH += s.arena.Elem(ci).Dimensions.Height
	}
	free := math.Max(0, contentH-sumH-float64(n-1)*gap)
	var offset float64
	switch e.Layout.ChildAlignment.Y {
	case tree.AlignCenterY:
		offset = free / 2
	case tree.AlignBottom:
		offset = free
	}
	cursor := contentY + offset
	for _, ci := range e.Children {
		c := s.arena.Elem(ci)
		cx := contentX
		switch e.Layout.ChildAlignment.X {
		case tree.AlignCenterX:
			cx = contentX + (contentW-c.Dimensions.Width)/2
		case tree.AlignRight:
			cx = contentX + (contentW - c.Dimensions.Width)
		}
		c.Position = geom.Point{X: cx, Y: cursor}
		cursor += c.Dimensions.Height + gap
		s.positionChildren(ci)
	}
}

// --- overconstraint detection ---

// validateContainment checks for overflow: a child whose positioned
// bounding box does not fit inside its parent's content box (up to eps) is
// overconstrained. The child keeps its computed
// geometry — clipping happens only at emission — but a warning is
// recorded here so the caller learns about it regardless of whether it
// ever emits commands.
func (s *Solver) validateContainment(roots []int) {
	for idx := 0; idx < s.arena.Len(); idx++ {
		e := s.arena.Elem(idx)
		if e.Parent < 0 {
			continue
		}
		p := s.arena.Elem(e.Parent)
		parentContent := geom.BoundingBox{
			X:      p.Position.X + p.Layout.Padding.Left,
			Y:      p.Position.Y + p.Layout.Padding.Top,
			Width:  p.Dimensions.Width - p.Layout.Padding.X(),
			Height: p.Dimensions.Height - p.Layout.Padding.Y(),
		}
		childBox := geom.BoundingBox{X: e.Position.X, Y: e.Position.Y, Width: e.Dimensions.Width, Height: e.Dimensions.Height}
		if !parentContent.Contains(childBox, eps) {
			s.warnings = append(s.warnings, overconstraint(e.ID, fmt.Sprintf(
				"child bounds %+v do not fit parent content box %+v", childBox, parentContent)))
		}
	}
}

// cachedMetrics wraps the caller's FontMetrics with the per-render width
// cache and a measurement-failure fallback heuristic, len(text)*fontSize/2,
// recorded as a warning rather than aborting.
type cachedMetrics struct {
	s         *Solver
	elementID string
}

func (c cachedMetrics) WidthOfString(faceID string, sizePt float64, text string) (float64, error) {
	key := fmt.Sprintf("%s|%g|%s", faceID, sizePt, text)
	if v, ok := c.s.widthCache[key]; ok {
		return v, nil
	}
	w, err := c.s.fm.WidthOfString(faceID, sizePt, text)
	if err != nil || math.IsNaN(w) || w < 0 {
		c.s.warnings = append(c.s.warnings, measurementFallback(c.elementID, err))
		w = float64(len([]rune(text))) * sizePt / 2
	}
	c.s.widthCache[key] = w
	return w, nil
}

func (c cachedMetrics) LineHeight(faceID string, sizePt float64) (float64, error) {
	h, err := c.s.fm.LineHeight(faceID, sizePt)
	if err != nil || math.IsNaN(h) || h <= 0 {
		h = sizePt * 1.2
	}
	return h, nil
}
