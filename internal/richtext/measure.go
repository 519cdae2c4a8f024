package richtext

import "github.com/inkwell-labs/pageflow/internal/ports"

// SelectFace resolves the logical font role a StyledWord renders in: emoji
// wins over style, then bold+italic, bold, italic, and finally regular.
func SelectFace(w StyledWord) ports.FontFace {
	switch {
	case w.IsEmoji:
		return ports.Emoji
	case w.Bold && w.Italic:
		return ports.BoldItalic
	case w.Bold:
		return ports.Bold
	case w.Italic:
		return ports.Italic
	default:
		return ports.Regular
	}
}

// Measure fills in Width and Height for every word in words, in place on a
// copy, consulting fm for advance widths. Every token's height is exactly
// the font size — including emoji, since there is no image-raster height
// model — so FontMetrics.LineHeight never enters
// this computation; it is a separate adapter capability callers may use
// when deriving a TextConfig's line spacing, not a per-token measurement.
func Measure(fm ports.FontMetrics, fonts ports.FontConfig, sizePt float64, words []StyledWord, useImageForEmojis bool) ([]StyledWord, error) {
	out := make([]StyledWord, len(words))

	for i, w := range words {
		out[i] = w
		if w.IsHardBreak {
			out[i].Width = 0
			out[i].Height = sizePt
			continue
		}
		faceID := fonts.Resolve(SelectFace(w))
		width, err := fm.WidthOfString(faceID, sizePt, w.Text)
		if err != nil {
			return nil, err
		}
		out[i].Width = width
		out[i].Height = sizePt
		if w.IsEmoji {
			out[i].UseImageFallback = useImageForEmojis
		}
	}
	return out, nil
}
