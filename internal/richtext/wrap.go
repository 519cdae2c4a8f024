package richtext

// Line is one wrapped line of measured StyledWords. Width is the visible
// content width — trailing whitespace on the line is kept in Words (so the
// original text can be reconstructed) but excluded from
// Width, matching how the teacher's greedyWrapTokens reports line extents
// for alignment purposes.
type Line struct {
	Words  []StyledWord
	Width  float64
	Height float64
}

// Wrap greedily packs measured words into lines no wider than maxWidth.
// Hard breaks always start a new line. A single word wider than maxWidth is
// placed alone on its own line rather than split.
func Wrap(words []StyledWord, maxWidth float64) []Line {
	var lines []Line
	var cur []StyledWord
	var rawWidth, contentWidth float64

	finalize := func() {
		lines = append(lines, makeLine(cur, contentWidth))
		cur = nil
		rawWidth = 0
		contentWidth = 0
	}

	for _, t := range words {
		switch {
		case t.IsHardBreak:
			finalize()
		case t.IsWhitespace:
			cur = append(cur, t)
			rawWidth += t.Width
		default:
			hasWord := contentWidth > 0
			projected := rawWidth + t.Width
			if hasWord && projected >= maxWidth {
				finalize()
				rawWidth = 0
			}
			cur = append(cur, t)
			rawWidth += t.Width
			contentWidth = rawWidth
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		finalize()
	}
	return lines
}

func makeLine(words []StyledWord, contentWidth float64) Line {
	line := Line{Words: append([]StyledWord(nil), words...), Width: contentWidth}
	for _, w := range words {
		if w.Height > line.Height {
			line.Height = w.Height
		}
	}
	return line
}
