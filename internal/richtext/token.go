// Package richtext turns a markdown-flavored string into styled, measured,
// and line-wrapped words. It is consumed by the solver during text reflow
// and never imported by callers directly.
package richtext

// StyledWord is one lexical unit produced by Tokenize: a run of plain text,
// a whitespace run, a hard break, or a single emoji cluster — all under a
// uniform bold/italic style.
type StyledWord struct {
	Text         string
	Bold         bool
	Italic       bool
	IsEmoji      bool
	IsWhitespace bool
	IsHardBreak  bool

	// UseImageFallback is set on emoji tokens when the caller opted into
	// image-rendered emoji via WithUseImageForEmojis.
	UseImageFallback bool

	// Width and Height are populated by Measure; zero until then.
	Width  float64
	Height float64
}

// Runs groups a slice of StyledWord into hard-break-delimited paragraphs,
// convenient for callers that want to reflow one paragraph at a time.
func Runs(words []StyledWord) [][]StyledWord {
	var runs [][]StyledWord
	var cur []StyledWord
	for _, w := range words {
		if w.IsHardBreak {
			runs = append(runs, cur)
			cur = nil
			continue
		}
		cur = append(cur, w)
	}
	runs = append(runs, cur)
	return runs
}
