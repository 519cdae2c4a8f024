package emit

import (
	"github.com/inkwell-labs/pageflow/internal/ports"
	"github.com/inkwell-labs/pageflow/internal/richtext"
)

// Run is a contiguous span of a wrapped line rendered under a single font
// face, splitting wherever the resolved face changes mid-line.
type Run struct {
	Face  ports.FontFace
	Text  string
	Words []richtext.StyledWord
}

// GroupRuns collapses a line's flat token list into face-contiguous runs.
// Whitespace tokens are grouped by the face of their own style like any
// other token, so a whitespace run right after a style toggle opens the
// next run.
func GroupRuns(words []richtext.StyledWord) []Run {
	var runs []Run
	for _, w := range words {
		face := richtext.SelectFace(w)
		if len(runs) == 0 || runs[len(runs)-1].Face != face {
			runs = append(runs, Run{Face: face})
		}
		last := &runs[len(runs)-1]
		last.Words = append(last.Words, w)
		last.Text += w.Text
	}
	return runs
}
