package richtext

import "testing"

func measuredWords(t *testing.T, s string, sizePt float64) []StyledWord {
	t.Helper()
	words, err := Measure(fixedMetrics{}, testFonts, sizePt, Tokenize(s), true)
	if err != nil {
		t.Fatalf("Measure error: %v", err)
	}
	return words
}

func TestWrapBreaksOnWidth(t *testing.T) {
	// fixedMetrics: 6pt/char. "aaaa bbbb cccc" -> each word 24pt, space 6pt.
	words := measuredWords(t, "aaaa bbbb cccc", 10)
	lines := Wrap(words, 30)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines at width 30, got %d: %+v", len(lines), lines)
	}
	for i, l := range lines {
		if l.Width > 30 {
			t.Fatalf("line %d width %v exceeds max 30", i, l.Width)
		}
	}
}

func TestWrapHonorsHardBreak(t *testing.T) {
	words := measuredWords(t, "one\ntwo", 10)
	lines := Wrap(words, 1000)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines from hard break, got %d: %+v", len(lines), lines)
	}
}

func TestWrapOversizedWordNotSplit(t *testing.T) {
	words := measuredWords(t, "supercalifragilisticexpialidocious short", 10)
	lines := Wrap(words, 30)
	if len(lines) == 0 {
		t.Fatalf("expected at least one line")
	}
	// the oversized word must appear whole, on a line by itself.
	found := false
	for _, l := range lines {
		for _, w := range l.Words {
			if w.Text == "supercalifragilisticexpialidocious" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected the oversized word to survive intact across lines: %+v", lines)
	}
}

func TestWrapConservesWords(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		sizePt   float64
		maxWidth float64
	}{
		{"exact-boundary", "ab cd ef", 6, 30},
		{"generous-width", "the quick brown fox jumps", 10, 1000},
		{"tight-width", "aaaa bbbb cccc dddd", 10, 25},
		{"hard-breaks", "one\ntwo\n\nthree", 10, 1000},
		{"oversized-word", "supercalifragilisticexpialidocious short words here", 10, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			words := measuredWords(t, tc.text, tc.sizePt)
			lines := Wrap(words, tc.maxWidth)

			var want []StyledWord
			for _, w := range words {
				if !w.IsHardBreak {
					want = append(want, w)
				}
			}
			var got []StyledWord
			for _, l := range lines {
				got = append(got, l.Words...)
			}
			// Hard breaks only trigger a new line; they carry no visible
			// text and never appear inside a Line's own Words.
			if len(got) != len(want) {
				t.Fatalf("word count changed: got %d, want %d (input %+v, output %+v)", len(got), len(want), want, got)
			}
			for i := range want {
				if got[i].Text != want[i].Text {
					t.Fatalf("word %d text mismatch: got %q, want %q", i, got[i].Text, want[i].Text)
				}
			}
		})
	}
}

func TestWrapIsIdempotentAtOwnWidth(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		sizePt   float64
		maxWidth float64
	}{
		{"exact-boundary", "ab cd ef", 6, 30},
		{"generous-width", "the quick brown fox jumps", 10, 1000},
		{"tight-width", "aaaa bbbb cccc dddd", 10, 25},
		{"oversized-word", "supercalifragilisticexpialidocious short", 10, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			words := measuredWords(t, tc.text, tc.sizePt)
			lines := Wrap(words, tc.maxWidth)
			for i, l := range lines {
				rewrapped := Wrap(l.Words, l.Width)
				if len(rewrapped) != 1 {
					t.Fatalf("line %d: re-wrapping at its own width %v produced %d lines, want 1: %+v", i, l.Width, len(rewrapped), rewrapped)
				}
				again := rewrapped[0]
				if again.Width != l.Width {
					t.Fatalf("line %d: re-wrap width %v, want %v", i, again.Width, l.Width)
				}
				if len(again.Words) != len(l.Words) {
					t.Fatalf("line %d: re-wrap produced %d words, want %d", i, len(again.Words), len(l.Words))
				}
				for j := range l.Words {
					if again.Words[j].Text != l.Words[j].Text {
						t.Fatalf("line %d word %d: re-wrap text %q, want %q", i, j, again.Words[j].Text, l.Words[j].Text)
					}
				}
			}
		})
	}
}

func TestWrapTrailingWhitespaceExcludedFromWidthButKept(t *testing.T) {
	words := measuredWords(t, "foo   ", 10)
	lines := Wrap(words, 1000)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Width != 18 { // "foo" = 3 runes * 6pt
		t.Fatalf("line width = %v, want 18 (trailing whitespace excluded)", line.Width)
	}
	joined := ""
	for _, w := range line.Words {
		joined += w.Text
	}
	if joined != "foo   " {
		t.Fatalf("expected trailing whitespace kept in token stream, got %q", joined)
	}
}
