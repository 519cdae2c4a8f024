package richtext

import (
	"testing"

	"github.com/inkwell-labs/pageflow/internal/ports"
)

// fixedMetrics is a deterministic fake: every glyph is 6pt wide regardless
// of face, and line height is always 1.2x the size.
type fixedMetrics struct{}

func (fixedMetrics) WidthOfString(faceID string, sizePt float64, text string) (float64, error) {
	return float64(len([]rune(text))) * 6, nil
}

func (fixedMetrics) LineHeight(faceID string, sizePt float64) (float64, error) {
	return sizePt * 1.2, nil
}

var testFonts = ports.FontConfig{
	Regular:    "regular",
	Bold:       "bold",
	Italic:     "italic",
	BoldItalic: "boldItalic",
}

func TestSelectFace(t *testing.T) {
	cases := []struct {
		w    StyledWord
		want ports.FontFace
	}{
		{StyledWord{}, ports.Regular},
		{StyledWord{Bold: true}, ports.Bold},
		{StyledWord{Italic: true}, ports.Italic},
		{StyledWord{Bold: true, Italic: true}, ports.BoldItalic},
		{StyledWord{IsEmoji: true, Bold: true}, ports.Emoji},
	}
	for _, c := range cases {
		if got := SelectFace(c.w); got != c.want {
			t.Fatalf("SelectFace(%+v) = %v, want %v", c.w, got, c.want)
		}
	}
}

func TestMeasureWidthsAndHeights(t *testing.T) {
	words := Tokenize("hi \U0001F600")
	measured, err := Measure(fixedMetrics{}, testFonts, 10, words, true)
	if err != nil {
		t.Fatalf("Measure error: %v", err)
	}
	for _, w := range measured {
		if w.IsEmoji {
			if w.Height != 10 {
				t.Fatalf("emoji height = %v, want fontSize 10", w.Height)
			}
			continue
		}
		if !w.IsHardBreak && w.Width <= 0 && w.Text != "" {
			t.Fatalf("word %+v has non-positive width", w)
		}
	}
}

func TestMeasureHardBreakZeroWidth(t *testing.T) {
	words := Tokenize("a\nb")
	measured, err := Measure(fixedMetrics{}, testFonts, 12, words, true)
	if err != nil {
		t.Fatalf("Measure error: %v", err)
	}
	for _, w := range measured {
		if w.IsHardBreak && w.Width != 0 {
			t.Fatalf("hard break width = %v, want 0", w.Width)
		}
	}
}
