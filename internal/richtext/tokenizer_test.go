package richtext

import "testing"

func TestTokenizeBoldItalicToggles(t *testing.T) {
	words := Tokenize("plain **bold** and *italic* end")
	var got []StyledWord
	for _, w := range words {
		if !w.IsWhitespace {
			got = append(got, w)
		}
	}
	want := []struct {
		text          string
		bold, italic bool
	}{
		{"plain", false, false},
		{"bold", true, false},
		{"and", false, false},
		{"italic", false, true},
		{"end", false, false},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d non-whitespace tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Text != w.text || got[i].Bold != w.bold || got[i].Italic != w.italic {
			t.Fatalf("token %d = %+v, want text=%q bold=%v italic=%v", i, got[i], w.text, w.bold, w.italic)
		}
	}
}

func TestTokenizeUnclosedToggleStillStripped(t *testing.T) {
	words := Tokenize("*never closed")
	if len(words) != 3 {
		t.Fatalf("expected 3 tokens (word, whitespace, word), got %d: %+v", len(words), words)
	}
	joined := ""
	for _, w := range words {
		joined += w.Text
	}
	if joined != "never closed" {
		t.Fatalf("joined text = %q, want %q", joined, "never closed")
	}
	if !words[0].Italic {
		t.Fatalf("expected italic to remain toggled on for trailing text")
	}
}

func TestTokenizeHardBreak(t *testing.T) {
	words := Tokenize("line one\nline two")
	var breaks int
	for _, w := range words {
		if w.IsHardBreak {
			breaks++
		}
	}
	if breaks != 1 {
		t.Fatalf("expected exactly 1 hard break, got %d", breaks)
	}
}

func TestTokenizeEmoji(t *testing.T) {
	words := Tokenize("hi \U0001F600 there")
	found := false
	for _, w := range words {
		if w.IsEmoji {
			found = true
			if w.Text != "\U0001F600" {
				t.Fatalf("emoji token text = %q", w.Text)
			}
		}
	}
	if !found {
		t.Fatalf("expected an emoji token in %+v", words)
	}
}

func TestTokenizeKeycapSequence(t *testing.T) {
	words := Tokenize("press 1️⃣ now")
	found := false
	for _, w := range words {
		if w.IsEmoji && w.Text == "1️⃣" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected keycap sequence tokenized as single emoji token, got %+v", words)
	}
}

func TestStripMarkersRoundTrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"**bold** plain *italic*", "bold plain italic"},
		{"no markers at all", "no markers at all"},
		{"*unterminated", "unterminated"},
		{"nested **bold *italic* still bold** tail", "nested bold italic still bold tail"},
	}
	for _, c := range cases {
		got := StripMarkers(c.in)
		if len(got) == 0 && len(c.in) > 0 {
			t.Fatalf("StripMarkers(%q) produced empty output", c.in)
		}
		if got != c.want {
			t.Fatalf("StripMarkers(%q) = %q, want %q", c.in, got, c.want)
		}
		if again := StripMarkers(got); again != got {
			t.Fatalf("StripMarkers(%q) = %q, want stripped text unchanged %q", got, again, got)
		}
	}
}
