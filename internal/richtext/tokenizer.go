package richtext

import "unicode"

// Tokenize lexes a markdown-flavored string into StyledWords: "**" toggles
// bold, a lone "*" toggles italic, both are consumed and never appear in
// emitted text, "\n" splits a hard break, runs of horizontal whitespace
// become their own token, and any rune
// (or short combining sequence) matching the emoji heuristic becomes a
// standalone emoji token. Converting s to []rune already replaces
// malformed UTF-8 with the Unicode replacement character, so no separate
// validation pass is needed.
func Tokenize(s string) []StyledWord {
	runes := []rune(s)
	var tokens []StyledWord
	var buf []rune
	var bold, italic bool

	flush := func() {
		if len(buf) == 0 {
			return
		}
		tokens = append(tokens, StyledWord{Text: string(buf), Bold: bold, Italic: italic})
		buf = buf[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\n':
			flush()
			tokens = append(tokens, StyledWord{Text: "\n", Bold: bold, Italic: italic, IsHardBreak: true})
		case r == '*':
			flush()
			if i+1 < len(runes) && runes[i+1] == '*' {
				bold = !bold
				i++
			} else {
				italic = !italic
			}
		case isHorizontalSpace(r):
			flush()
			j := i
			for j < len(runes) && isHorizontalSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, StyledWord{Text: string(runes[i:j]), Bold: bold, Italic: italic, IsWhitespace: true})
			i = j - 1
		case isEmojiStart(runes, i):
			flush()
			end := emojiClusterEnd(runes, i)
			tokens = append(tokens, StyledWord{Text: string(runes[i:end]), Bold: bold, Italic: italic, IsEmoji: true})
			i = end - 1
		default:
			buf = append(buf, r)
		}
	}
	flush()
	return tokens
}

func isHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// StripMarkers reconstructs the literal text a rendered document would
// show for s: every toggle marker consumed, hard breaks kept as "\n".
func StripMarkers(s string) string {
	var out []rune
	for _, w := range Tokenize(s) {
		out = append(out, []rune(w.Text)...)
	}
	return string(out)
}
