package richtext

// emoji.go approximates Unicode's Emoji_Presentation property with a
// curated range table, plus a small force-emoji set for keycap sequences
// (digit/#/* + U+20E3) and standalone variation-selected symbols
// (base + U+FE0F), the same two cases aleksadvaisly-md2pdf's processor
// special-cases when it decides whether to raster a glyph as an emoji.

const (
	variationSelector15 = 0xFE0E // text presentation
	variationSelector16 = 0xFE0F // emoji presentation
	combiningKeycap     = 0x20E3
	zeroWidthJoiner     = 0x200D
)

// emojiPresentationRanges is not exhaustive; it covers the blocks that
// dominate real documents (emoticons, pictographs, dingbats, transport,
// flags, symbols).
var emojiPresentationRanges = [][2]rune{
	{0x231A, 0x231B},
	{0x23E9, 0x23FA},
	{0x25FD, 0x25FE},
	{0x2600, 0x27BF},
	{0x2B05, 0x2B07},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	{0x2934, 0x2935},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F000, 0x1F0FF},
	{0x1F100, 0x1F1FF}, // includes regional indicators (flags)
	{0x1F200, 0x1F2FF},
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F700, 0x1F77F},
	{0x1F780, 0x1F7FF},
	{0x1F800, 0x1F8FF},
	{0x1F900, 0x1F9FF},
	{0x1FA00, 0x1FA6F},
	{0x1FA70, 0x1FAFF},
}

func isEmojiPresentation(r rune) bool {
	for _, rg := range emojiPresentationRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

func isKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// isEmojiStart reports whether the cluster beginning at runes[i] should be
// tokenized as a single emoji StyledWord.
func isEmojiStart(runes []rune, i int) bool {
	r := runes[i]
	if isEmojiPresentation(r) {
		return true
	}
	if isKeycapBase(r) {
		j := i + 1
		if j < len(runes) && runes[j] == variationSelector16 {
			j++
		}
		return j < len(runes) && runes[j] == combiningKeycap
	}
	// standalone base + explicit emoji-presentation variation selector,
	// e.g. U+2764 U+FE0F ("heavy black heart" forced to emoji style).
	if i+1 < len(runes) && runes[i+1] == variationSelector16 {
		return true
	}
	return false
}

// emojiClusterEnd returns the exclusive end index of the emoji cluster
// starting at i, absorbing trailing variation selectors, the combining
// keycap mark, and simple ZWJ-joined continuations.
func emojiClusterEnd(runes []rune, i int) int {
	j := i + 1
	for j < len(runes) {
		switch runes[j] {
		case variationSelector15, variationSelector16, combiningKeycap:
			j++
			continue
		case zeroWidthJoiner:
			if j+1 < len(runes) && (isEmojiPresentation(runes[j+1]) || runes[j+1] == variationSelector16) {
				j += 2
				continue
			}
		}
		break
	}
	return j
}
