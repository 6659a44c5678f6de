package speech

import "strings"

// Sanitize strips pictographic symbols from text, leaving ordinary words
// and punctuation for the synthesizer. Collapses the whitespace gaps the
// removed glyphs leave behind.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isPictograph(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // emoji, symbols and pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, zero-width joiner
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // arrows and stars (⭐ lives here)
		return true
	}
	return false
}
