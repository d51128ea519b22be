package advanced

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	variationSelector16 = '\uFE0F'
	keycapCombiner      = '\u20E3'
)

// RemoveEmojis drops every grapheme cluster that renders as an emoji,
// including ZWJ sequences, flags, keycaps and skin-tone variants. All other
// text, whitespace included, is kept byte for byte.
func RemoveEmojis(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if isEmojiCluster(gr.Runes()) {
			continue
		}
		b.WriteString(gr.Str())
	}
	return b.String()
}

func isEmojiCluster(cluster []rune) bool {
	if len(cluster) == 0 {
		return false
	}
	if isPictographic(cluster[0]) {
		return true
	}
	for _, r := range cluster[1:] {
		switch r {
		case variationSelector16, keycapCombiner:
			return true
		}
	}
	return false
}

// isPictographic reports whether r has the Extended_Pictographic property.
// Several of these (©, ®, ™, ↔, ▪) also appear in plain text and are
// removed whether or not a variation selector follows.
func isPictographic(r rune) bool {
	switch {
	case r == 0x00A9, r == 0x00AE, r == 0x203C, r == 0x2049, r == 0x2122, r == 0x2139:
		return true
	case r >= 0x2194 && r <= 0x2199, r == 0x21A9, r == 0x21AA:
		return true
	case r == 0x2388, r == 0x24C2, r == 0x25AA, r == 0x25AB, r == 0x25B6, r == 0x25C0:
		return true
	case r >= 0x25FB && r <= 0x25FE:
		return true
	case r >= 0x1F000 && r <= 0x1FAFF: // mahjong through symbols & pictographs extended-A, flags, modifiers
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2B05 && r <= 0x2B07, r == 0x2B1B, r == 0x2B1C, r == 0x2B50, r == 0x2B55:
		return true
	case r == 0x231A, r == 0x231B, r == 0x2328, r == 0x23CF:
		return true
	case r >= 0x23E9 && r <= 0x23F3, r >= 0x23F8 && r <= 0x23FA:
		return true
	case r == 0x3030, r == 0x303D, r == 0x3297, r == 0x3299:
		return true
	case r >= 0xE0020 && r <= 0xE007F: // tag sequences
		return true
	}
	return false
}
