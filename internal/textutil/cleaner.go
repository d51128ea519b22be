package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents decomposes text (NFKD) and drops the combining marks, so "á"
// becomes "a". Compatibility characters are expanded ("ﬁ" becomes "fi").
func RemoveAccents(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// RemoveSpecialCharacters keeps letters, digits, underscores and whitespace.
// Accented letters survive; punctuation, symbols and emoji do not.
func RemoveSpecialCharacters(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

// RemoveHTML extracts the visible text nodes of an HTML fragment. Each node is
// trimmed, empty nodes are dropped, and the rest are joined with one space.
// Script and style bodies are discarded; head text such as the title is kept.
// Plain text passes through trimmed.
func RemoveHTML(text string) string {
	z := html.NewTokenizer(strings.NewReader(text))
	parts := make([]string, 0, 8)
	hidden := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.StartTagToken:
			if name, _ := z.TagName(); isHiddenElement(name) {
				hidden++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isHiddenElement(name) && hidden > 0 {
				hidden--
			}
		case html.TextToken:
			if hidden > 0 {
				continue
			}
			if s := strings.TrimSpace(string(z.Text())); s != "" {
				parts = append(parts, s)
			}
		}
	}
}

func isHiddenElement(name []byte) bool {
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}

// RemoveExtraSpaces collapses every whitespace run to a single space and trims
// both ends.
func RemoveExtraSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanText runs the full basic pipeline: HTML removal, accent removal,
// special-character removal, whitespace collapsing, then case conversion.
// An unknown mode yields an *errs.FormatError listing the accepted modes.
func CleanText(text string, mode CaseMode) (string, error) {
	if !mode.Valid() {
		return "", unsupportedCase(string(mode))
	}
	text = RemoveHTML(text)
	text = RemoveAccents(text)
	text = RemoveSpecialCharacters(text)
	text = RemoveExtraSpaces(text)
	return ApplyCase(text, mode)
}
