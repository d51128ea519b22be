package textutil

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Policies are safe for concurrent use once built.
var stripTags = bluemonday.StripTagsPolicy()

// RemoveHTMLTags strips markup and decodes entities without inserting
// separators, so adjacent text nodes are concatenated as written.
func RemoveHTMLTags(text string) string {
	return html.UnescapeString(stripTags.Sanitize(text))
}

// NormalizeText strips tags, lowercases, drops every non-ASCII character
// after decomposition, removes anything outside [a-z0-9] and whitespace, and
// collapses the remaining whitespace.
func NormalizeText(text string) string {
	text = RemoveHTMLTags(text)
	text = strings.ToLower(text)
	text = toASCII(text)
	text = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	return CleanWhitespace(text)
}

// CleanWhitespace collapses whitespace runs (including newlines) to one space
// and trims the result.
func CleanWhitespace(text string) string {
	return RemoveExtraSpaces(text)
}

// FilterLetters keeps ASCII letters and whitespace, then collapses whitespace.
func FilterLetters(text string) string {
	text = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	return CleanWhitespace(text)
}

// FilterNumbers keeps only the ASCII digits.
func FilterNumbers(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

func toASCII(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
