package advanced

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern    = regexp.MustCompile(`\S+@\S+`)
	currencyPattern = regexp.MustCompile(`R\$\s*(\d+(?:\.\d{3})*(?:,\d{2})?)`)

	ordinalReplacer = replacerFor(ordinals)
	abbrPattern     = wordStartPattern(longestFirst(abbreviations))
)

type datePattern struct {
	re     *regexp.Regexp
	layout string
}

var datePatterns = []datePattern{
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "02/01/2006"},
	{regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), "02-01-2006"},
	{regexp.MustCompile(`\d{4}/\d{2}/\d{2}`), "2006/01/02"},
}

const typoPunctuation = ".,!?:;"

// RemoveURLs deletes http(s) and www-prefixed URLs, leaving surrounding spaces.
func RemoveURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

// RemoveEmails deletes any non-space run containing an @.
func RemoveEmails(text string) string {
	return emailPattern.ReplaceAllString(text, "")
}

// NormalizeNumbers spells out ordinals 1º..10º and 1ª..10ª in Portuguese.
func NormalizeNumbers(text string) string {
	return ordinalReplacer.Replace(text)
}

// NormalizeDates rewrites dd/mm/yyyy, dd-mm-yyyy and yyyy/mm/dd dates as
// "25 de dezembro de 2023". Strings that are not real calendar dates are left
// untouched.
func NormalizeDates(text string) string {
	for _, p := range datePatterns {
		text = p.re.ReplaceAllStringFunc(text, func(match string) string {
			date, err := time.Parse(p.layout, match)
			if err != nil {
				return match
			}
			return strconv.Itoa(date.Day()) + " de " + monthsPT[date.Month()-1] + " de " + strconv.Itoa(date.Year())
		})
	}
	return text
}

// NormalizeCurrency rewrites Brazilian real amounts in canonical form:
// "R$1234" becomes "R$ 1.234,00" and "R$ 1.234,56" is left as is.
func NormalizeCurrency(text string) string {
	return currencyPattern.ReplaceAllStringFunc(text, func(match string) string {
		value := currencyPattern.FindStringSubmatch(match)[1]
		integer, cents, _ := strings.Cut(value, ",")
		integer = strings.ReplaceAll(integer, ".", "")
		integer = strings.TrimLeft(integer, "0")
		if integer == "" {
			integer = "0"
		}
		if cents == "" {
			cents = "00"
		}
		return "R$ " + groupThousands(integer) + "," + cents
	})
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// RemoveTypos expands common chat shorthand ("vc", "pq", "tb"...). Words are
// split on whitespace, compared case-insensitively without surrounding
// punctuation, and the punctuation is put back. Output words are joined by
// single spaces.
func RemoveTypos(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		core := strings.Trim(word, typoPunctuation)
		if core == "" {
			continue
		}
		replacement, ok := typos[strings.ToLower(core)]
		if !ok {
			continue
		}
		start := len(word) - len(strings.TrimLeft(word, typoPunctuation))
		words[i] = word[:start] + replacement + word[start+len(core):]
	}
	return strings.Join(words, " ")
}

// RemoveDuplicateText keeps only the first occurrence of every
// whitespace-separated word anywhere in the text, not just adjacent repeats.
func RemoveDuplicateText(text string) string {
	words := strings.Fields(text)
	seen := make(map[string]struct{}, len(words))
	kept := words[:0]
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// NormalizeAbbreviations expands abbreviations such as "Dr." and "etc." when
// they start a word. Matching is case-sensitive.
func NormalizeAbbreviations(text string) string {
	return replaceAtWordStart(text, abbrPattern, abbreviations)
}

// wordStartPattern matches any of keys preceded by the start of text or a
// character that is not a letter or digit. Group 1 holds that boundary.
func wordStartPattern(keys []string) *regexp.Regexp {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`(^|[^\p{L}\p{N}])(` + strings.Join(quoted, "|") + `)`)
}

func replaceAtWordStart(text string, re *regexp.Regexp, table map[string]string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		keyStart, keyEnd := m[4], m[5]
		b.WriteString(text[last:keyStart])
		b.WriteString(table[text[keyStart:keyEnd]])
		last = keyEnd
	}
	b.WriteString(text[last:])
	return b.String()
}

// capitalizeWord upper-cases the first rune and lower-cases the rest.
func capitalizeWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
