package spell

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"textclean/internal/errs"
	"textclean/internal/language"
	"textclean/internal/logging"
)

//go:embed dictionaries/*.txt
var dictionaryFS embed.FS

// maxDistance bounds the edit distance of suggested corrections.
const maxDistance = 2

var (
	wordPattern  = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]|\s+`)
)

// abbreviations are chat shorthands expanded before any dictionary lookup.
var abbreviations = map[string]string{
	"vc":   "você",
	"tb":   "também",
	"tbm":  "também",
	"pq":   "porque",
	"q":    "que",
	"td":   "tudo",
	"vlw":  "valeu",
	"blz":  "beleza",
	"pfv":  "por favor",
	"pf":   "por favor",
	"obg":  "obrigado",
	"obgd": "obrigado",
	"tks":  "thanks",
	"thx":  "thanks",
	"pls":  "please",
	"ty":   "thank you",
}

// Checker flags and corrects words against an embedded frequency dictionary.
// It is read-only after construction and safe for concurrent use.
type Checker struct {
	lang   string
	freq   map[string]int
	byLen  map[int][]string
	logger *slog.Logger
}

// Languages lists the ISO 639-1 codes with a bundled dictionary.
func Languages() []string {
	entries, err := dictionaryFS.ReadDir("dictionaries")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(out)
	return out
}

// New loads the dictionary for lang ("pt", "en" or any alias the language
// package recognizes). Languages without a dictionary yield an
// *errs.LanguageError.
func New(lang string, logger *slog.Logger) (*Checker, error) {
	code := language.ToISO2(lang)
	f, err := dictionaryFS.Open("dictionaries/" + code + ".txt")
	if code == "" || err != nil {
		return nil, &errs.LanguageError{Language: lang, Supported: Languages()}
	}
	defer f.Close()

	c := &Checker{
		lang:   code,
		freq:   make(map[string]int, 1<<16),
		byLen:  make(map[int][]string),
		logger: logging.NewComponentLogger(logger, "spell"),
	}
	if err := c.load(f); err != nil {
		return nil, errs.Wrap(errs.ErrConfiguration, "spell", "load dictionary", code, err)
	}
	c.logger.Debug("dictionary loaded",
		logging.String(logging.FieldLanguage, code),
		logging.Int("words", len(c.freq)),
	)
	return c, nil
}

// load reads "word count" lines; '#' starts a comment and a missing count
// means 1.
func (c *Checker) load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		count := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: invalid count %q", line, fields[1])
			}
			count = n
		}
		word := strings.ToLower(fields[0])
		if _, exists := c.freq[word]; !exists {
			n := utf8.RuneCountInString(word)
			c.byLen[n] = append(c.byLen[n], word)
		}
		c.freq[word] += count
	}
	return scanner.Err()
}

// Language reports the ISO 639-1 code of the loaded dictionary.
func (c *Checker) Language() string { return c.lang }

// Known reports whether word is in the dictionary, ignoring case.
func (c *Checker) Known(word string) bool {
	_, ok := c.freq[strings.ToLower(word)]
	return ok
}

// CheckText returns every distinct lowercased word of text that is not in
// the dictionary, mapped to its candidate corrections. Words containing
// digits are ignored.
func (c *Checker) CheckText(text string) map[string][]string {
	result := make(map[string][]string)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, done := result[word]; done || hasDigit(word) || c.Known(word) {
			continue
		}
		result[word] = c.Suggestions(word)
	}
	return result
}

// CorrectText rewrites misspelled words in place. Punctuation and whitespace
// are kept exactly, and a capitalized word stays capitalized.
func (c *Checker) CorrectText(text string) string {
	if text == "" {
		return text
	}
	tokens := tokenPattern.FindAllString(text, -1)
	var b strings.Builder
	b.Grow(len(text))
	corrected := 0
	for _, tok := range tokens {
		if !wordPattern.MatchString(tok) || hasDigit(tok) {
			b.WriteString(tok)
			continue
		}
		fixed := c.Correction(tok)
		if first, _ := utf8.DecodeRuneInString(tok); unicode.IsUpper(first) {
			fixed = capitalize(fixed)
		}
		if fixed != tok {
			corrected++
		}
		b.WriteString(fixed)
	}
	if corrected > 0 {
		c.logger.Debug("text corrected", logging.Int("corrections", corrected))
	}
	return b.String()
}

// Correction returns the most likely spelling of word: the abbreviation
// expansion when there is one, word itself when it is known, otherwise the
// best candidate. A word with no candidate is returned unchanged.
func (c *Checker) Correction(word string) string {
	lower := strings.ToLower(word)
	if expansion, ok := abbreviations[lower]; ok {
		return expansion
	}
	if c.Known(lower) {
		return word
	}
	if candidates := c.candidates(lower); len(candidates) > 0 {
		return candidates[0]
	}
	return word
}

// Suggestions lists possible corrections for word, most likely first. A
// known word suggests itself.
func (c *Checker) Suggestions(word string) []string {
	lower := strings.ToLower(word)
	if c.Known(lower) {
		return []string{lower}
	}
	out := c.candidates(lower)
	if expansion, ok := abbreviations[lower]; ok {
		out = append([]string{expansion}, without(out, expansion)...)
	}
	return out
}

// candidates returns dictionary words at edit distance 1, or 2 when there
// are none at 1, ordered by frequency and then alphabetically.
func (c *Checker) candidates(word string) []string {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return nil
	}
	byDistance := make([][]string, maxDistance+1)
	for l := n - maxDistance; l <= n+maxDistance; l++ {
		for _, known := range c.byLen[l] {
			d := levenshtein.ComputeDistance(word, known)
			if d >= 1 && d <= maxDistance {
				byDistance[d] = append(byDistance[d], known)
			}
		}
	}
	for d := 1; d <= maxDistance; d++ {
		if found := byDistance[d]; len(found) > 0 {
			sort.Slice(found, func(i, j int) bool {
				if c.freq[found[i]] != c.freq[found[j]] {
					return c.freq[found[i]] > c.freq[found[j]]
				}
				return found[i] < found[j]
			})
			return found
		}
	}
	return nil
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func without(list []string, drop string) []string {
	out := list[:0:0]
	for _, s := range list {
		if s != drop {
			out = append(out, s)
		}
	}
	return out
}
