package advanced

import (
	"log/slog"
	"strings"

	"textclean/internal/language"
	"textclean/internal/logging"
)

// Cleaner runs the configurable advanced pipeline. It holds no mutable state
// after construction and is safe for concurrent use.
type Cleaner struct {
	fallback string
	logger   *slog.Logger
}

// NewCleaner returns a Cleaner that stems and lemmatizes with fallbackLanguage
// whenever detection cannot identify the text. An empty or unsupported
// fallback becomes Portuguese.
func NewCleaner(fallbackLanguage string, logger *slog.Logger) *Cleaner {
	fallback := language.ToISO2(fallbackLanguage)
	if !language.IsSupported(fallback) {
		fallback = "pt"
	}
	return &Cleaner{
		fallback: fallback,
		logger:   logging.NewComponentLogger(logger, "advanced"),
	}
}

// FallbackLanguage reports the ISO 639-1 code used when detection fails.
func (c *Cleaner) FallbackLanguage() string {
	return c.fallback
}

// DetectLanguage returns the ISO 639-1 code of text, or language.Unknown.
func (c *Cleaner) DetectLanguage(text string) string {
	return language.Detect(text)
}

// StemText stems text with the stemmer for lang.
func (c *Cleaner) StemText(text, lang string) string {
	return StemText(text, lang)
}

// LemmatizeText maps known verb forms in text to their infinitive.
func (c *Cleaner) LemmatizeText(text, lang string) string {
	return LemmatizeText(text, lang)
}

type step struct {
	name    string
	enabled func(Options) bool
	apply   func(string) string
}

var steps = []step{
	{"remove_emojis", func(o Options) bool { return o.RemoveEmojis }, RemoveEmojis},
	{"remove_urls", func(o Options) bool { return o.RemoveURLs }, RemoveURLs},
	{"remove_emails", func(o Options) bool { return o.RemoveEmails }, RemoveEmails},
	{"remove_typos", func(o Options) bool { return o.RemoveTypos }, RemoveTypos},
	{"normalize_numbers", func(o Options) bool { return o.NormalizeNumbers }, NormalizeNumbers},
	{"normalize_dates", func(o Options) bool { return o.NormalizeDates }, NormalizeDates},
	{"normalize_currency", func(o Options) bool { return o.NormalizeCurrency }, NormalizeCurrency},
	{"remove_duplicates", func(o Options) bool { return o.RemoveDuplicates }, RemoveDuplicateText},
	{"normalize_abbreviations", func(o Options) bool { return o.NormalizeAbbreviations }, NormalizeAbbreviations},
}

// CleanAdvanced applies the enabled steps in a fixed order: emojis, URLs,
// emails, typos, ordinals, dates, currency, duplicate words, abbreviations,
// then stemming and lemmatization. The language is detected only when one of
// the last two is enabled.
func (c *Cleaner) CleanAdvanced(text string, opts Options) string {
	return c.CleanAdvancedIn(text, opts, "")
}

// CleanAdvancedIn is CleanAdvanced with the stemming and lemmatization
// language fixed to lang. An empty lang detects it from the cleaned text.
func (c *Cleaner) CleanAdvancedIn(text string, opts Options, lang string) string {
	applied := make([]string, 0, len(steps)+2)
	for _, s := range steps {
		if s.enabled(opts) {
			text = s.apply(text)
			applied = append(applied, s.name)
		}
	}

	if opts.Stem || opts.Lemmatize {
		if lang == "" {
			lang = c.resolveLanguage(text)
		}
		if opts.Stem {
			text = StemText(text, lang)
			applied = append(applied, "stem")
		}
		if opts.Lemmatize {
			text = LemmatizeText(text, lang)
			applied = append(applied, "lemmatize")
		}
	}

	c.logger.Debug("advanced cleaning applied",
		logging.String("steps", strings.Join(applied, ",")),
		logging.Int("output_length", len([]rune(text))),
	)
	return text
}

// resolveLanguage detects the language of text, falling back to the
// configured language when detection is inconclusive.
func (c *Cleaner) resolveLanguage(text string) string {
	lang := language.Detect(text)
	if lang == language.Unknown {
		c.logger.Debug("language detection inconclusive",
			logging.String(logging.FieldLanguage, c.fallback),
		)
		return c.fallback
	}
	return lang
}
