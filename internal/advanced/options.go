package advanced

import (
	"sort"
	"strings"

	"textclean/internal/errs"
)

// Options toggles the steps of CleanAdvanced. The zero value enables nothing.
type Options struct {
	RemoveEmojis           bool
	RemoveURLs             bool
	RemoveEmails           bool
	NormalizeNumbers       bool
	NormalizeDates         bool
	NormalizeCurrency      bool
	RemoveTypos            bool
	RemoveDuplicates       bool
	NormalizeAbbreviations bool
	Stem                   bool
	Lemmatize              bool
}

// DefaultOptions enables every step except stemming and lemmatization.
func DefaultOptions() Options {
	return Options{
		RemoveEmojis:           true,
		RemoveURLs:             true,
		RemoveEmails:           true,
		NormalizeNumbers:       true,
		NormalizeDates:         true,
		NormalizeCurrency:      true,
		RemoveTypos:            true,
		RemoveDuplicates:       true,
		NormalizeAbbreviations: true,
	}
}

func (o *Options) fields() map[string]*bool {
	return map[string]*bool{
		"remove_emojis":           &o.RemoveEmojis,
		"remove_urls":             &o.RemoveURLs,
		"remove_emails":           &o.RemoveEmails,
		"normalize_numbers":       &o.NormalizeNumbers,
		"normalize_dates":         &o.NormalizeDates,
		"normalize_currency":      &o.NormalizeCurrency,
		"remove_typos":            &o.RemoveTypos,
		"remove_duplicates":       &o.RemoveDuplicates,
		"normalize_abbreviations": &o.NormalizeAbbreviations,
		"stem":                    &o.Stem,
		"lemmatize":               &o.Lemmatize,
	}
}

// OptionNames lists the recognized option keys in sorted order.
func OptionNames() []string {
	var o Options
	names := make([]string, 0, 11)
	for name := range o.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set toggles a single option by key.
func (o *Options) Set(name string, value bool) error {
	field, ok := o.fields()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return &errs.ConfigError{Key: name, Reason: "is not a recognized option (known: " + strings.Join(OptionNames(), ", ") + ")"}
	}
	*field = value
	return nil
}

// ParseOptions builds Options from a generic map such as decoded JSON.
// Keys that are absent keep their DefaultOptions value. Unknown keys yield an
// *errs.ConfigError and non-boolean values an *errs.ValidationError.
func ParseOptions(values map[string]any) (Options, error) {
	o := DefaultOptions()
	for name, raw := range values {
		b, ok := raw.(bool)
		if !ok {
			if _, known := o.fields()[strings.ToLower(strings.TrimSpace(name))]; !known {
				return Options{}, &errs.ConfigError{Key: name, Reason: "is not a recognized option"}
			}
			return Options{}, &errs.ValidationError{Field: name, Value: raw, Expected: "a boolean"}
		}
		if err := o.Set(name, b); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

// Key renders the enabled options as a stable string, suitable for cache keys.
func (o Options) Key() string {
	enabled := make([]string, 0, 11)
	for name, field := range o.fields() {
		if *field {
			enabled = append(enabled, name)
		}
	}
	sort.Strings(enabled)
	return strings.Join(enabled, ",")
}
