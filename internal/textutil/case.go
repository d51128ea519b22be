package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"

	"textclean/internal/errs"
)

// CaseMode selects the final case conversion applied by CleanText.
type CaseMode string

const (
	CaseLower  CaseMode = "lower"
	CaseUpper  CaseMode = "upper"
	CaseTitle  CaseMode = "title"
	CaseSnake  CaseMode = "snake"
	CaseCamel  CaseMode = "camel"
	CasePascal CaseMode = "pascal"
)

var caseModes = []CaseMode{CaseLower, CaseUpper, CaseTitle, CaseSnake, CaseCamel, CasePascal}

// CaseModes lists the accepted case mode names in display order.
func CaseModes() []string {
	out := make([]string, len(caseModes))
	for i, m := range caseModes {
		out[i] = string(m)
	}
	return out
}

// Valid reports whether m is one of the known modes. Matching is exact.
func (m CaseMode) Valid() bool {
	for _, known := range caseModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseCaseMode accepts a mode name, ignoring surrounding whitespace and letter case.
func ParseCaseMode(value string) (CaseMode, error) {
	mode := CaseMode(strings.ToLower(strings.TrimSpace(value)))
	if !mode.Valid() {
		return "", unsupportedCase(value)
	}
	return mode, nil
}

// ApplyCase converts already-cleaned text to the requested case.
func ApplyCase(text string, mode CaseMode) (string, error) {
	switch mode {
	case CaseLower:
		return cases.Lower(textlang.Und).String(text), nil
	case CaseUpper:
		return cases.Upper(textlang.Und).String(text), nil
	case CaseTitle:
		return cases.Title(textlang.Und).String(text), nil
	case CaseSnake:
		return ToSnakeCase(text), nil
	case CaseCamel:
		return ToCamelCase(text), nil
	case CasePascal:
		return ToPascalCase(text), nil
	default:
		return "", unsupportedCase(string(mode))
	}
}

// ToSnakeCase strips accents, lowercases, joins words with underscores, and
// drops anything outside [a-z0-9_].
func ToSnakeCase(text string) string {
	text = RemoveAccents(text)
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.Join(strings.Fields(text), "_")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return -1
	}, text)
}

// ToCamelCase keeps the first snake_case component as is and capitalizes the rest.
func ToCamelCase(text string) string {
	components := strings.Split(ToSnakeCase(text), "_")
	var b strings.Builder
	b.WriteString(components[0])
	for _, c := range components[1:] {
		b.WriteString(capitalize(c))
	}
	return b.String()
}

// ToPascalCase capitalizes every snake_case component.
func ToPascalCase(text string) string {
	var b strings.Builder
	for _, c := range strings.Split(ToSnakeCase(text), "_") {
		b.WriteString(capitalize(c))
	}
	return b.String()
}

// capitalize upper-cases the first byte; snake components are ASCII only.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func unsupportedCase(value string) error {
	return &errs.FormatError{Format: value, Supported: CaseModes()}
}
