package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrConfiguration       = errors.New("configuration error")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNotFound            = errors.New("not found")
	ErrCache               = errors.New("cache error")
	ErrProcessing          = errors.New("processing error")
)

// Wrap builds an error message that names the component and operation while
// tagging it with the provided marker so callers can match it with errors.Is.
// The marker should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProcessing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FormatError reports a format value outside the accepted set.
type FormatError struct {
	Format    string
	Supported []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (supported: %s)", e.Format, strings.Join(e.Supported, ", "))
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }

// LanguageError reports a language with no stopword list, stemmer, or dictionary.
type LanguageError struct {
	Language  string
	Supported []string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: %s)", e.Language, strings.Join(e.Supported, ", "))
}

func (e *LanguageError) Unwrap() error { return ErrUnsupportedLanguage }

// ConfigError identifies the configuration key that failed.
type ConfigError struct {
	Key    string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("%s %s (got %v)", e.Key, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// ValidationError reports an input value of the wrong shape.
type ValidationError struct {
	Field    string
	Value    any
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be %s (got %T)", e.Field, e.Expected, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "text cleaning failure"
	}
	return strings.Join(parts, ": ")
}
