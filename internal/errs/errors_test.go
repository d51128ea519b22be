package errs_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"textclean/internal/errs"
)

func TestWrapKeepsMarkerAndCause(t *testing.T) {
	err := errs.Wrap(errs.ErrNotFound, "cli", "read input", "open notes.txt", fs.ErrNotExist)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected marker to match, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to match, got %v", err)
	}
	if !strings.Contains(err.Error(), "cli: read input: open notes.txt") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := errs.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, errs.ErrProcessing) {
		t.Fatalf("expected processing marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "text cleaning failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		text   string
	}{
		{"format", &errs.FormatError{Format: "kebab", Supported: []string{"lower", "upper"}}, errs.ErrUnsupportedFormat, "lower, upper"},
		{"language", &errs.LanguageError{Language: "xx", Supported: []string{"pt"}}, errs.ErrUnsupportedLanguage, `"xx"`},
		{"config", &errs.ConfigError{Key: "performance.max_workers", Value: 0, Reason: "must be at least 1"}, errs.ErrConfiguration, "performance.max_workers"},
		{"validation", &errs.ValidationError{Field: "remove_urls", Value: "yes", Expected: "a boolean"}, errs.ErrValidation, "string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Fatalf("expected %v to match %v", tt.err, tt.target)
			}
			if !strings.Contains(tt.err.Error(), tt.text) {
				t.Fatalf("expected %q in %q", tt.text, tt.err.Error())
			}
		})
	}
}
