package textutil_test

import (
	"errors"
	"testing"

	"textclean/internal/errs"
	"textclean/internal/textutil"
)

const legacySample = "<p>Olá, mundo! Este é um exemplo de texto com <b>HTML</b> e stopwords.</p>"

func TestNormalizeText(t *testing.T) {
	got := textutil.NormalizeText(legacySample)
	want := "ola mundo este e um exemplo de texto com html e stopwords"
	if got != want {
		t.Fatalf("NormalizeText = %q, want %q", got, want)
	}
}

func TestRemoveHTMLTags(t *testing.T) {
	got := textutil.RemoveHTMLTags(legacySample)
	want := "Olá, mundo! Este é um exemplo de texto com HTML e stopwords."
	if got != want {
		t.Fatalf("RemoveHTMLTags = %q, want %q", got, want)
	}
	if got := textutil.RemoveHTMLTags("<p>Fish &amp; Chips</p>"); got != "Fish & Chips" {
		t.Fatalf("expected entities decoded, got %q", got)
	}
}

func TestCleanWhitespace(t *testing.T) {
	if got := textutil.CleanWhitespace("  Texto\n\ncom   espaços\t"); got != "Texto com espaços" {
		t.Fatalf("CleanWhitespace = %q", got)
	}
}

func TestFilterLettersAndNumbers(t *testing.T) {
	if got := textutil.FilterLetters("Texto 123 com #caracteres$ %especiais&*"); got != "Texto com caracteres especiais" {
		t.Fatalf("FilterLetters = %q", got)
	}
	if got := textutil.FilterNumbers("Telefone: 123-456-789"); got != "123456789" {
		t.Fatalf("FilterNumbers = %q", got)
	}
	if got := textutil.FilterNumbers("sem números"); got != "" {
		t.Fatalf("FilterNumbers without digits = %q", got)
	}
}

func TestRemoveStopwords(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
		want string
	}{
		{"portuguese name", "Este é um texto simples para teste de stopwords.", "portuguese", "texto simples teste stopwords."},
		{"portuguese code", "Este é um texto simples para teste de stopwords.", "pt", "texto simples teste stopwords."},
		{"english", "This is a quick test of the filter", "english", "quick test filter"},
		{"spanish", "El perro de la casa", "es", "perro casa"},
		{"empty", "", "portuguese", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textutil.RemoveStopwords(tt.text, tt.lang)
			if err != nil {
				t.Fatalf("RemoveStopwords returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("RemoveStopwords = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveStopwordsUnknownLanguage(t *testing.T) {
	_, err := textutil.RemoveStopwords("texto", "klingon")
	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language error, got %v", err)
	}
}

func TestIsStopword(t *testing.T) {
	if !textutil.IsStopword("Para", "pt") {
		t.Fatal("expected 'Para' to be a portuguese stopword")
	}
	if textutil.IsStopword("texto", "pt") {
		t.Fatal("did not expect 'texto' to be a stopword")
	}
	if textutil.IsStopword("the", "xx") {
		t.Fatal("unknown languages have no stopwords")
	}
}
