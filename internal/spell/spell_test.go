package spell_test

import (
	"errors"
	"slices"
	"testing"

	"textclean/internal/errs"
	"textclean/internal/spell"
)

func newChecker(t *testing.T, lang string) *spell.Checker {
	t.Helper()
	c, err := spell.New(lang, nil)
	if err != nil {
		t.Fatalf("New(%q): %v", lang, err)
	}
	return c
}

func TestCheckText(t *testing.T) {
	c := newChecker(t, "pt")

	result := c.CheckText("Olá mundu! Como vai vc?")
	if len(result) != 2 {
		t.Fatalf("expected 2 misspellings, got %v", result)
	}
	if !slices.Contains(result["mundu"], "mundo") {
		t.Fatalf("mundu suggestions = %v", result["mundu"])
	}
	if got := result["vc"]; len(got) == 0 || got[0] != "você" {
		t.Fatalf("vc suggestions = %v", got)
	}
}

func TestCheckTextClean(t *testing.T) {
	c := newChecker(t, "pt")
	for _, text := range []string{"", "Olá mundo! Como vai você?", "em 2023 ou 3x"} {
		if got := c.CheckText(text); len(got) != 0 {
			t.Fatalf("CheckText(%q) = %v, want empty", text, got)
		}
	}
}

func TestCorrectTextKeepsCorrectSentences(t *testing.T) {
	sentences := map[string][]string{
		"pt": {
			"Os gatos comeram a comida ontem.",
			"A cidade estava cheia de carros.",
			"Eu gosto de ler livros à noite.",
			"Nós fomos ao mercado comprar frutas e legumes.",
			"O tempo hoje está bonito e ensolarado.",
			"Ela trabalha em uma escola perto de casa.",
			"As crianças brincaram no parque durante a tarde.",
			"Precisamos terminar o relatório até sexta-feira.",
			"Meu irmão mora em São Paulo há dez anos.",
			"Você pode me ajudar com esta tarefa?",
			"O filme foi muito interessante e emocionante.",
			"Eles viajaram para o Rio de Janeiro nas férias.",
			"A reunião começou às nove horas da manhã.",
			"Obrigado pela sua atenção e paciência.",
		},
		"en": {
			"The cats ate their dinner yesterday.",
			"I like to read books at night.",
			"We went to the market to buy fruit and vegetables.",
			"The weather is nice and sunny today.",
			"She works at a school near her house.",
			"The children played in the park all afternoon.",
			"We need to finish the report by Friday.",
			"My brother has lived in London for ten years.",
			"Can you help me with this task?",
			"The movie was very interesting and exciting.",
			"They traveled to Spain during the summer holidays.",
			"The meeting started at nine o'clock in the morning.",
			"Thank you for your attention and patience.",
			"I don't think it's going to rain.",
		},
	}
	for lang, texts := range sentences {
		c := newChecker(t, lang)
		for _, text := range texts {
			t.Run(lang+"/"+text, func(t *testing.T) {
				if got := c.CorrectText(text); got != text {
					t.Fatalf("CorrectText(%q) = %q, want unchanged", text, got)
				}
				if got := c.CheckText(text); len(got) != 0 {
					t.Fatalf("CheckText(%q) = %v, want empty", text, got)
				}
			})
		}
	}
}

func TestCorrectText(t *testing.T) {
	c := newChecker(t, "pt")
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"capitalization", "Olá Mundu!", "Olá Mundo!"},
		{"abbreviation", "Como vai vc?", "Como vai você?"},
		{"capitalized abbreviation", "Vc vai?", "Você vai?"},
		{"punctuation kept", "Olá, mundu! Como vai?", "Olá, mundo! Como vai?"},
		{"whitespace kept", "olá\t mundu\n", "olá\t mundo\n"},
		{"no errors", "Olá mundo! Como vai você?", "Olá mundo! Como vai você?"},
		{"digits untouched", "mundu 2x", "mundo 2x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CorrectText(tt.in); got != tt.want {
				t.Fatalf("CorrectText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuggestionsAndCorrection(t *testing.T) {
	c := newChecker(t, "pt")
	if got := c.Suggestions("mundu"); !slices.Contains(got, "mundo") {
		t.Fatalf("Suggestions(mundu) = %v", got)
	}
	if got := c.Suggestions("mundo"); !slices.Equal(got, []string{"mundo"}) {
		t.Fatalf("Suggestions(mundo) = %v", got)
	}
	if got := c.Correction("xyzxyzxyz"); got != "xyzxyzxyz" {
		t.Fatalf("word without candidates should be unchanged, got %q", got)
	}
}

func TestEnglishDictionary(t *testing.T) {
	c := newChecker(t, "english")
	if c.Language() != "en" {
		t.Fatalf("Language = %q", c.Language())
	}
	if got := c.CorrectText("Hello wrld"); got != "Hello world" {
		t.Fatalf("CorrectText = %q", got)
	}
	if got := c.CorrectText("The cats ate their dinner yesturday."); got != "The cats ate their dinner yesterday." {
		t.Fatalf("CorrectText = %q", got)
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := spell.New("de", nil)
	var langErr *errs.LanguageError
	if !errors.As(err, &langErr) || !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected LanguageError, got %v", err)
	}
	if !slices.Equal(langErr.Supported, []string{"en", "pt"}) {
		t.Fatalf("Supported = %v", langErr.Supported)
	}
}
