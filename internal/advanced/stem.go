package advanced

import (
	"strings"

	"github.com/kljensen/snowball"

	"textclean/internal/language"
)

const fallbackStemmer = "english"

// snowballLanguages are the stemmers provided by the snowball module.
var snowballLanguages = map[string]bool{
	"english":   true,
	"spanish":   true,
	"french":    true,
	"russian":   true,
	"swedish":   true,
	"norwegian": true,
}

// stemmerName resolves lang ("pt", "por", "portuguese") to the stemmer used
// for it. Languages without a stemmer use the English one.
func stemmerName(lang string) string {
	name := language.Name(lang)
	if name == "portuguese" || snowballLanguages[name] {
		return name
	}
	return fallbackStemmer
}

// stemWord lowercases and stems a single token.
func stemWord(word, stemmer string) string {
	if stemmer == "portuguese" {
		return stemPortuguese(strings.ToLower(word))
	}
	stemmed, err := snowball.Stem(word, stemmer, true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stemmed
}

// StemText stems every whitespace-separated word and joins them with spaces.
func StemText(text, lang string) string {
	stemmer := stemmerName(lang)
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = stemWord(w, stemmer)
	}
	return strings.Join(words, " ")
}

// lemmaTables holds verb-form tables per language. Languages without one use
// the Portuguese table.
var lemmaTables = map[string]map[string]string{
	"portuguese": verbForms,
}

// LemmatizeText maps known verb forms to their infinitive. Surrounding
// punctuation and unknown words are kept; the lookup ignores case.
func LemmatizeText(text, lang string) string {
	table, ok := lemmaTables[language.Name(lang)]
	if !ok {
		table = verbForms
	}
	words := strings.Fields(text)
	for i, word := range words {
		core := strings.Trim(word, typoPunctuation)
		lemma, ok := table[strings.ToLower(core)]
		if !ok {
			continue
		}
		start := len(word) - len(strings.TrimLeft(word, typoPunctuation))
		words[i] = word[:start] + lemma + word[start+len(core):]
	}
	return strings.Join(words, " ")
}
