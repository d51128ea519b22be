package advanced

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	ocrReplacer        = strings.NewReplacer("0", "o", "1", "i", "3", "e", "4", "a", "5", "s", "7", "t", "8", "b", "9", "g")
	measurementPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(` + strings.Join(longestFirst(measurementUnits), "|") + `)\b`)
	sentenceBreak      = regexp.MustCompile(`[.!?]`)
)

// RemoveOCRNoise swaps digits commonly produced by OCR for the letters they
// usually stand for ("H3ll0" -> "Hello"). Every digit listed is replaced, so
// only use it on text that should contain no numbers.
func RemoveOCRNoise(text string) string {
	return ocrReplacer.Replace(text)
}

// NormalizeMeasurements spells out metric units that follow a number:
// "5kg" -> "5 quilogramas", "2,5 l" -> "2,5 litros". Units must end at a word
// boundary, so "10 metros" is left alone.
func NormalizeMeasurements(text string) string {
	return measurementPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := measurementPattern.FindStringSubmatch(match)
		return parts[1] + " " + measurementUnits[strings.ToLower(parts[2])]
	})
}

// RemoveDuplicateSentences splits on '.', '!' and '?', keeps the first
// occurrence of each trimmed sentence, and rejoins them with ". ", ending
// with a period. Text without sentences yields "".
func RemoveDuplicateSentences(text string) string {
	seen := make(map[string]struct{})
	unique := make([]string, 0, 8)
	for _, sentence := range sentenceBreak.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if _, dup := seen[sentence]; dup {
			continue
		}
		seen[sentence] = struct{}{}
		unique = append(unique, sentence)
	}
	if len(unique) == 0 {
		return ""
	}
	return strings.Join(unique, ". ") + "."
}

// NormalizeProperNames capitalizes every word, except the connectors
// "da", "de", "do", "das", "dos" and "e" when they sit between two words:
// "joão da silva" -> "João da Silva".
func NormalizeProperNames(text string) string {
	type span struct{ start, end int }
	var words []span
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, span{start, i})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, span{start, len(text)})
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, w := range words {
		b.WriteString(text[last:w.start])
		word := text[w.start:w.end]
		lower := strings.ToLower(word)
		_, connector := nameConnectors[lower]
		between := i > 0 && i < len(words)-1 &&
			isBlank(text[words[i-1].end:w.start]) && isBlank(text[w.end:words[i+1].start])
		if connector && between {
			b.WriteString(lower)
		} else {
			b.WriteString(capitalizeWord(word))
		}
		last = w.end
	}
	b.WriteString(text[last:])
	return b.String()
}

func isBlank(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
