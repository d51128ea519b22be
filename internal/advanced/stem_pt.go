package advanced

import (
	"sort"
	"strings"
)

// Portuguese Snowball stemmer. The snowball module ships no Portuguese
// stemmer, so the algorithm from snowballstem.org is implemented here on
// lowercase rune slices.

const ptVowels = "aeiouáéíóúâêô"

var ptStandardSuffixes = sortedByLength([]string{
	"eza", "ezas", "ico", "ica", "icos", "icas", "ismo", "ismos", "ável", "ível", "ista", "istas",
	"oso", "osa", "osos", "osas", "amento", "amentos", "imento", "imentos", "adora", "ador", "aça~o",
	"adoras", "adores", "aço~es", "ante", "antes", "ância",
	"logia", "logias",
	"uça~o", "uço~es",
	"ência", "ências",
	"amente",
	"mente",
	"idade", "idades",
	"iva", "ivo", "ivas", "ivos",
	"ira", "iras",
})

var ptVerbSuffixes = sortedByLength([]string{
	"ada", "ida", "ia", "aria", "eria", "iria", "ará", "ara", "erá", "era", "irá", "ava", "asse",
	"esse", "isse", "aste", "este", "iste", "ei", "arei", "erei", "irei", "am", "iam", "ariam",
	"eriam", "iriam", "aram", "eram", "iram", "avam", "em", "arem", "erem", "irem", "assem",
	"essem", "issem", "ado", "ido", "ando", "endo", "indo", "ara~o", "era~o", "ira~o", "ar", "er",
	"ir", "as", "adas", "idas", "ias", "arias", "erias", "irias", "arás", "aras", "erás", "eras",
	"irás", "avas", "es", "ardes", "erdes", "irdes", "ares", "eres", "ires", "asses", "esses",
	"isses", "astes", "estes", "istes", "is", "ais", "eis", "íeis", "aríeis", "eríeis", "iríeis",
	"áreis", "areis", "éreis", "ereis", "íreis", "ireis", "ásseis", "ésseis", "ísseis", "áveis",
	"ados", "idos", "ámos", "amos", "íamos", "aríamos", "eríamos", "iríamos", "áramos", "éramos",
	"íramos", "ávamos", "emos", "aremos", "eremos", "iremos", "ássemos", "êssemos", "íssemos",
	"imos", "armos", "ermos", "irmos", "eu", "iu", "ou", "ira", "iras",
})

var ptResidualSuffixes = sortedByLength([]string{"os", "a", "i", "o", "á", "í", "ó"})

func sortedByLength(suffixes []string) [][]rune {
	out := make([][]rune, len(suffixes))
	for i, s := range suffixes {
		out[i] = []rune(s)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

type ptWord struct {
	w          []rune
	rv, r1, r2 int
}

func isPtVowel(r rune) bool { return strings.ContainsRune(ptVowels, r) }

func stemPortuguese(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	word = strings.NewReplacer("ã", "a~", "õ", "o~").Replace(word)
	pw := &ptWord{w: []rune(word)}
	pw.markRegions()

	changed := pw.standardSuffix()
	if !changed {
		changed = pw.verbSuffix()
	}
	if changed {
		if pw.endsWith("i") && pw.inRV(len(pw.w)-1) && pw.precededBy(1, "c") {
			pw.w = pw.w[:len(pw.w)-1]
		}
	} else {
		pw.residualSuffix()
	}
	pw.residualForm()

	return strings.NewReplacer("a~", "ã", "o~", "õ").Replace(string(pw.w))
}

func (p *ptWord) markRegions() {
	n := len(p.w)
	p.rv, p.r1, p.r2 = n, n, n

	if n >= 2 {
		switch {
		case !isPtVowel(p.w[1]):
			for i := 2; i < n; i++ {
				if isPtVowel(p.w[i]) {
					p.rv = i + 1
					break
				}
			}
		case isPtVowel(p.w[0]) && isPtVowel(p.w[1]):
			for i := 2; i < n; i++ {
				if !isPtVowel(p.w[i]) {
					p.rv = i + 1
					break
				}
			}
		default:
			p.rv = 3
		}
	}
	if p.rv > n {
		p.rv = n
	}

	p.r1 = regionAfterVC(p.w, 0)
	p.r2 = regionAfterVC(p.w, p.r1)
}

// regionAfterVC returns the index after the first non-vowel that follows a
// vowel, searching from start.
func regionAfterVC(w []rune, start int) int {
	for i := start + 1; i < len(w); i++ {
		if !isPtVowel(w[i]) && isPtVowel(w[i-1]) {
			return i + 1
		}
	}
	return len(w)
}

func (p *ptWord) endsWith(suffix string) bool {
	return hasRuneSuffix(p.w, []rune(suffix))
}

func hasRuneSuffix(w, suffix []rune) bool {
	if len(suffix) > len(w) {
		return false
	}
	off := len(w) - len(suffix)
	for i, r := range suffix {
		if w[off+i] != r {
			return false
		}
	}
	return true
}

func (p *ptWord) inRV(idx int) bool { return idx >= p.rv }
func (p *ptWord) inR1(idx int) bool { return idx >= p.r1 }
func (p *ptWord) inR2(idx int) bool { return idx >= p.r2 }

// precededBy reports whether the runes just before the final n runes equal s.
func (p *ptWord) precededBy(n int, s string) bool {
	return hasRuneSuffix(p.w[:len(p.w)-n], []rune(s))
}

func (p *ptWord) cut(n int) { p.w = p.w[:len(p.w)-n] }

func (p *ptWord) replaceSuffix(n int, with string) {
	p.w = append(p.w[:len(p.w)-n], []rune(with)...)
}

func longestSuffix(w []rune, suffixes [][]rune) []rune {
	for _, s := range suffixes {
		if hasRuneSuffix(w, s) {
			return s
		}
	}
	return nil
}

func (p *ptWord) standardSuffix() bool {
	s := longestSuffix(p.w, ptStandardSuffixes)
	if s == nil {
		return false
	}
	n := len(s)
	start := len(p.w) - n
	switch string(s) {
	case "logia", "logias":
		if !p.inR2(start) {
			return false
		}
		p.replaceSuffix(n, "log")
	case "uça~o", "uço~es":
		if !p.inR2(start) {
			return false
		}
		p.replaceSuffix(n, "u")
	case "ência", "ências":
		if !p.inR2(start) {
			return false
		}
		p.replaceSuffix(n, "ente")
	case "amente":
		if !p.inR1(start) {
			return false
		}
		p.cut(n)
		switch {
		case p.endsWith("iv") && p.inR2(len(p.w)-2):
			p.cut(2)
			if p.endsWith("at") && p.inR2(len(p.w)-2) {
				p.cut(2)
			}
		case (p.endsWith("os") || p.endsWith("ic") || p.endsWith("ad")) && p.inR2(len(p.w)-2):
			p.cut(2)
		}
	case "mente":
		if !p.inR2(start) {
			return false
		}
		p.cut(n)
		for _, pre := range []string{"ante", "avel", "ível"} {
			if p.endsWith(pre) && p.inR2(len(p.w)-len([]rune(pre))) {
				p.cut(len([]rune(pre)))
				break
			}
		}
	case "idade", "idades":
		if !p.inR2(start) {
			return false
		}
		p.cut(n)
		for _, pre := range []string{"abil", "ic", "iv"} {
			if p.endsWith(pre) && p.inR2(len(p.w)-len([]rune(pre))) {
				p.cut(len([]rune(pre)))
				break
			}
		}
	case "iva", "ivo", "ivas", "ivos":
		if !p.inR2(start) {
			return false
		}
		p.cut(n)
		if p.endsWith("at") && p.inR2(len(p.w)-2) {
			p.cut(2)
		}
	case "ira", "iras":
		if !p.inRV(start) || !p.precededBy(n, "e") {
			return false
		}
		p.replaceSuffix(n, "ir")
	default:
		if !p.inR2(start) {
			return false
		}
		p.cut(n)
	}
	return true
}

func (p *ptWord) verbSuffix() bool {
	for _, s := range ptVerbSuffixes {
		if hasRuneSuffix(p.w, s) && p.inRV(len(p.w)-len(s)) {
			p.cut(len(s))
			return true
		}
	}
	return false
}

func (p *ptWord) residualSuffix() {
	for _, s := range ptResidualSuffixes {
		if hasRuneSuffix(p.w, s) && p.inRV(len(p.w)-len(s)) {
			p.cut(len(s))
			return
		}
	}
}

func (p *ptWord) residualForm() {
	switch {
	case p.endsWith("e"), p.endsWith("é"), p.endsWith("ê"):
		if !p.inRV(len(p.w) - 1) {
			return
		}
		p.cut(1)
		if (p.endsWith("gu") || p.endsWith("ci")) && p.inRV(len(p.w)-1) {
			p.cut(1)
		}
	case p.endsWith("ç"):
		p.replaceSuffix(1, "c")
	}
}
