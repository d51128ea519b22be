package advanced

import (
	"sort"
	"strings"
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var ordinals = map[string]string{
	"1º": "primeiro", "2º": "segundo", "3º": "terceiro", "4º": "quarto", "5º": "quinto",
	"6º": "sexto", "7º": "sétimo", "8º": "oitavo", "9º": "nono", "10º": "décimo",
	"1ª": "primeira", "2ª": "segunda", "3ª": "terceira", "4ª": "quarta", "5ª": "quinta",
	"6ª": "sexta", "7ª": "sétima", "8ª": "oitava", "9ª": "nona", "10ª": "décima",
}

var typos = map[string]string{
	"vc":  "você",
	"vcs": "vocês",
	"pq":  "porque",
	"q":   "que",
	"tb":  "também",
	"tbm": "também",
	"mt":  "muito",
	"mto": "muito",
	"td":  "tudo",
	"tdo": "tudo",
	"tda": "toda",
	"tde": "todo",
	"hj":  "hoje",
	"msg": "mensagem",
}

var abbreviations = map[string]string{
	"ex.":    "exemplo",
	"etc.":   "etcetera",
	"vs.":    "versus",
	"i.e.":   "isto é",
	"e.g.":   "por exemplo",
	"Dr.":    "Doutor",
	"Dra.":   "Doutora",
	"Sr.":    "Senhor",
	"Sra.":   "Senhora",
	"Srta.":  "Senhorita",
	"Prof.":  "Professor",
	"Profa.": "Professora",
}

var verbForms = map[string]string{
	"correndo": "correr",
	"pulando":  "pular",
	"saltando": "saltar",
	"fazendo":  "fazer",
	"dizendo":  "dizer",
	"vendo":    "ver",
	"indo":     "ir",
	"sendo":    "ser",
	"tendo":    "ter",
	"querendo": "querer",
	"falando":  "falar",
	"comendo":  "comer",
	"dormindo": "dormir",
}

var measurementUnits = map[string]string{
	"kg": "quilogramas",
	"g":  "gramas",
	"km": "quilômetros",
	"m":  "metros",
	"cm": "centímetros",
	"mm": "milímetros",
	"l":  "litros",
	"ml": "mililitros",
}

var nameConnectors = map[string]struct{}{
	"da": {}, "de": {}, "do": {}, "das": {}, "dos": {}, "e": {},
}

// longestFirst returns the keys of table ordered so that no key is tried
// after one of its own prefixes.
func longestFirst(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func replacerFor(table map[string]string) *strings.Replacer {
	keys := longestFirst(table)
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, table[k])
	}
	return strings.NewReplacer(pairs...)
}
