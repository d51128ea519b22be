package textutil

import (
	"sort"
	"strings"

	"textclean/internal/errs"
	"textclean/internal/language"
)

const portugueseStopwords = `de a o que e é do da em um para com não uma os no se na por mais as dos como
mas ao ele das à seu sua ou quando muito nos já eu também só pelo pela até isso ela entre depois sem
mesmo aos seus quem nas me esse eles você essa num nem suas meu às minha numa pelos elas qual nós lhe
deles essas esses pelas este dele tu te vocês vos lhes meus minhas teu tua teus tuas nosso nossa nossos
nossas dela delas esta estes estas aquele aquela aqueles aquelas isto aquilo estou está estamos estão
estive esteve estivemos estiveram estava estávamos estavam estivera estivéramos esteja estejamos estejam
estivesse estivéssemos estivessem estiver estivermos estiverem hei há havemos hão houve houvemos houveram
houvera houvéramos haja hajamos hajam houvesse houvéssemos houvessem houver houvermos houverem houverei
houverá houveremos houverão houveria houveríamos houveriam sou somos são era éramos eram fui foi fomos
foram fora fôramos seja sejamos sejam fosse fôssemos fossem for formos forem serei será seremos serão
seria seríamos seriam tenho tem temos tém tinha tínhamos tinham tive teve tivemos tiveram tivera
tivéramos tenha tenhamos tenham tivesse tivéssemos tivessem tiver tivermos tiverem terei terá teremos
terão teria teríamos teriam`

const englishStopwords = `i me my myself we our ours ourselves you you're you've you'll you'd your
yours yourself yourselves he him his himself she she's her hers herself it it's its itself they them
their theirs themselves what which who whom this that that'll these those am is are was were be been
being have has had having do does did doing a an the and but if or because as until while of at by for
with about against between into through during before after above below to from up down in out on off
over under again further then once here there when where why how all any both each few more most other
some such no nor not only own same so than too very s t can will just don don't should should've now d
ll m o re ve y ain aren aren't couldn couldn't didn didn't doesn doesn't hadn hadn't hasn hasn't haven
haven't isn isn't ma mightn mightn't mustn mustn't needn needn't shan shan't shouldn shouldn't wasn
wasn't weren weren't won won't wouldn wouldn't`

const spanishStopwords = `de la que el en y a los del se las por un para con no una su al lo como más
pero sus le ya o este sí porque esta entre cuando muy sin sobre también me hasta hay donde quien desde
todo nos durante todos uno les ni contra otros ese eso ante ellos e esto mí antes algunos qué unos yo
otro otras otra él tanto esa estos mucho quienes nada muchos cual poco ella estar estas algunas algo
nosotros mi mis tú te ti tu tus ellas nosotras vosotros vosotras os mío mía míos mías tuyo tuya tuyos
tuyas suyo suya suyos suyas nuestro nuestra nuestros nuestras vuestro vuestra vuestros vuestras esos
esas estoy estás está estamos estáis están esté estés estemos estéis estén estaba estabas estábamos
estaban estuve estuvo estuvimos estuvieron soy eres es somos sois son sea seas seamos sean era eras
éramos eran fui fue fuimos fueron he has ha hemos habéis han había habían tengo tienes tiene tenemos
tienen tenía tenían`

var stopwordLists = map[string]map[string]struct{}{
	"portuguese": wordSet(portugueseStopwords),
	"english":    wordSet(englishStopwords),
	"spanish":    wordSet(spanishStopwords),
}

func wordSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}

// StopwordLanguages lists the languages with a built-in stopword list.
func StopwordLanguages() []string {
	out := make([]string, 0, len(stopwordLists))
	for name := range stopwordLists {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsStopword reports whether word (compared lowercased) is a stopword in lang.
// Unknown languages have no stopwords.
func IsStopword(word, lang string) bool {
	set, ok := stopwordLists[language.Name(lang)]
	if !ok {
		return false
	}
	_, found := set[strings.ToLower(word)]
	return found
}

// RemoveStopwords splits on whitespace, drops words whose lowercase form is a
// stopword for lang, and joins the survivors with single spaces. Punctuation
// attached to a word is part of the word. lang accepts "portuguese", "pt" or
// "por".
func RemoveStopwords(text, lang string) (string, error) {
	set, ok := stopwordLists[language.Name(lang)]
	if !ok {
		return "", &errs.LanguageError{Language: lang, Supported: StopwordLanguages()}
	}
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, stop := set[strings.ToLower(w)]; stop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " "), nil
}
