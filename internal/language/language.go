package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Unknown is returned by Detect when no supported language can be identified.
const Unknown = "unknown"

type entry struct {
	code2     string   // ISO 639-1 (2-letter)
	code3     string   // ISO 639-2 primary (3-letter)
	alt3      string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display   string   // Human-readable name
	words     []string // Full word forms; the first one names the stemmer and stopword list
	supported bool     // Accepted as a configured default language
	detect    whatlanggo.Lang
}

var languages = []entry{
	{"pt", "por", "", "Portuguese", []string{"portuguese", "português", "portugues"}, true, whatlanggo.Por},
	{"en", "eng", "", "English", []string{"english", "inglês"}, true, whatlanggo.Eng},
	{"es", "spa", "", "Spanish", []string{"spanish", "español", "espanhol"}, true, whatlanggo.Spa},
	{"fr", "fra", "fre", "French", []string{"french", "français", "francês"}, true, whatlanggo.Fra},
	{"de", "deu", "ger", "German", []string{"german", "deutsch", "alemão"}, true, whatlanggo.Deu},
	{"it", "ita", "", "Italian", []string{"italian", "italiano"}, true, whatlanggo.Ita},
	{"ru", "rus", "", "Russian", []string{"russian"}, false, whatlanggo.Rus},
	{"sv", "swe", "", "Swedish", []string{"swedish"}, false, whatlanggo.Swe},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}, false, whatlanggo.Nob},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}, false, whatlanggo.Nld},
}

// Index maps built at init time.
var (
	byCode2   map[string]*entry
	byCode3   map[string]*entry
	byWord    map[string]*entry
	byDetect  map[whatlanggo.Lang]*entry
	whitelist map[whatlanggo.Lang]bool
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages)*2)
	byDetect = make(map[whatlanggo.Lang]*entry, len(languages))
	whitelist = make(map[whatlanggo.Lang]bool, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
		if e.supported {
			byDetect[e.detect] = e
			whitelist[e.detect] = true
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// ToISO3 converts any recognized language code to ISO 639-2 (3-letter).
// Returns "und" for unrecognized 2-letter codes, passes through 3-letter codes.
func ToISO3(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "und"
	}
	if e := lookup(code); e != nil {
		return e.code3
	}
	if len(code) == 3 {
		return code
	}
	return "und"
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Name returns the lowercase English word for a language ("pt" -> "portuguese").
// Stopword lists and stemmers are keyed by this name. Unrecognized input
// returns an empty string.
func Name(code string) string {
	if e := lookup(code); e != nil {
		return e.words[0]
	}
	return ""
}

// IsSupported reports whether code names one of the configurable languages.
func IsSupported(code string) bool {
	e := lookup(code)
	return e != nil && e.supported
}

// Supported lists the ISO 639-1 codes accepted as a default language.
func Supported() []string {
	out := make([]string, 0, len(languages))
	for _, e := range languages {
		if e.supported {
			out = append(out, e.code2)
		}
	}
	return out
}

// Detect returns the ISO 639-1 code of the most likely supported language,
// or Unknown when the text is empty or matches none of them.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}
	info := whatlanggo.DetectWithOptions(text, whatlanggo.Options{Whitelist: whitelist})
	if e, ok := byDetect[info.Lang]; ok {
		return e.code2
	}
	return Unknown
}
