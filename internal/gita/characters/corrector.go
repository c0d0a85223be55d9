package characters

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// correctionThreshold is the minimum similarity score for a fuzzy match.
const correctionThreshold = 0.6

// Misspellings seen in real queries, keyed by the canonical lowercase name.
var commonMisspellings = map[string][]string{
	"krishna":       {"krsna", "krushna", "krishn", "krishana", "krisna", "krshna"},
	"arjuna":        {"arjun", "arjoon", "arjoona", "arjunn"},
	"bhishma":       {"bheeshma", "bheeshm", "bhishm", "bheesma", "bheeshmaa"},
	"duryodhana":    {"duryodhan", "duryodhna", "duryodhanna"},
	"yudhishthira":  {"yudhisthira", "yudhishtir", "yudhisthir"},
	"draupadi":      {"dropadi"},
	"karna":         {"karn", "karan", "karana"},
	"dronacharya":   {"dron"},
	"dhritarashtra": {"dhritharashtra", "dhritrashtra"},
}

// reservedWords is core Gita vocabulary that edit distance would otherwise
// drag onto a character name. "karma" is one edit from Karna and "prana"
// two from Drona; none of these may ever be treated as a misspelling.
var reservedWords = map[string]struct{}{
	"karma":   {},
	"dharma":  {},
	"yoga":    {},
	"gita":    {},
	"veda":    {},
	"vedas":   {},
	"atma":    {},
	"atman":   {},
	"moksha":  {},
	"bhakti":  {},
	"jnana":   {},
	"guru":    {},
	"mantra":  {},
	"maya":    {},
	"prana":   {},
	"rama":    {},
	"shiva":   {},
	"vishnu":  {},
	"brahma":  {},
	"brahman": {},
}

// nameMap resolves every known spelling to its canonical lowercase name.
// sortedNames fixes the iteration order for the fuzzy passes.
var (
	nameMap     = buildNameMap()
	sortedNames = sortedNameKeys(nameMap)
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

func buildNameMap() map[string]string {
	m := make(map[string]string)
	for canonical, c := range characterDB {
		m[canonical] = canonical
		for _, alias := range c.Aliases {
			m[strings.ToLower(alias)] = canonical
		}
	}
	for canonical, variants := range commonMisspellings {
		for _, variant := range variants {
			m[variant] = canonical
		}
	}
	return m
}

func sortedNameKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Correct resolves a possibly misspelled character name to its canonical
// lowercase form and a confidence score. An unmatched or reserved word
// returns ("", 0).
func Correct(name string) (string, float64) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", 0
	}
	if canonical, ok := nameMap[name]; ok {
		return canonical, 1.0
	}
	if _, reserved := reservedWords[name]; reserved {
		return "", 0
	}
	if canonical, score, ok := partialMatch(name); ok {
		return canonical, score
	}
	if canonical, score, ok := closestByEditDistance(name); ok {
		return canonical, score
	}
	return "", 0
}

// partialMatch handles truncations like "krish" for "krishna". The score is
// the length ratio of the two spellings, penalized for being partial.
func partialMatch(name string) (string, float64, bool) {
	bestName := ""
	bestRatio := 0.0
	for _, known := range sortedNames {
		if !strings.Contains(known, name) && !strings.Contains(name, known) {
			continue
		}
		shorter, longer := len(name), len(known)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		ratio := float64(shorter) / float64(longer)
		if ratio >= correctionThreshold && ratio > bestRatio {
			bestName, bestRatio = known, ratio
		}
	}
	if bestName == "" {
		return "", 0, false
	}
	return nameMap[bestName], bestRatio * 0.9, true
}

func closestByEditDistance(name string) (string, float64, bool) {
	bestName := ""
	bestScore := 0.0
	for _, known := range sortedNames {
		maxLen := len(name)
		if len(known) > maxLen {
			maxLen = len(known)
		}
		distance := levenshtein.ComputeDistance(name, known)
		score := 1.0 - float64(distance)/float64(maxLen)
		if score >= correctionThreshold && score > bestScore {
			bestName, bestScore = known, score
		}
	}
	if bestName == "" {
		return "", 0, false
	}
	return nameMap[bestName], bestScore, true
}

// CorrectText rewrites every recognizable character name in text to its
// canonical spelling and reports the corrections made. The original
// capitalization pattern of each word is preserved. Words shorter than
// three runes are never touched.
func CorrectText(text string) (string, map[string]string) {
	corrections := make(map[string]string)
	if text == "" {
		return text, corrections
	}
	for _, word := range wordPattern.FindAllString(text, -1) {
		if len([]rune(word)) < 3 {
			continue
		}
		if _, done := corrections[word]; done {
			continue
		}
		canonical, score := Correct(word)
		if canonical == "" || score < correctionThreshold || strings.ToLower(word) == canonical {
			continue
		}
		corrections[word] = matchCapitalization(word, canonical)
	}
	for original, corrected := range corrections {
		boundary := regexp.MustCompile(`\b` + regexp.QuoteMeta(original) + `\b`)
		text = boundary.ReplaceAllString(text, corrected)
	}
	return text, corrections
}

func matchCapitalization(original, corrected string) string {
	originalRunes := []rune(original)
	if len(originalRunes) == 0 || corrected == "" || !unicode.IsUpper(originalRunes[0]) {
		return corrected
	}
	rest := string(originalRunes[1:])
	if rest == strings.ToLower(rest) {
		correctedRunes := []rune(corrected)
		return strings.ToUpper(string(correctedRunes[0])) + string(correctedRunes[1:])
	}
	return strings.ToUpper(corrected)
}
