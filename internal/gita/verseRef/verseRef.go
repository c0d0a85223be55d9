package verseRef

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Ref is a chapter and verse citation within the Bhagavad Gita.
type Ref struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

func (r Ref) String() string {
	return fmt.Sprintf("%d.%d", r.Chapter, r.Verse)
}

const (
	maxChapter = 18
	// Chapter 18 tops out at 78 verses. The parse bound is looser so that
	// OCR-damaged citations still reach the index, which decides existence.
	maxVerse = 120
)

// Citation formats, tried in order: "verse 2.46" / "verse 2: 46",
// bare "2.46" / "Bg 2.47", "chapter 2 verse 46" / "chapter 2, verse 47".
var numericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`verse[\s,:-]*(\d+)[\s,:.-]+(?:verse|v\.?|vs\.?)?\s*(\d+)`),
	regexp.MustCompile(`(?:^|[\s(])(?:bg[\s.]*)?(\d+)\s*[.:]\s*(\d+)`),
	regexp.MustCompile(`chapter\s+(\d+)\s*[,:]?\s*verse\s+(\d+)`),
}

// "chapter two verse forty six"
var wordNumberPattern = regexp.MustCompile(`chapter\s+([a-z]+(?:[\s-][a-z]+)?)\s+verse\s+([a-z]+(?:[\s-][a-z]+)?)`)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90,
}

// Parse scans question text for a verse citation. The chapter must be a real
// Gita chapter; verse existence is left to the caller's index.
func Parse(question string) (Ref, bool) {
	q := strings.ToLower(question)

	for _, pattern := range numericPatterns {
		m := pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		chapter, errC := strconv.Atoi(m[1])
		verse, errV := strconv.Atoi(m[2])
		if errC != nil || errV != nil {
			continue
		}
		if ref := (Ref{Chapter: chapter, Verse: verse}); ref.Valid() {
			return ref, true
		}
	}

	if m := wordNumberPattern.FindStringSubmatch(q); m != nil {
		chapter, okC := parseNumberWords(m[1])
		verse, okV := parseNumberWords(m[2])
		if okC && okV {
			if ref := (Ref{Chapter: chapter, Verse: verse}); ref.Valid() {
				return ref, true
			}
		}
	}

	return Ref{}, false
}

// Valid reports whether the reference lies within the parse bounds.
func (r Ref) Valid() bool {
	return r.Chapter >= 1 && r.Chapter <= maxChapter && r.Verse >= 1 && r.Verse <= maxVerse
}

// parseNumberWords reads "six", "forty six" or "forty-six". A second word
// only counts when it is a unit following a round tens word.
func parseNumberWords(s string) (int, bool) {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(words) == 0 {
		return 0, false
	}
	first, ok := numberWords[words[0]]
	if !ok {
		return 0, false
	}
	if len(words) >= 2 {
		second, ok := numberWords[words[1]]
		if ok && first >= 20 && first%10 == 0 && second >= 1 && second <= 9 {
			return first + second, true
		}
	}
	return first, true
}
