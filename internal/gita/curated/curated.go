// Package curated answers common Bhagavad Gita questions from hand-written
// material before any retrieval work happens: QA pairs, FAQs, the chapter
// summary table, and a catalog used for related-question suggestions.
package curated

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/gitalabs/GitaAPI/internal/config"
)

// Match is a curated answer selected for a user question.
type Match struct {
	Answer     string
	Sources    []string
	Confidence float64
}

// RelatedQuestion pairs a catalog question with its category.
type RelatedQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// minWordOverlap is how many significant words a question must share with a
// stored question before the stored answer is trusted.
const minWordOverlap = 3

// relatedScoreCutoff drops catalog questions with too little term overlap
// from related-question suggestions.
const relatedScoreCutoff = 0.2

var allChapterTerms = []string{"summary of chapters", "chapter summary", "summarize chapters", "list of chapters"}

var chapterNumberPattern = regexp.MustCompile(`chapter\s+(\d+)`)

var termPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopwords are filtered out before word-overlap scoring. Question scaffolding
// ("what", "does", "tell") carries no topic signal; "gita" and "bhagavad" are
// kept because stored questions are distinguished by them.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"am": {}, "have": {}, "has": {}, "had": {}, "having": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {},
	"when": {}, "where": {}, "why": {}, "how": {},
	"do": {}, "does": {}, "did": {}, "can": {}, "could": {}, "should": {},
	"would": {}, "will": {}, "shall": {}, "may": {}, "might": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "from": {},
	"by": {}, "with": {}, "about": {}, "as": {}, "into": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"between": {}, "out": {}, "off": {}, "over": {}, "under": {},
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"all": {}, "any": {}, "both": {}, "each": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "nor": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {}, "just": {}, "now": {},
	"me": {}, "my": {}, "i": {}, "we": {}, "us": {}, "our": {},
	"you": {}, "your": {}, "he": {}, "him": {}, "his": {}, "she": {}, "her": {},
	"it": {}, "its": {}, "they": {}, "them": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"tell": {}, "say": {}, "says": {}, "said": {}, "please": {}, "give": {},
	"explain": {}, "many": {},
}

// curatedPairs is searched in order, richer QA pairs before the FAQ list.
var curatedPairs = append(append([]QAPair{}, qaPairs...), faqList...)

var normalizedPairQuestions = normalizePairQuestions()

func normalizePairQuestions() []string {
	normalized := make([]string, len(curatedPairs))
	for i, pair := range curatedPairs {
		normalized[i] = normalizeQuestion(pair.Question)
	}
	return normalized
}

// normalizeQuestion reduces a question to its bare words so that casing,
// punctuation and spacing do not defeat an exact comparison.
func normalizeQuestion(s string) string {
	return strings.Join(termPattern.FindAllString(strings.ToLower(s), -1), " ")
}

// MatchQuestion returns the best curated answer for a question, or false when
// nothing stored is a confident fit. Chapter-summary requests answer from the
// summary table; everything else matches against QA pairs by keyword or by
// significant-word overlap with the stored question.
func MatchQuestion(question string) (Match, bool) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return Match{}, false
	}

	for _, term := range allChapterTerms {
		if strings.Contains(q, term) {
			return Match{
				Answer:     AllChapterSummaries(),
				Sources:    []string{"Chapter summaries"},
				Confidence: config.ChapterAnswerConfidence,
			}, true
		}
	}

	// Verse citations resolve a layer earlier, so a chapter mention that
	// reaches this point asks about the chapter itself.
	if m := chapterNumberPattern.FindStringSubmatch(q); m != nil {
		number, err := strconv.Atoi(m[1])
		if err == nil {
			if chapter, ok := ChapterSummary(number); ok {
				return Match{
					Answer:     chapter.String(),
					Sources:    []string{fmt.Sprintf("Chapter %d: %s", chapter.Number, chapter.Title)},
					Confidence: config.ChapterAnswerConfidence,
				}, true
			}
		}
	}

	// Word-for-word restatements of a stored question beat keyword scanning.
	// "What is the Bhagavad Gita?" has only two significant words and would
	// otherwise slip past both matching passes below.
	normalized := normalizeQuestion(q)
	for i, pair := range curatedPairs {
		if normalizedPairQuestions[i] == normalized {
			return matchFromPair(pair), true
		}
	}

	for _, pair := range curatedPairs {
		for _, keyword := range pair.Keywords {
			if len(significantWords(keyword)) == 0 {
				continue
			}
			if strings.Contains(q, keyword) {
				return matchFromPair(pair), true
			}
		}
	}

	userWords := toWordSet(significantWords(q))
	bestOverlap := 0
	bestIndex := -1
	for i, pair := range curatedPairs {
		overlap := 0
		for _, w := range significantWords(pair.Question) {
			if _, ok := userWords[w]; ok {
				overlap++
			}
		}
		if overlap >= minWordOverlap && overlap > bestOverlap {
			bestOverlap = overlap
			bestIndex = i
		}
	}
	if bestIndex >= 0 {
		return matchFromPair(curatedPairs[bestIndex]), true
	}

	return Match{}, false
}

// RelatedQuestions ranks catalog questions by term overlap with the user's
// question and returns up to limit suggestions.
func RelatedQuestions(question string, limit int) []RelatedQuestion {
	userWords := toWordSet(significantWords(question))
	if len(userWords) == 0 {
		return nil
	}

	type scoredQuestion struct {
		index int
		score float64
	}
	var ranked []scoredQuestion
	for i, entry := range questionCatalog {
		terms := toWordSet(significantWords(entry.Question))
		for _, keyword := range entry.Keywords {
			for _, w := range significantWords(keyword) {
				terms[w] = struct{}{}
			}
		}
		overlap := 0
		for w := range userWords {
			if _, ok := terms[w]; ok {
				overlap++
			}
		}
		score := float64(overlap) / float64(len(userWords))
		if score > relatedScoreCutoff {
			ranked = append(ranked, scoredQuestion{index: i, score: score})
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	related := make([]RelatedQuestion, len(ranked))
	for i, s := range ranked {
		related[i] = RelatedQuestion{
			Question: questionCatalog[s.index].Question,
			Category: questionCatalog[s.index].Category,
		}
	}
	return related
}

func matchFromPair(pair QAPair) Match {
	return Match{
		Answer:     pair.Answer,
		Sources:    formatSources(pair.VerseReferences),
		Confidence: config.CuratedAnswerConfidence,
	}
}

// formatSources normalizes verse references to the citation style used in
// answers: bare "2.47" becomes "BG 2.47", anything already labelled stays.
func formatSources(refs []string) []string {
	sources := make([]string, len(refs))
	for i, ref := range refs {
		if ref != "" && unicode.IsDigit(rune(ref[0])) {
			sources[i] = "BG " + ref
		} else {
			sources[i] = ref
		}
	}
	return sources
}

// significantWords extracts the words of s that carry topic signal: longer
// than two characters and not stopwords.
func significantWords(s string) []string {
	var words []string
	for _, w := range termPattern.FindAllString(strings.ToLower(s), -1) {
		if len(w) <= 2 {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		words = append(words, w)
	}
	return words
}

func toWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
