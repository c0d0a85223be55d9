package ingest

import (
	"regexp"
	"strings"
)

// Scanned-book noise that must not reach the index.
var (
	pageNumberLine    = regexp.MustCompile(`^\s*\d+\s*$`)
	runningHeaderLine = regexp.MustCompile(`(?i)^\s*bhagavad-g[iī]t[aā] as it is(\s+\d+)?\s*$`)
	copyrightLine     = regexp.MustCompile(`(?i)copyright|©|all rights reserved|bhaktivedanta book trust`)
	camelJoin         = regexp.MustCompile(`([a-z])([A-Z])`)
)

// knownJoins are word concatenations the source scan produces. Matched on
// word boundaries, so the longer keys never get clobbered by their prefixes.
var knownJoins = []struct{ from, to string }{
	{"theSupremePersonalityofGodhead", "the Supreme Personality of Godhead"},
	{"theBhagavadGitaAsItIs", "the Bhagavad Gita As It Is"},
	{"theBhagavadGita", "the Bhagavad Gita"},
	{"theBhagavad", "the Bhagavad"},
	{"theSupremeLord", "the Supreme Lord"},
	{"theSupreme", "the Supreme"},
	{"theGita", "the Gita"},
	{"theLord", "the Lord"},
	{"lordkrishna", "Lord Krishna"},
	{"krishnasaid", "Krishna said"},
	{"arjunasaid", "Arjuna said"},
	{"bhagavadgita", "Bhagavad Gita"},
	{"tounderstand", "to understand"},
	{"donot", "do not"},
	{"soulis", "soul is"},
	{"karmais", "karma is"},
	{"yogais", "yoga is"},
}

var knownJoinPatterns = compileJoinPatterns()

func compileJoinPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(knownJoins))
	for i, join := range knownJoins {
		patterns[i] = regexp.MustCompile(`\b` + join.from + `\b`)
	}
	return patterns
}

// CleanPage normalizes one page of extracted text: page-number lines, the
// book's running header and copyright lines are dropped, known OCR word
// joins are repaired, camelCase joins are split, and whitespace collapsed.
// A page whose content shrinks below 80% of the raw content is returned
// whitespace-normalized but otherwise untouched.
func CleanPage(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if pageNumberLine.MatchString(line) ||
			runningHeaderLine.MatchString(line) ||
			copyrightLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	repaired := strings.Join(kept, "\n")
	for i, pattern := range knownJoinPatterns {
		repaired = pattern.ReplaceAllString(repaired, knownJoins[i].to)
	}
	repaired = camelJoin.ReplaceAllString(repaired, "$1 $2")

	cleaned := collapseWhitespace(repaired)
	base := collapseWhitespace(raw)
	if len(base) > 10 && float64(len(cleaned)) < 0.8*float64(len(base)) {
		return base
	}
	return cleaned
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
