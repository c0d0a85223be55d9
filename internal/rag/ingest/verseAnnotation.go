package ingest

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/gitalabs/GitaAPI/internal/gita/verseRef"
)

// Markers the scan layout uses to announce position in the book. Chapter
// headings are typeset in caps or title case; a lowercase "chapter" in
// running prose must not move the tracker.
var (
	chapterMarker  = regexp.MustCompile(`\bC(?:HAPTER|hapter)\s+(\d{1,2})\b`)
	verseMarker    = regexp.MustCompile(`\bTEXTS?\s+(\d{1,3})\b`)
	citationMarker = regexp.MustCompile(`\bBg[.\s]*(\d{1,2})\.(\d{1,3})\b`)
)

type markerHit struct {
	pos     int
	chapter int
	verse   int
}

// scanMarkers returns every chapter, verse and citation marker in the
// chunk, ordered by position so later markers win.
func scanMarkers(chunk string) []markerHit {
	var hits []markerHit
	for _, m := range chapterMarker.FindAllStringSubmatchIndex(chunk, -1) {
		n, _ := strconv.Atoi(chunk[m[2]:m[3]])
		hits = append(hits, markerHit{pos: m[0], chapter: n})
	}
	for _, m := range verseMarker.FindAllStringSubmatchIndex(chunk, -1) {
		n, _ := strconv.Atoi(chunk[m[2]:m[3]])
		hits = append(hits, markerHit{pos: m[0], verse: n})
	}
	for _, m := range citationMarker.FindAllStringSubmatchIndex(chunk, -1) {
		c, _ := strconv.Atoi(chunk[m[2]:m[3]])
		v, _ := strconv.Atoi(chunk[m[4]:m[5]])
		hits = append(hits, markerHit{pos: m[0], chapter: c, verse: v})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

// verseTracker carries the last verse position seen across chunks and
// pages of a single document.
type verseTracker struct {
	chapter int
	verse   int
}

// observe advances the tracker past every marker in the chunk. Bare verse
// markers only count once a chapter is known, and out-of-range positions
// are ignored rather than corrupting the tracked state.
func (t *verseTracker) observe(chunk string) {
	for _, hit := range scanMarkers(chunk) {
		switch {
		case hit.chapter > 0 && hit.verse > 0:
			if (verseRef.Ref{Chapter: hit.chapter, Verse: hit.verse}).Valid() {
				t.chapter, t.verse = hit.chapter, hit.verse
			}
		case hit.chapter > 0:
			if hit.chapter <= 18 {
				t.chapter, t.verse = hit.chapter, 0
			}
		case hit.verse > 0:
			if t.chapter > 0 && (verseRef.Ref{Chapter: t.chapter, Verse: hit.verse}).Valid() {
				t.verse = hit.verse
			}
		}
	}
}

// current returns the tracked position, or zeros when the document has not
// yet reached a full chapter-and-verse location. Chunks are annotated with
// both numbers or neither.
func (t *verseTracker) current() (chapter, verse int) {
	if t.chapter > 0 && t.verse > 0 {
		return t.chapter, t.verse
	}
	return 0, 0
}
