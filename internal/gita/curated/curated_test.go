package curated

import (
	"strings"
	"testing"
)

func TestMatchQuestionExact(t *testing.T) {
	match, ok := MatchQuestion("What is the Bhagavad Gita?")
	if !ok {
		t.Fatal("MatchQuestion returned no match for a stored question")
	}
	if !strings.Contains(match.Answer, "700-verse") {
		t.Errorf("MatchQuestion answer = %q; want the stored overview answer", match.Answer)
	}
	if match.Confidence != 0.9 {
		t.Errorf("MatchQuestion confidence = %v; want 0.9", match.Confidence)
	}
	if len(match.Sources) != 1 || match.Sources[0] != "Introduction" {
		t.Errorf("MatchQuestion sources = %v; want [Introduction]", match.Sources)
	}
}

func TestMatchQuestionKeyword(t *testing.T) {
	tests := []struct {
		question string
		wantFrag string
	}{
		{"What is Karma Yoga?", "path of selfless action"},
		{"Tell me about bhakti", "loving devotion"},
		{"Who is Lord Krishna?", "Supreme Personality of Godhead"},
	}

	for _, tt := range tests {
		match, ok := MatchQuestion(tt.question)
		if !ok {
			t.Errorf("MatchQuestion(%q) returned no match", tt.question)
			continue
		}
		if !strings.Contains(match.Answer, tt.wantFrag) {
			t.Errorf("MatchQuestion(%q) answer = %q; want it to contain %q", tt.question, match.Answer, tt.wantFrag)
		}
		if match.Confidence != 0.9 {
			t.Errorf("MatchQuestion(%q) confidence = %v; want 0.9", tt.question, match.Confidence)
		}
	}
}

func TestMatchQuestionKeywordSources(t *testing.T) {
	match, ok := MatchQuestion("What is Karma Yoga?")
	if !ok {
		t.Fatal("MatchQuestion returned no match")
	}
	if len(match.Sources) == 0 || match.Sources[0] != "BG 2.47-48" {
		t.Errorf("MatchQuestion sources = %v; want the first to be BG 2.47-48", match.Sources)
	}
}

func TestMatchQuestionOverlap(t *testing.T) {
	tests := []struct {
		question string
		wantFrag string
	}{
		{"Is the Bhagavad Gita relevant today?", "profoundly relevant in the modern world"},
		{"Who wrote the Bhagavad Gita scripture?", "sage Vyasa"},
	}

	for _, tt := range tests {
		match, ok := MatchQuestion(tt.question)
		if !ok {
			t.Errorf("MatchQuestion(%q) returned no match", tt.question)
			continue
		}
		if !strings.Contains(match.Answer, tt.wantFrag) {
			t.Errorf("MatchQuestion(%q) answer = %q; want it to contain %q", tt.question, match.Answer, tt.wantFrag)
		}
	}
}

func TestMatchQuestionSingleChapter(t *testing.T) {
	match, ok := MatchQuestion("What is chapter 12 about?")
	if !ok {
		t.Fatal("MatchQuestion returned no match for a chapter question")
	}
	want := "Chapter 12: The Path of Devotion - The process of devotional service and the characteristics of devotees are described."
	if match.Answer != want {
		t.Errorf("MatchQuestion answer = %q; want %q", match.Answer, want)
	}
	if match.Confidence != 0.95 {
		t.Errorf("MatchQuestion confidence = %v; want 0.95", match.Confidence)
	}
}

func TestMatchQuestionAllChapters(t *testing.T) {
	match, ok := MatchQuestion("Give me a chapter summary")
	if !ok {
		t.Fatal("MatchQuestion returned no match for a chapter summary request")
	}
	if !strings.Contains(match.Answer, "Chapter 1: Arjuna's Dilemma") {
		t.Errorf("MatchQuestion answer missing chapter 1; got %q", match.Answer)
	}
	if !strings.Contains(match.Answer, "Chapter 18: Final Revelations") {
		t.Error("MatchQuestion answer missing chapter 18")
	}
	if match.Confidence != 0.95 {
		t.Errorf("MatchQuestion confidence = %v; want 0.95", match.Confidence)
	}
}

func TestMatchQuestionNoMatch(t *testing.T) {
	tests := []string{
		"",
		"ok",
		"What time is the show tonight?",
		"What is chapter 19 about?",
	}

	for _, question := range tests {
		if match, ok := MatchQuestion(question); ok {
			t.Errorf("MatchQuestion(%q) = %q; want no match", question, match.Answer)
		}
	}
}

func TestRelatedQuestions(t *testing.T) {
	related := RelatedQuestions("Tell me about karma yoga and duty", 2)
	if len(related) != 2 {
		t.Fatalf("RelatedQuestions returned %d suggestions; want 2", len(related))
	}
	if related[0].Question != "What is Karma Yoga according to the Gita?" {
		t.Errorf("RelatedQuestions first = %q; want the karma yoga question", related[0].Question)
	}
	if related[0].Category != "Karma Yoga" {
		t.Errorf("RelatedQuestions first category = %q; want Karma Yoga", related[0].Category)
	}
	if related[1].Question != "What is the Bhagavad Gita's view on work and action?" {
		t.Errorf("RelatedQuestions second = %q; want the work and action question", related[1].Question)
	}
}

func TestRelatedQuestionsNoOverlap(t *testing.T) {
	tests := []string{
		"cooking recipes for dinner",
		"",
	}

	for _, question := range tests {
		if related := RelatedQuestions(question, 5); len(related) != 0 {
			t.Errorf("RelatedQuestions(%q) returned %d suggestions; want 0", question, len(related))
		}
	}
}

func TestSignificantWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"What is the main message of the Bhagavad Gita?", "main message bhagavad gita"},
		{"Tell me about it", ""},
		{"self-realization and mind control", "self realization mind control"},
	}

	for _, tt := range tests {
		got := strings.Join(significantWords(tt.input), " ")
		if got != tt.want {
			t.Errorf("significantWords(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSources(t *testing.T) {
	got := formatSources([]string{"2.47-48", "BG 1.1", "Introduction"})
	want := []string{"BG 2.47-48", "BG 1.1", "Introduction"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("formatSources[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestChapterSummary(t *testing.T) {
	tests := []struct {
		number    int
		wantTitle string
		wantOk    bool
	}{
		{1, "Arjuna's Dilemma", true},
		{12, "The Path of Devotion", true},
		{18, "Final Revelations of the Ultimate Truth", true},
		{0, "", false},
		{19, "", false},
	}

	for _, tt := range tests {
		chapter, ok := ChapterSummary(tt.number)
		if ok != tt.wantOk {
			t.Errorf("ChapterSummary(%d) ok = %v; want %v", tt.number, ok, tt.wantOk)
			continue
		}
		if chapter.Title != tt.wantTitle {
			t.Errorf("ChapterSummary(%d) title = %q; want %q", tt.number, chapter.Title, tt.wantTitle)
		}
	}
}

func TestAllChapterSummaries(t *testing.T) {
	all := AllChapterSummaries()
	if n := strings.Count(all, "\n\n"); n != 17 {
		t.Errorf("AllChapterSummaries has %d separators; want 17", n)
	}
	if !strings.HasPrefix(all, "Chapter 1: Arjuna's Dilemma") {
		t.Errorf("AllChapterSummaries = %q; want it to start with chapter 1", all)
	}
}
