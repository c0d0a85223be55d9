package guidance

import (
	"strings"
	"testing"
)

func TestMatchQuestionTopics(t *testing.T) {
	tests := []struct {
		question  string
		wantTopic string
	}{
		{"How do I deal with stress at work?", "stress"},
		{"I am so angry at my brother", "anger"},
		{"How to handle grief after losing my father?", "grief"},
		{"I am afraid of public speaking", "fear"},
		{"How can I improve my work-life balance?", "work-life balance"},
		{"How do I stay balanced in hard times?", "balance"},
		{"Should I change my career?", "career"},
		{"Tips for time management", "time management"},
		{"What is the purpose of life?", "purpose"},
		{"I feel lost in life", "feeling lost"},
	}

	for _, tt := range tests {
		match, ok := MatchQuestion(tt.question)
		if !ok {
			t.Errorf("MatchQuestion(%q) returned no match; want topic %s", tt.question, tt.wantTopic)
			continue
		}
		if match.Topic != tt.wantTopic {
			t.Errorf("MatchQuestion(%q) topic = %s; want %s", tt.question, match.Topic, tt.wantTopic)
		}
	}
}

func TestMatchQuestionWholeWords(t *testing.T) {
	// "whatever" contains "hate"; single-word triggers must match whole
	// words, not substrings.
	tests := []string{
		"Whatever happens happens",
		"Who is Krishna?",
		"What does chapter 2 teach?",
		"",
	}

	for _, question := range tests {
		if match, ok := MatchQuestion(question); ok {
			t.Errorf("MatchQuestion(%q) matched topic %s; want no match", question, match.Topic)
		}
	}
}

func TestMatchQuestionAnswerShape(t *testing.T) {
	match, ok := MatchQuestion("I am feeling stressed about my exams")
	if !ok {
		t.Fatal("MatchQuestion returned no match")
	}
	if !strings.HasPrefix(match.Answer, "The Bhagavad Gita offers profound wisdom about stress.") {
		t.Errorf("MatchQuestion answer opens with %q; want the stress preamble", match.Answer)
	}
	if !strings.Contains(match.Answer, "Key Teaching: Yoga-sthah kuru karmani (2.48)") {
		t.Error("MatchQuestion answer missing the key teaching line")
	}
	if !strings.Contains(match.Answer, "Would you like me to elaborate") {
		t.Error("MatchQuestion answer missing the closing prompt")
	}
	if len(match.Sources) == 0 || match.Sources[0] != "BG 2.47" {
		t.Errorf("MatchQuestion sources = %v; want the first to be BG 2.47", match.Sources)
	}
	if match.Confidence != 0.95 {
		t.Errorf("MatchQuestion confidence = %v; want 0.95", match.Confidence)
	}
}

func TestTopicOrder(t *testing.T) {
	names := Topics()
	if len(names) != 16 {
		t.Fatalf("Topics returned %d names; want 16", len(names))
	}

	indexOf := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}
	workLife := indexOf("work-life balance")
	balance := indexOf("balance")
	if workLife == -1 || balance == -1 {
		t.Fatalf("Topics missing work-life balance (%d) or balance (%d)", workLife, balance)
	}
	if workLife > balance {
		t.Errorf("work-life balance at %d ranks after balance at %d; phrase topics must match first", workLife, balance)
	}
}
