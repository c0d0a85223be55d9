package verseRef

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		question string
		chapter  int
		verse    int
		found    bool
	}{
		{"What does Bg 2.47 say?", 2, 47, true},
		{"Explain 18.66 please", 18, 66, true},
		{"What is verse 2.46 about?", 2, 46, true},
		{"verse 2: 46", 2, 46, true},
		{"Tell me about chapter 2 verse 47", 2, 47, true},
		{"What is the significance of Chapter 2, Verse 47?", 2, 47, true},
		{"chapter two verse forty six", 2, 46, true},
		{"chapter eighteen verse sixty-six", 18, 66, true},
		{"chapter nine verse one", 9, 1, true},
		{"What is karma yoga?", 0, 0, false},
		{"Call me at 192.168", 0, 0, false},
		{"In 1969.12 something happened", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		ref, ok := Parse(tt.question)
		if ok != tt.found {
			t.Errorf("Parse(%q) found = %v; want %v", tt.question, ok, tt.found)
			continue
		}
		if ok && (ref.Chapter != tt.chapter || ref.Verse != tt.verse) {
			t.Errorf("Parse(%q) = %d.%d; want %d.%d", tt.question, ref.Chapter, ref.Verse, tt.chapter, tt.verse)
		}
	}
}

func TestParseRejectsOutOfRange(t *testing.T) {
	tests := []string{
		"chapter 19 verse 1",
		"chapter 0 verse 5",
		"what about 2.300",
	}

	for _, q := range tests {
		if ref, ok := Parse(q); ok {
			t.Errorf("Parse(%q) = %s; want no match", q, ref)
		}
	}
}

func TestRefString(t *testing.T) {
	ref := Ref{Chapter: 2, Verse: 47}
	if ref.String() != "2.47" {
		t.Errorf("Ref.String() = %s; want 2.47", ref.String())
	}
}

func TestParseNumberWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"six", 6, true},
		{"eighteen", 18, true},
		{"forty six", 46, true},
		{"forty-six", 46, true},
		{"seventy two", 72, true},
		{"ten about", 10, true},
		{"about", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseNumberWords(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("parseNumberWords(%q) = (%d, %v); want (%d, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}
