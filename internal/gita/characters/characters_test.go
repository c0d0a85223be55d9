package characters

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"Krishna", "Krishna", true},
		{"krishna", "Krishna", true},
		{"Govinda", "Krishna", true},
		{"PARTHA", "Arjuna", true},
		{"  Bhishma ", "Bhishma", true},
		{"Radheya", "Karna", true},
		{"Sauron", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		c, ok := Lookup(tt.name)
		if ok != tt.found {
			t.Errorf("Lookup(%q) found = %v; want %v", tt.name, ok, tt.found)
			continue
		}
		if ok && c.PrimaryName != tt.expected {
			t.Errorf("Lookup(%q) = %s; want %s", tt.name, c.PrimaryName, tt.expected)
		}
	}
}

func TestLookupFieldsPopulated(t *testing.T) {
	c, ok := Lookup("Arjuna")
	if !ok {
		t.Fatal("Arjuna missing from the character database")
	}
	if c.Description == "" || c.Role == "" {
		t.Errorf("Arjuna entry incomplete: %+v", c)
	}
	if c.Profile == "" {
		t.Error("Expected a detailed profile for Arjuna")
	}
}

func TestCorrectDirectAndVariant(t *testing.T) {
	tests := []struct {
		input     string
		expected  string
		wantScore float64
	}{
		{"krishna", "krishna", 1.0},
		{"Krsna", "krishna", 1.0},
		{"arjun", "arjuna", 1.0},
		{"bheeshma", "bhishma", 1.0},
		{"dharmaraja", "yudhishthira", 1.0},
		{"duryodhan", "duryodhana", 1.0},
	}

	for _, tt := range tests {
		got, score := Correct(tt.input)
		if got != tt.expected || score != tt.wantScore {
			t.Errorf("Correct(%q) = (%s, %.2f); want (%s, %.2f)", tt.input, got, score, tt.expected, tt.wantScore)
		}
	}
}

func TestCorrectFuzzy(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"krish", "krishna"},
		{"yudhistir", "yudhishthira"},
		{"bhisma", "bhishma"},
	}

	for _, tt := range tests {
		got, score := Correct(tt.input)
		if got != tt.expected {
			t.Errorf("Correct(%q) = %s; want %s", tt.input, got, tt.expected)
		}
		if score < correctionThreshold || score >= 1.0 {
			t.Errorf("Correct(%q) score = %.2f; want fuzzy score in [%.2f, 1)", tt.input, score, correctionThreshold)
		}
	}
}

func TestCorrectReservedWords(t *testing.T) {
	// "karma" is one edit from Karna and must never be corrected.
	for _, word := range []string{"karma", "dharma", "prana", "rama"} {
		if got, score := Correct(word); got != "" || score != 0 {
			t.Errorf("Correct(%q) = (%s, %.2f); want no match", word, got, score)
		}
	}
}

func TestCorrectUnknown(t *testing.T) {
	for _, word := range []string{"", "xyzzy", "television"} {
		if got, _ := Correct(word); got != "" {
			t.Errorf("Correct(%q) = %s; want no match", word, got)
		}
	}
}

func TestCorrectText(t *testing.T) {
	text := "Bheeshma was a great warrior, second only to karan and arjun in skill."

	corrected, corrections := CorrectText(text)

	if len(corrections) != 3 {
		t.Fatalf("Expected 3 corrections, got %d: %v", len(corrections), corrections)
	}
	if !strings.Contains(corrected, "Bhishma") {
		t.Errorf("Capitalized correction missing: %s", corrected)
	}
	if !strings.Contains(corrected, "karna") || !strings.Contains(corrected, "arjuna") {
		t.Errorf("Lowercase corrections missing: %s", corrected)
	}
	if strings.Contains(corrected, "Bheeshma") || strings.Contains(corrected, "karan") {
		t.Errorf("Original misspellings still present: %s", corrected)
	}
}

func TestCorrectTextLeavesVocabularyAlone(t *testing.T) {
	text := "What does the Gita say about karma and dharma?"

	corrected, corrections := CorrectText(text)

	if len(corrections) != 0 {
		t.Errorf("Expected no corrections, got %v", corrections)
	}
	if corrected != text {
		t.Errorf("Text changed: %s", corrected)
	}
}

func TestCorrectTextShortWords(t *testing.T) {
	corrected, corrections := CorrectText("Is he ok?")
	if len(corrections) != 0 || corrected != "Is he ok?" {
		t.Errorf("Short words must not be corrected: %q %v", corrected, corrections)
	}
}
