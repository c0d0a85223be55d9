// Package guidance maps personal-struggle questions (stress, grief, career
// doubt) to hand-written advice drawn from the Bhagavad Gita, each entry
// anchored to a Sanskrit teaching and its verse references.
package guidance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitalabs/GitaAPI/internal/config"
)

// Topic is one life situation the guidance table can speak to.
type Topic struct {
	Name string
	// Triggers select this topic: single words must match a whole word of
	// the question, phrases match anywhere in it.
	Triggers []string
	Teaching string
	Advice   string
	Example  string
	Verses   []string
}

// Match is a guidance answer selected for a user question.
type Match struct {
	Topic      string
	Answer     string
	Sources    []string
	Confidence float64
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// MatchQuestion returns composed guidance when the question names a life
// situation the table covers. Topics are checked in order, so "work-life
// balance" wins over plain "balance".
func MatchQuestion(question string) (Match, bool) {
	q := strings.ToLower(question)
	words := toWordSet(wordPattern.FindAllString(q, -1))

	for _, topic := range topics {
		if !topicTriggered(topic, q, words) {
			continue
		}
		return Match{
			Topic:      topic.Name,
			Answer:     composeAnswer(topic),
			Sources:    topic.Verses,
			Confidence: config.GuidanceAnswerConfidence,
		}, true
	}
	return Match{}, false
}

// Topics lists every supported topic name in matching order.
func Topics() []string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

func topicTriggered(topic Topic, question string, words map[string]struct{}) bool {
	for _, trigger := range topic.Triggers {
		if strings.ContainsAny(trigger, " -") {
			if strings.Contains(question, trigger) {
				return true
			}
			continue
		}
		if _, ok := words[trigger]; ok {
			return true
		}
	}
	return false
}

func composeAnswer(topic Topic) string {
	return fmt.Sprintf(
		"The Bhagavad Gita offers profound wisdom about %s.\n\n"+
			"Key Teaching: %s\n\n"+
			"Advice: %s\n\n"+
			"Relevant Example: %s\n\n"+
			"Would you like me to elaborate on any specific aspect of this teaching?",
		topic.Name, topic.Teaching, topic.Advice, topic.Example)
}

func toWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
