package curated

import (
	"fmt"
	"strings"
)

// Chapter is one of the eighteen chapters of the Bhagavad Gita.
type Chapter struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func (c Chapter) String() string {
	return fmt.Sprintf("Chapter %d: %s - %s", c.Number, c.Title, c.Summary)
}

var chapters = []Chapter{
	{1, "Arjuna's Dilemma", "Observing the Armies on the Battlefield of Kurukshetra. Arjuna is overcome with grief and refuses to fight."},
	{2, "The Eternal Reality of the Soul's Immortality", "Krishna begins teaching Arjuna about the eternal nature of the soul and the importance of duty."},
	{3, "Karma-yoga", "The Eternal Duties of Human Beings - Krishna explains the concept of selfless action and performing one's duty without attachment to results."},
	{4, "Approaching the Ultimate Truth", "Krishna reveals His divine nature and explains the purpose of His periodic descents to Earth."},
	{5, "Action and Renunciation", "The path of knowledge and the path of selfless action both lead to the same goal."},
	{6, "The Science of Self-Realization", "The practice of meditation and the characteristics of a perfect yogi are described."},
	{7, "Knowledge of the Ultimate Truth", "Krishna explains His divine and material energies and how to know Him completely."},
	{8, "Attaining the Supreme", "The nature of the Supreme, the process of leaving the body, and the destination of different types of yogis."},
	{9, "The Most Confidential Knowledge", "The most secret wisdom of the Gita is revealed: pure devotional service to Krishna."},
	{10, "The Infinite Glories of the Supreme", "Krishna describes His divine manifestations and opulences."},
	{11, "The Universal Form", "Arjuna requests to see Krishna's universal form and is granted divine vision to behold it."},
	{12, "The Path of Devotion", "The process of devotional service and the characteristics of devotees are described."},
	{13, "The Individual and the Ultimate", "The difference between the body, the soul, and the Supersoul is explained."},
	{14, "The Three Modes of Material Nature", "The three gunas (modes of material nature) and their influence on living entities."},
	{15, "The Yoga of the Supreme Person", "The nature of the material world and the path to liberation are described."},
	{16, "The Divine and Demoniac Natures", "The divine and demoniac qualities of living beings are contrasted."},
	{17, "The Three Kinds of Faith", "The three types of faith and their relationship to the three modes of material nature."},
	{18, "Final Revelations of the Ultimate Truth", "The conclusion of the Gita, summarizing the paths of knowledge, action, and devotion."},
}

// ChapterSummary returns the chapter with the given number, 1 through 18.
func ChapterSummary(number int) (Chapter, bool) {
	if number < 1 || number > len(chapters) {
		return Chapter{}, false
	}
	return chapters[number-1], true
}

// AllChapterSummaries returns every chapter summary as a single block of text.
func AllChapterSummaries() string {
	lines := make([]string, len(chapters))
	for i, c := range chapters {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n\n")
}
