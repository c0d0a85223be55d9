package curated

// CatalogQuestion is an entry in the browsable catalog of commonly
// asked questions, used for "related questions" suggestions.
type CatalogQuestion struct {
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Keywords   []string `json:"-"`
	Difficulty string   `json:"difficulty"`
}

var questionCatalog = []CatalogQuestion{
	{
		Question:   "What is the main message of the Bhagavad Gita?",
		Category:   "Introduction",
		Keywords:   []string{"main message", "purpose", "essence", "core teaching"},
		Difficulty: "beginner",
	},
	{
		Question:   "Who is the speaker of the Bhagavad Gita?",
		Category:   "Introduction",
		Keywords:   []string{"speaker", "who spoke", "krishna", "arjuna"},
		Difficulty: "beginner",
	},
	{
		Question:   "What is the setting of the Bhagavad Gita?",
		Category:   "Introduction",
		Keywords:   []string{"setting", "where", "when", "context", "battlefield", "kurukshetra"},
		Difficulty: "beginner",
	},
	{
		Question:   "What is Karma Yoga according to the Gita?",
		Category:   "Karma Yoga",
		Keywords:   []string{"karma yoga", "action", "selfless service", "duty"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is Bhakti Yoga in the Gita?",
		Category:   "Bhakti Yoga",
		Keywords:   []string{"bhakti", "devotion", "love of God", "surrender"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is Jnana Yoga according to the Gita?",
		Category:   "Jnana Yoga",
		Keywords:   []string{"jnana", "knowledge", "wisdom", "self-realization"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the concept of Dharma in the Gita?",
		Category:   "Dharma & Duty",
		Keywords:   []string{"dharma", "duty", "righteousness", "moral order"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What does the Gita say about the soul?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"atman", "soul", "eternal", "reincarnation"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is Maya according to the Gita?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"maya", "illusion", "reality", "material world"},
		Difficulty: "advanced",
	},
	{
		Question:   "What are the three gunas mentioned in the Gita?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"gunas", "sattva", "rajas", "tamas", "qualities"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the significance of Arjuna's dilemma in the Gita?",
		Category:   "Characters & Stories",
		Keywords:   []string{"arjuna", "dilemma", "duty", "moral conflict"},
		Difficulty: "beginner",
	},
	{
		Question:   "How does the Gita describe the nature of God?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"god", "krishna", "brahman", "supreme"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the concept of Moksha in the Gita?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"moksha", "liberation", "freedom", "enlightenment"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the role of a guru according to the Gita?",
		Category:   "Spiritual Practice",
		Keywords:   []string{"guru", "teacher", "disciple", "spiritual guide"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita describe the process of meditation?",
		Category:   "Meditation & Yoga",
		Keywords:   []string{"meditation", "dhyana", "concentration", "mind control"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the Bhagavad Gita's view on work and action?",
		Category:   "Karma Yoga",
		Keywords:   []string{"work", "action", "karma", "duty", "nishkama karma"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the significance of the battlefield setting in the Gita?",
		Category:   "Teachings & Verses",
		Keywords:   []string{"battlefield", "kurukshetra", "symbolism", "metaphor"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita describe the relationship between the body and soul?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"body", "soul", "atman", "death", "eternal"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the concept of Yoga in the Bhagavad Gita?",
		Category:   "Meditation & Yoga",
		Keywords:   []string{"yoga", "union", "discipline", "path"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How can the teachings of the Gita be applied in daily life?",
		Category:   "Modern Application",
		Keywords:   []string{"daily life", "practical", "application", "modern"},
		Difficulty: "beginner",
	},
	{
		Question:   "What is the Bhagavad Gita's view on desire?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"desire", "kama", "attachment", "renunciation"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita describe the nature of the mind?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"mind", "manas", "control", "meditation"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the significance of the Bhagavad Gita in Hinduism?",
		Category:   "Introduction",
		Keywords:   []string{"significance", "importance", "hinduism", "scripture"},
		Difficulty: "beginner",
	},
	{
		Question:   "How does the Gita address the concept of time?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"time", "kala", "cycles", "eternity"},
		Difficulty: "advanced",
	},
	{
		Question:   "What is the Bhagavad Gita's teaching on non-attachment?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"non-attachment", "vairagya", "detachment", "renunciation"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita describe the process of creation?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"creation", "cosmology", "universe", "manifestation"},
		Difficulty: "advanced",
	},
	{
		Question:   "What is the Bhagavad Gita's view on caste and varna?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"caste", "varna", "social order", "duty"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita describe the nature of knowledge?",
		Category:   "Jnana Yoga",
		Keywords:   []string{"knowledge", "jnana", "wisdom", "self-realization"},
		Difficulty: "intermediate",
	},
	{
		Question:   "What is the concept of Ishvara in the Bhagavad Gita?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"ishvara", "god", "supreme being", "controller"},
		Difficulty: "intermediate",
	},
	{
		Question:   "How does the Gita address the problem of suffering?",
		Category:   "Philosophy & Concepts",
		Keywords:   []string{"suffering", "pain", "duhkha", "solution"},
		Difficulty: "intermediate",
	},
}
