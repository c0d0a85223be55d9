package curated

// Frequently asked questions, checked after the richer QA pairs.
var faqList = []QAPair{
	{
		Question: "What is the Bhagavad Gita?",
		Answer: "The Bhagavad Gita, often referred to as the Gita, is a 700-verse Hindu scripture that is " +
			"part of the epic Mahabharata. It is a conversation between Prince Arjuna and Lord Krishna, who " +
			"serves as his charioteer. The Gita is set in a narrative framework of a dialogue between " +
			"Pandava prince Arjuna and his guide and charioteer Krishna.",
		Category:        "Introduction",
		VerseReferences: []string{"BG 1.1-46", "BG 2.1-72"},
		Keywords:        []string{"definition", "overview", "what is", "explain"},
	},
	{
		Question: "Who is the speaker of the Bhagavad Gita?",
		Answer: "The Bhagavad Gita is primarily a conversation between Lord Krishna and Arjuna. Lord " +
			"Krishna, who is recognized as the Supreme Personality of Godhead, serves as the speaker of the " +
			"Gita's divine wisdom, while Arjuna, the Pandava prince, is the recipient of this knowledge.",
		Category:        "Introduction",
		VerseReferences: []string{"BG 10.12-13", "BG 11.3-4"},
		Keywords:        []string{"speaker", "who said", "who spoke", "krishna"},
	},
	{
		Question: "What is the main message of the Bhagavad Gita?",
		Answer: "The main message of the Bhagavad Gita is the attainment of freedom or happiness through " +
			"selfless action, devotion to God, and the cultivation of spiritual knowledge. It teaches the " +
			"importance of doing one's duty (dharma) without attachment to the results, the nature of the " +
			"self (atman), and the ultimate reality (Brahman).",
		Category:        "Philosophy",
		VerseReferences: []string{"BG 2.47-50", "BG 3.19-20", "BG 18.46"},
		Keywords:        []string{"main message", "purpose", "core teaching", "essence"},
	},
	{
		Question: "What is Karma Yoga according to the Gita?",
		Answer: "Karma Yoga, as explained in the Bhagavad Gita, is the path of selfless action. It " +
			"involves performing one's prescribed duties without attachment to the results, dedicating all " +
			"actions to the Divine. Lord Krishna teaches that by working without selfish motives, one can " +
			"attain liberation (moksha) while still fulfilling their worldly responsibilities.",
		Category:        "Karma Yoga",
		VerseReferences: []string{"BG 2.47-48", "BG 3.4-9", "BG 5.10-12"},
		Keywords:        []string{"karma yoga", "selfless action", "duty", "action"},
	},
	{
		Question: "What is Bhakti Yoga in the Gita?",
		Answer: "Bhakti Yoga is the path of loving devotion to God. In the Gita, Lord Krishna explains " +
			"that through unwavering devotion and complete surrender to the Divine, one can attain the " +
			"highest spiritual realization. This path emphasizes developing a personal relationship with " +
			"God through prayer, worship, and remembrance.",
		Category:        "Bhakti Yoga",
		VerseReferences: []string{"BG 9.22-34", "BG 12.6-20"},
		Keywords:        []string{"bhakti", "devotion", "surrender", "love of god"},
	},
	{
		Question: "What is Jnana Yoga according to the Gita?",
		Answer: "Jnana Yoga is the path of knowledge and wisdom. The Gita teaches that through the " +
			"cultivation of spiritual knowledge and discernment between the eternal and temporary, one can " +
			"realize the true nature of the self and attain liberation. This involves studying sacred " +
			"texts, self-inquiry, and meditation under proper guidance.",
		Category:        "Jnana Yoga",
		VerseReferences: []string{"BG 4.33-42", "BG 13.7-11"},
		Keywords:        []string{"jnana", "knowledge", "wisdom", "self-realization"},
	},
	{
		Question: "What does the Gita say about meditation?",
		Answer: "The Bhagavad Gita describes meditation as the practice of focusing the mind on the " +
			"Divine. In Chapter 6, Krishna explains the process of Dhyana Yoga (the yoga of meditation), " +
			"which involves sitting in a clean place, holding the body steady, and focusing the mind on the " +
			"Supreme. The goal is to achieve mental discipline and ultimately, self-realization.",
		Category:        "Meditation",
		VerseReferences: []string{"BG 6.10-15", "BG 6.25-28"},
		Keywords:        []string{"meditation", "dhyana", "concentration", "mind control"},
	},
	{
		Question: "What is the concept of Dharma in the Gita?",
		Answer: "Dharma in the Bhagavad Gita refers to one's righteous duty or moral responsibility based " +
			"on their nature and position in life. Krishna emphasizes that it is better to perform one's " +
			"own dharma imperfectly than to perform another's dharma perfectly. The concept is central to " +
			"the Gita's teachings on right action and social order.",
		Category:        "Dharma",
		VerseReferences: []string{"BG 2.31-38", "BG 3.35", "BG 18.47"},
		Keywords:        []string{"dharma", "duty", "righteousness", "moral order"},
	},
	{
		Question: "Who was Arjuna in the Bhagavad Gita?",
		Answer: "Arjuna is the central human character in the Bhagavad Gita, a skilled archer and one of " +
			"the five Pandava brothers. He serves as the student and devotee to whom Lord Krishna imparts " +
			"the spiritual teachings of the Gita. Arjuna represents the human soul in search of divine " +
			"guidance and wisdom.",
		Category:        "Characters",
		VerseReferences: []string{"BG 1.20-46", "BG 11.1-4"},
		Keywords:        []string{"arjuna", "pandava", "warrior", "disciple"},
	},
	{
		Question: "What is the significance of the battlefield in the Gita?",
		Answer: "The battlefield of Kurukshetra, where the Bhagavad Gita is set, symbolizes the moral and " +
			"ethical struggles of human life. It represents the inner conflict between right and wrong, " +
			"duty and desire, and the eternal battle between the higher and lower aspects of human nature. " +
			"The Gita teaches how to face life's battles with wisdom and equanimity.",
		Category:        "Teachings",
		VerseReferences: []string{"BG 1.1", "BG 2.1-10"},
		Keywords:        []string{"battlefield", "kurukshetra", "war", "struggle"},
	},
	{
		Question: "How can the Gita's teachings be applied in modern life?",
		Answer: "The Bhagavad Gita's teachings remain highly relevant in modern life. Its principles of " +
			"selfless action, emotional equilibrium, mindfulness, and ethical living can help individuals " +
			"navigate contemporary challenges. The Gita's wisdom on managing stress, making decisions, " +
			"maintaining work-life balance, and finding purpose continues to inspire people worldwide.",
		Category:        "Modern Application",
		VerseReferences: []string{"BG 2.47-50", "BG 3.19-20", "BG 6.5-6"},
		Keywords:        []string{"modern life", "today's world", "application", "relevance"},
	},
	{
		Question: "What is the concept of the Atman in the Gita?",
		Answer: "In the Bhagavad Gita, the Atman refers to the eternal, unchanging self or soul that " +
			"exists within all living beings. Krishna teaches that the Atman is distinct from the physical " +
			"body and mind, indestructible, and beyond birth and death. Realizing one's true nature as " +
			"Atman leads to liberation from the cycle of birth and death.",
		Category:        "Philosophy",
		VerseReferences: []string{"BG 2.12-30", "BG 13.1-2"},
		Keywords:        []string{"atman", "soul", "self", "eternal"},
	},
	{
		Question: "What is the role of the guru in the Gita?",
		Answer: "The Bhagavad Gita emphasizes the importance of a spiritual teacher (guru) in guiding the " +
			"disciple on the path to self-realization. Krishna serves as the divine guru to Arjuna, " +
			"imparting transcendental knowledge. The Gita teaches that one should approach a guru with " +
			"humility, reverence, and a genuine desire to learn the truth.",
		Category:        "Teachings",
		VerseReferences: []string{"BG 4.34-35", "BG 13.7-11"},
		Keywords:        []string{"guru", "teacher", "disciple", "spiritual guide"},
	},
	{
		Question: "What is the concept of Maya in the Gita?",
		Answer: "Maya in the Bhagavad Gita refers to the illusory energy that causes living beings to " +
			"identify with the material world and forget their true spiritual nature. It is described as " +
			"Krishna's divine energy that is difficult to overcome, but through devotion and spiritual " +
			"knowledge, one can see beyond this illusion and realize the ultimate truth.",
		Category:        "Philosophy",
		VerseReferences: []string{"BG 7.14-15", "BG 7.25-26"},
		Keywords:        []string{"maya", "illusion", "material world", "reality"},
	},
	{
		Question: "What is the significance of the three gunas in the Gita?",
		Answer: "The three gunas (qualities or modes of material nature) are fundamental concepts in the " +
			"Bhagavad Gita. They are: Sattva (goodness, harmony), Rajas (passion, activity), and Tamas " +
			"(ignorance, inertia). These gunas influence all aspects of life and consciousness. The Gita " +
			"teaches that one should transcend these gunas to attain spiritual liberation.",
		Category:        "Philosophy",
		VerseReferences: []string{"BG 14.5-18", "BG 17.1-22"},
		Keywords:        []string{"gunas", "sattva", "rajas", "tamas", "nature"},
	},
	{
		Question: "What is the ultimate goal of life according to the Gita?",
		Answer: "The ultimate goal of life according to the Bhagavad Gita is to attain moksha (liberation) " +
			"from the cycle of birth and death and to achieve union with the Supreme (Brahman). This is " +
			"accomplished through self-realization, performing one's dharma without attachment, and " +
			"developing pure devotion to God.",
		Category:        "Philosophy",
		VerseReferences: []string{"BG 4.9", "BG 8.5-7", "BG 18.62-66"},
		Keywords:        []string{"goal of life", "liberation", "moksha"},
	},
}
