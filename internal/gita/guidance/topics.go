package guidance

// topics are matched in order. Phrase topics sit before the single words
// they contain so that "work-life balance" is never answered as "balance".
var topics = []Topic{
	{
		Name:     "hate",
		Triggers: []string{"hate", "hatred", "hateful"},
		Teaching: "Adveshta sarva-bhutanam maitrah karuna eva cha (12.13) - One who is not hateful towards any living being, who is friendly and compassionate.",
		Advice: "The Bhagavad Gita offers profound wisdom for handling hate and negative emotions. Here's how to apply these teachings:\n\n" +
			"1. **Understand the Nature of Hate (2.14-15)**\n" +
			"   - Recognize that hate is temporary and affects the mind, not your true self\n" +
			"   - Like heat and cold, pleasure and pain come and go; maintain equanimity\n\n" +
			"2. **Practice Detachment (2.47-48)**\n" +
			"   - Focus on your actions rather than others' reactions\n" +
			"   - Perform your duties without attachment to outcomes or others' opinions\n\n" +
			"3. **Cultivate Compassion (12.13-15)**\n" +
			"   - Develop friendliness and compassion for all beings\n" +
			"   - See the divine presence in everyone, even those who express hate\n\n" +
			"4. **Respond, Don't React (2.56-58)**\n" +
			"   - Maintain inner peace regardless of external circumstances\n" +
			"   - Control your mind and senses to respond with wisdom, not emotion\n\n" +
			"5. **Self-Reflection (6.5-6)**\n" +
			"   - Use others' hatred as an opportunity for self-improvement\n" +
			"   - Elevate yourself through your own efforts, not by putting others down",
		Example: "In the Mahabharata, when Duryodhana expressed intense hatred towards the Pandavas, " +
			"Lord Krishna advised them to respond with righteousness rather than hatred. He taught that " +
			"true strength lies in self-control and adherence to dharma, not in retaliation.\n\n" +
			"When faced with hate, remember that the Gita teaches us to see beyond temporary emotions " +
			"and connect with the eternal soul within all beings. By maintaining this perspective, " +
			"we can respond with wisdom rather than react with more negativity.",
		Verses: []string{"BG 12.13-15", "BG 2.14-15", "BG 2.47-48", "BG 2.56-58", "BG 6.5-6"},
	},
	{
		Name:     "stress",
		Triggers: []string{"stress", "stressed", "stressful", "pressure", "overwhelmed"},
		Teaching: "Yoga-sthah kuru karmani (2.48) - Perform your duty balanced in success and failure.",
		Advice: "The Gita teaches us to perform our duties without attachment to results. " +
			"When feeling stressed, focus on doing your best without worrying about outcomes. " +
			"Chapter 2, Verse 47 reminds us that you have control only over your actions, not the results.",
		Example: "Like Arjuna on the battlefield, we often face situations that cause stress and anxiety. " +
			"Krishna's advice to Arjuna in Chapter 2 about performing one's duty without attachment " +
			"to results is highly relevant to modern work-life balance challenges.",
		Verses: []string{"BG 2.47", "BG 2.48"},
	},
	{
		Name:     "anxiety",
		Triggers: []string{"anxiety", "anxious", "worried", "worry", "nervous"},
		Teaching: "Yoga karmasu kaushalam (2.50) - Yoga is skill in action.",
		Advice: "The Gita suggests developing equanimity in all situations. Practice mindfulness " +
			"and meditation to remain centered. Chapter 6 describes the practice of meditation " +
			"as a way to calm the mind and overcome anxiety.",
		Example: "Arjuna's anxiety before the battle (Chapter 1) mirrors modern performance anxiety. " +
			"Krishna's guidance to focus on righteous action rather than outcomes can help manage " +
			"anxiety in high-pressure situations like presentations or important meetings.",
		Verses: []string{"BG 2.50", "BG 6.10-17"},
	},
	{
		Name:     "anger",
		Triggers: []string{"anger", "angry", "rage", "temper"},
		Teaching: "Krodhad bhavati sammohah sammohat smriti-vibhramah (2.63) - From anger arises delusion, and from delusion, bewilderment of memory.",
		Advice: "The Gita traces anger to its root: dwelling on the objects of the senses breeds " +
			"attachment, attachment breeds desire, and thwarted desire becomes anger (2.62-63). " +
			"Rather than suppressing anger, notice the desire beneath it and loosen your grip on that " +
			"desire. Chapter 16, Verse 21 names anger one of the three gates to self-destruction, " +
			"alongside lust and greed, and advises giving all three up.",
		Example: "Among the Pandavas, Bhima was quickest to anger, yet the Mahabharata shows his rage " +
			"serving dharma only when tempered by Yudhishthira's restraint and Krishna's counsel. " +
			"The lesson is not that anger must never arise, but that it must never be allowed to steer.",
		Verses: []string{"BG 2.62-63", "BG 16.21"},
	},
	{
		Name:     "grief",
		Triggers: []string{"grief", "grieving", "grieve", "mourning"},
		Teaching: "Ashochyan anvashochas tvam prajna-vadamsh cha bhashase (2.11) - You grieve for those who should not be grieved for; the wise lament neither for the living nor for the dead.",
		Advice: "The Gita's response to grief is its very first teaching. The soul is never born and " +
			"never dies (2.20); what we mourn is the change of the body, which the soul puts on and " +
			"casts off like worn garments (2.22). Grief is honoured, not dismissed, but it is given a " +
			"larger frame: the one you grieve for continues, and so do you. Let the sorrow move " +
			"through you while holding to what is eternal.",
		Example: "The entire Gita begins with grief: Arjuna drops his bow, overwhelmed by sorrow for " +
			"those about to die (1.28-30). Krishna does not scold him for feeling it. He lifts " +
			"Arjuna's vision from the bodies on the field to the souls within them, and by the end " +
			"Arjuna stands and acts (18.73).",
		Verses: []string{"BG 2.11-13", "BG 2.20", "BG 2.22"},
	},
	{
		Name:     "fear",
		Triggers: []string{"fear", "afraid", "scared", "fearful"},
		Teaching: "Abhayam sattva-samshuddhih (16.1) - Fearlessness and purity of heart are divine qualities.",
		Advice: "The Gita treats fearlessness as the first of the divine qualities (16.1), grown from " +
			"two roots: knowledge that the self cannot be destroyed (2.17-19) and trust in the " +
			"Supreme. Krishna's final assurance is ma shuchah, do not despair: surrender and you are " +
			"protected (18.66). When fear rises, act on your duty anyway; freedom from attachment, " +
			"fear and anger comes through taking refuge in wisdom (4.10).",
		Example: "Arjuna begins the Gita trembling, his bow slipping from his hand (1.29-30). Nothing " +
			"about the battle changes by Chapter 18, yet his fear is gone, because his understanding " +
			"changed. The Gita's cure for fear is not removing the threat but knowing what cannot be " +
			"threatened.",
		Verses: []string{"BG 16.1", "BG 4.10", "BG 18.66"},
	},
	{
		Name:     "purpose",
		Triggers: []string{"purpose", "meaning"},
		Teaching: "Karmany evadhikaras te ma phalesu kadachana (2.47) - You have a right to perform your prescribed duties, but you are not entitled to the fruits of your actions.",
		Advice: "The Gita teaches that true purpose is found in selfless action. Rather than focusing on results, " +
			"concentrate on doing your best in your current responsibilities. Chapter 3 explains how selfless " +
			"action leads to both material and spiritual fulfillment.",
		Example: "Krishna advised Arjuna to fight not for victory or kingdom, but because it was his duty as a warrior. " +
			"Similarly, we can find purpose in doing our best in whatever role we find ourselves, " +
			"without attachment to specific outcomes.",
		Verses: []string{"BG 2.47", "BG 3.19"},
	},
	{
		Name:     "failure",
		Triggers: []string{"failure", "failed", "failing", "fail"},
		Teaching: "Karmany evadhikaras te ma phaleshu kadachana (2.47) - You have a right to perform your duty, but not to the fruits of action.",
		Advice: "The Gita teaches that failure and success are part of life's journey. What matters is " +
			"performing your duty with full dedication. Chapter 2, Verse 50 explains how to maintain " +
			"equanimity in both success and failure.",
		Example: "Even great warriors like Arjuna faced moments of doubt and perceived failure. " +
			"The entire Bhagavad Gita is essentially a dialogue that begins when Arjuna feels " +
			"like a failure before the battle even begins.",
		Verses: []string{"BG 2.47", "BG 2.50"},
	},
	{
		Name:     "relationships",
		Triggers: []string{"relationship", "relationships", "marriage", "friendship"},
		Teaching: "Vidyavinayasampanne brahmane gavi hastini (5.18) - The wise see with equal vision a learned brahmin, a cow, an elephant, a dog, and a dog-eater.",
		Advice: "The Gita teaches us to see the divine in all beings. In relationships, practice " +
			"equality, respect, and compassion. Chapter 12 describes the qualities of a true devotee, " +
			"including being friendly and compassionate to all.",
		Example: "Krishna's relationship with Arjuna demonstrates the ideal of spiritual friendship, " +
			"where the focus is on uplifting each other towards higher consciousness rather than " +
			"mere social or emotional support.",
		Verses: []string{"BG 5.18", "BG 12.13-14"},
	},
	{
		Name:     "decision-making",
		Triggers: []string{"decision", "decisions", "choice", "choices", "choose", "deciding"},
		Teaching: "Tasmat sarveshu kaleshu mam anusmara yudhya cha (8.7) - Therefore, always think of Me and fight.",
		Advice: "When facing difficult decisions, seek inner wisdom through meditation and reflection. " +
			"The Gita advises us to connect with our higher self before making important choices. " +
			"Chapter 18 discusses different types of knowledge and decision-making processes.",
		Example: "Arjuna's dilemma on the battlefield (Chapter 1) represents the difficult choices we all face. " +
			"Krishna doesn't make the decision for him but provides the wisdom to choose wisely.",
		Verses: []string{"BG 8.7", "BG 18.63"},
	},
	{
		Name:     "success",
		Triggers: []string{"success", "successful", "succeed", "achievement"},
		Teaching: "Yogah karmasu kaushalam (2.50) - Yoga is excellence in work.",
		Advice: "True success, according to the Gita, is not just material achievement but self-mastery. " +
			"Chapter 6 describes the balanced state of a yogi who remains undisturbed in success and failure alike.",
		Example: "Krishna explains to Arjuna that real success lies in performing one's duty with dedication, " +
			"without attachment to results - a principle that can transform how we approach our careers " +
			"and personal goals.",
		Verses: []string{"BG 2.50", "BG 6.22"},
	},
	{
		Name:     "career",
		Triggers: []string{"career", "job", "profession", "promotion"},
		Teaching: "Sve sve karmany abhiratah samsiddhim labhate narah (18.45) - By following one's natural inclinations and duties, one attains perfection.",
		Advice: "The Gita advises us to discover and follow our natural inclinations and talents (svadharma). " +
			"Rather than chasing after prestigious careers, find work that aligns with your nature and skills. " +
			"Chapter 18 describes how different types of work suit different natures.",
		Example: "Arjuna was a warrior by nature (kshatriya). The Gita teaches that we find fulfillment " +
			"not by imitating others but by perfecting our unique path. Like Arjuna, we should focus on " +
			"excelling in our natural strengths rather than trying to be someone we're not.",
		Verses: []string{"BG 18.45", "BG 18.47"},
	},
	{
		Name:     "feeling lost",
		Triggers: []string{"lost"},
		Teaching: "Tasmat sarva-bhuteshu mam anusmara yudhya cha (8.7) - Therefore, remember Me at all times and fight.",
		Advice: "When feeling lost, the Gita advises connecting with your higher purpose. " +
			"Chapter 7 explains that those who seek wisdom and meaning will find it. " +
			"The key is to continue performing your duties while seeking deeper understanding.",
		Example: "Arjuna felt completely lost at the beginning of the Gita, unsure of his path. " +
			"Krishna's guidance helped him see his situation with clarity and purpose. " +
			"Similarly, when we feel lost, we can seek wisdom and continue acting with integrity.",
		Verses: []string{"BG 8.7", "BG 7.16"},
	},
	{
		Name:     "work-life balance",
		Triggers: []string{"work-life balance", "work life balance", "balance work", "balancing work"},
		Teaching: "Yogasthah kuru karmani (2.48) - Perform your duty balanced in success and failure. Such equanimity is called yoga.",
		Advice: "The Gita's approach to work-life balance is rooted in the concept of 'Yoga' - union through balance. " +
			"Here's a deeper dive into applying these principles:\n\n" +
			"1. **The Foundation: Right Understanding (2.11-13, 2.16-17)**\n" +
			"   - Recognize the eternal nature of the soul beyond temporary work-life situations\n" +
			"   - Understand that true fulfillment comes from within, not external achievements\n" +
			"   - See work as an offering (yajna) rather than just a means to an end (3.9-10)\n\n" +
			"2. **Daily Practice (6.10-17)**\n" +
			"   - Begin and end your day with meditation or reflection (6.10-11)\n" +
			"   - Practice moderation in work, rest, diet, and recreation (6.16-17)\n" +
			"   - Cultivate contentment (santosha) with what comes your way (2.64-65)\n\n" +
			"3. **Practical Integration (3.5-9, 18.45-47)**\n" +
			"   - Perform your duties according to your nature (svadharma)\n" +
			"   - Set clear boundaries between different life domains\n" +
			"   - Practice being fully present in each activity (2.50)\n\n" +
			"4. **Overcoming Challenges (2.14-15, 2.47-48)**\n" +
			"   - Accept the temporary nature of both pleasure and pain\n" +
			"   - Focus on your efforts, not outcomes (2.47)\n" +
			"   - Maintain equanimity in success and failure (2.48)",
		Example: "Krishna's life exemplifies perfect work-life integration. As a king, he managed the affairs of Dvaraka; " +
			"as a warrior, he fought in the Kurukshetra war; as a spiritual teacher, he imparted the Gita's wisdom; " +
			"and as a friend, he was always available to his devotees. The Gita itself was spoken in the midst of " +
			"a battlefield, showing that spiritual wisdom isn't separate from daily life but should permeate all our actions.\n\n" +
			"Arjuna's transformation throughout the Gita also demonstrates this balance. He begins overwhelmed by life's " +
			"complexities (1.28-30) but learns to act with wisdom and detachment (18.73). His journey shows that " +
			"true balance comes not from perfect external circumstances but from inner wisdom and perspective.",
		Verses: []string{"BG 2.48", "BG 6.16-17", "BG 3.9", "BG 18.45-47"},
	},
	{
		Name:     "balance",
		Triggers: []string{"balance", "balanced", "equanimity"},
		Teaching: "Samatvam yoga uchyate (2.48) - Evenness of mind is called yoga.",
		Advice: "The Gita teaches that true balance comes from maintaining equanimity in all situations. " +
			"Rather than dividing life into separate compartments, see all activities as opportunities " +
			"for spiritual growth. Chapter 6 explains how to remain centered amidst life's dualities.",
		Example: "Arjuna learned to maintain his center whether in the peaceful environment of the forest " +
			"or on the chaotic battlefield. Similarly, we can find balance by keeping our consciousness " +
			"anchored in higher principles regardless of external circumstances.",
		Verses: []string{"BG 2.48", "BG 6.7"},
	},
	{
		Name:     "time management",
		Triggers: []string{"time management", "manage time", "managing time", "manage my time"},
		Teaching: "Kalo 'smi loka-kshaya-krit (11.32) - Time I am, the great destroyer of worlds.",
		Advice: "The Gita teaches that time is the most powerful force. For effective time management: " +
			"1. Prioritize duties according to your life stage and responsibilities (3.8) " +
			"2. Begin your day with spiritual practices (6.10-14) " +
			"3. Work with full concentration during designated times (2.50) " +
			"4. Take regular breaks for renewal (6.11)",
		Example: "Krishna's life demonstrates perfect time management - he was never in a hurry, yet everything " +
			"was accomplished at the right moment. His teaching to Arjuna about the importance of timely " +
			"action (kala) shows that understanding time's nature is key to effective living.",
		Verses: []string{"BG 11.32", "BG 3.8", "BG 2.50"},
	},
}
