package characters

import "strings"

// Character is one figure from the Bhagavad Gita together with the
// alternative names a reader may use for them.
type Character struct {
	PrimaryName string   `json:"primary_name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
	// Profile is filled for the principal figures only.
	Profile string `json:"profile,omitempty"`
}

// Keyed by the lowercase primary name.
var characterDB = map[string]Character{
	"krishna": {
		PrimaryName: "Krishna",
		Aliases:     []string{"Krsna", "Govinda", "Madhava", "Hari", "Vasudeva", "Keshava", "Mukunda"},
		Description: "The Supreme Personality of Godhead, speaker of the Bhagavad Gita",
		Role:        "Divine Charioteer and Spiritual Guide",
		Profile: "Krishna serves as Arjuna's charioteer and spiritual preceptor. " +
			"Omniscient and compassionate, he embodies dharma and perfect detachment, and his teachings " +
			"reveal the nature of the eternal soul, selfless action (karma yoga), devotion (bhakti) and " +
			"the universal form (Vishvarupa). He is the source of all spiritual and material worlds and " +
			"the ultimate object of devotion.",
	},
	"arjuna": {
		PrimaryName: "Arjuna",
		Aliases:     []string{"Partha", "Dhananjaya", "Gudakesha", "Kaunteya", "Parantapa", "Bharata"},
		Description: "The mighty warrior prince and devotee of Lord Krishna",
		Role:        "Main Disciple and Prince of Kuru Dynasty",
		Profile: "Arjuna represents the human soul in search of truth. Courageous yet compassionate, " +
			"the greatest archer of his time, he is struck by moral conflict when faced with fighting his " +
			"own relatives. His surrender to Krishna's wisdom marks the path from confusion to " +
			"enlightenment, and he embodies the ideal devotee who acts under divine guidance.",
	},
	"yudhishthira": {
		PrimaryName: "Yudhishthira",
		Aliases:     []string{"Dharmaraja", "Ajatashatru", "Pandava"},
		Description: "Eldest of the Pandava brothers, known for his righteousness",
		Role:        "Righteous King and Pandava Prince",
	},
	"bhima": {
		PrimaryName: "Bhima",
		Aliases:     []string{"Vrikodara", "Bhimasena"},
		Description: "Second Pandava brother, known for his immense strength",
		Role:        "Mighty Warrior of the Pandavas",
	},
	"nakula": {
		PrimaryName: "Nakula",
		Aliases:     []string{"Madri-nandana"},
		Description: "One of the twin Pandava brothers, skilled in swordsmanship",
		Role:        "Pandava Prince and Warrior",
	},
	"sahadeva": {
		PrimaryName: "Sahadeva",
		Aliases:     []string{"Madri-suta"},
		Description: "Youngest Pandava brother, known for his wisdom and knowledge",
		Role:        "Pandava Prince and Strategist",
	},
	"duryodhana": {
		PrimaryName: "Duryodhana",
		Aliases:     []string{"Suyodhana", "Kaurava"},
		Description: "Eldest Kaurava brother and main antagonist of the Mahabharata",
		Role:        "Kaurava Prince and Rival to the Pandavas",
		Profile: "Duryodhana's jealousy of the Pandavas drives the epic's central conflict. A skilled " +
			"mace fighter and charismatic leader, his entitlement and refusal to accept the Pandavas' " +
			"rights lead to the great war. He represents the unenlightened ego and the destructive power " +
			"of unchecked ambition and envy.",
	},
	"dushasana": {
		PrimaryName: "Dushasana",
		Aliases:     []string{},
		Description: "Second Kaurava brother, known for dragging Draupadi",
		Role:        "Kaurava Prince",
	},
	"dronacharya": {
		PrimaryName: "Dronacharya",
		Aliases:     []string{"Drona", "Dronacarya"},
		Description: "Teacher of both Pandavas and Kauravas in military arts",
		Role:        "Royal Guru and Military Trainer",
	},
	"kripacharya": {
		PrimaryName: "Kripacharya",
		Aliases:     []string{"Kripa"},
		Description: "Teacher of the Kuru princes and a great warrior",
		Role:        "Royal Priest and Teacher",
	},
	"bhishma": {
		PrimaryName: "Bhishma",
		Aliases:     []string{"Devavrata", "Gangeya", "Shantanu-nandana"},
		Description: "Grandsire of the Kuru dynasty, took a vow of celibacy",
		Role:        "Elder Statesman and Commander of Kaurava Army",
		Profile: "Grandfather to both Pandavas and Kauravas, Bhishma is caught between duty and " +
			"morality. Bound by his vow of celibacy and loyalty to the throne of Hastinapura, he fights " +
			"for the Kauravas despite his love for the Pandavas. Blessed with the boon of choosing the " +
			"time of his own death, he lay on a bed of arrows teaching dharma before leaving his body. " +
			"His life shows how even righteousness can become a form of attachment.",
	},
	"dhritarashtra": {
		PrimaryName: "Dhritarashtra",
		Aliases:     []string{},
		Description: "Blind king and father of the Kauravas",
		Role:        "King of Hastinapura",
		Profile: "Physically blind and metaphorically blind to dharma, Dhritarashtra is weak-willed " +
			"and overly attached to his sons. His inability to restrain Duryodhana and his partiality " +
			"lead to the great war. He represents the dangers of attachment and poor leadership.",
	},
	"vidura": {
		PrimaryName: "Vidura",
		Aliases:     []string{"Kshatri"},
		Description: "Half-brother to Dhritarashtra, known for his wisdom",
		Role:        "Prime Minister and Advisor",
	},
	"sanjaya": {
		PrimaryName: "Sanjaya",
		Aliases:     []string{},
		Description: "Dhritarashtra's charioteer and minister, narrator of the Bhagavad Gita",
		Role:        "Narrator and Advisor",
		Profile: "Blessed with divine vision by the sage Vyasa, Sanjaya sees the events at " +
			"Kurukshetra from afar and recounts them to the blind king Dhritarashtra. His impartial " +
			"narration frames the whole of the Bhagavad Gita.",
	},
	"karna": {
		PrimaryName: "Karna",
		Aliases:     []string{"Radheya", "Vaikartana", "Sutaputra"},
		Description: "Eldest son of Kunti, raised by a charioteer, ally of Duryodhana",
		Role:        "Mighty Warrior and Kaurava Ally",
	},
	"drupada": {
		PrimaryName: "Drupada",
		Aliases:     []string{"Yajnasena"},
		Description: "King of Panchala, father of Draupadi and Dhrishtadyumna",
		Role:        "Ally of the Pandavas",
	},
	"draupadi": {
		PrimaryName: "Draupadi",
		Aliases:     []string{"Krishnaa", "Panchali", "Yajnaseni"},
		Description: "Wife of the Pandavas, daughter of King Drupada",
		Role:        "Queen of the Pandavas",
	},
	"shakuni": {
		PrimaryName: "Shakuni",
		Aliases:     []string{"Saubala"},
		Description: "Maternal uncle of Duryodhana, mastermind behind the dice game",
		Role:        "Kaurava Advisor and Strategist",
	},
	"indra": {
		PrimaryName: "Indra",
		Aliases:     []string{"Sakra", "Devaraja", "Purandara"},
		Description: "King of the Devas and father of Arjuna",
		Role:        "Vedic Deity",
	},
	"surya": {
		PrimaryName: "Surya",
		Aliases:     []string{"Vivasvan", "Aditya"},
		Description: "Sun god and father of Karna",
		Role:        "Solar Deity",
	},
	"yama": {
		PrimaryName: "Yama",
		Aliases:     []string{"Mrityu"},
		Description: "God of death and justice, father of Yudhishthira",
		Role:        "Deity of Death and Dharma",
	},
	"vayu": {
		PrimaryName: "Vayu",
		Aliases:     []string{"Pavana"},
		Description: "God of wind and father of Bhima",
		Role:        "Vedic Deity",
	},
	"vyasa": {
		PrimaryName: "Vyasa",
		Aliases:     []string{"Vedavyasa", "Krishna Dvaipayana"},
		Description: "Compiler of the Vedas and author of the Mahabharata",
		Role:        "Sage and Author",
	},
	"parashurama": {
		PrimaryName: "Parashurama",
		Aliases:     []string{"Bhargava", "Jamadagnya"},
		Description: "Sixth avatar of Vishnu, teacher of Bhishma, Drona, and Karna",
		Role:        "Warrior Sage",
	},
	"abhimanyu": {
		PrimaryName: "Abhimanyu",
		Aliases:     []string{"Arjuni", "Subhadra-nandana"},
		Description: "Son of Arjuna and Subhadra, married to Uttara",
		Role:        "Pandava Prince and Warrior",
	},
	"gandhari": {
		PrimaryName: "Gandhari",
		Aliases:     []string{},
		Description: "Wife of Dhritarashtra and mother of the Kauravas",
		Role:        "Queen Mother of the Kauravas",
	},
	"kunti": {
		PrimaryName: "Kunti",
		Aliases:     []string{"Pritha"},
		Description: "Mother of the Pandavas (except Sahadeva and Nakula)",
		Role:        "Mother of the Pandavas",
	},
	"madri": {
		PrimaryName: "Madri",
		Aliases:     []string{},
		Description: "Second wife of Pandu, mother of Nakula and Sahadeva",
		Role:        "Mother of the Pandava Twins",
	},
}

// Lookup resolves a name or alias, case-insensitively, to its character.
func Lookup(name string) (Character, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Character{}, false
	}
	if c, ok := characterDB[key]; ok {
		return c, true
	}
	for _, c := range characterDB {
		for _, alias := range c.Aliases {
			if strings.ToLower(alias) == key {
				return c, true
			}
		}
	}
	return Character{}, false
}

// Count reports the number of known characters.
func Count() int {
	return len(characterDB)
}
