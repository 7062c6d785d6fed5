package achievement

// Catalog lists every unlockable achievement.
var Catalog = []Achievement{
	{
		ID:          "first_guess",
		Title:       "🎵 First Timer",
		Description: "Make your first guess",
		Emoji:       "🎵",
		Criteria:    Criteria{Stat: StatTotalGuesses, Op: CompareGTE, Threshold: 1},
		Rarity:      RarityCommon,
	},
	{
		ID:          "first_correct",
		Title:       "🎯 Nailed It!",
		Description: "Get your first correct answer",
		Emoji:       "🎯",
		Criteria:    Criteria{Stat: StatCorrectGuesses, Op: CompareGTE, Threshold: 1},
		Rarity:      RarityCommon,
	},
	{
		ID:          "streak_3",
		Title:       "🔥 Hot Streak",
		Description: "Guess correctly 3 days in a row",
		Emoji:       "🔥",
		Criteria:    Criteria{Stat: StatCurrentStreak, Op: CompareGTE, Threshold: 3},
		Rarity:      RarityUncommon,
	},
	{
		ID:          "streak_7",
		Title:       "⚡ Lightning Streak",
		Description: "Guess correctly 7 days in a row",
		Emoji:       "⚡",
		Criteria:    Criteria{Stat: StatCurrentStreak, Op: CompareGTE, Threshold: 7},
		Rarity:      RarityRare,
	},
	{
		ID:          "streak_14",
		Title:       "💎 Diamond Streak",
		Description: "Guess correctly 14 days in a row",
		Emoji:       "💎",
		Criteria:    Criteria{Stat: StatCurrentStreak, Op: CompareGTE, Threshold: 14},
		Rarity:      RarityLegendary,
	},
	{
		ID:          "score_50",
		Title:       "⭐ Rising Star",
		Description: "Reach 50 total points",
		Emoji:       "⭐",
		Criteria:    Criteria{Stat: StatTotalScore, Op: CompareGTE, Threshold: 50},
		Rarity:      RarityUncommon,
	},
	{
		ID:          "score_100",
		Title:       "🌟 Music Master",
		Description: "Reach 100 total points",
		Emoji:       "🌟",
		Criteria:    Criteria{Stat: StatTotalScore, Op: CompareGTE, Threshold: 100},
		Rarity:      RarityRare,
	},
	{
		ID:          "score_250",
		Title:       "👑 80s Legend",
		Description: "Reach 250 total points",
		Emoji:       "👑",
		Criteria:    Criteria{Stat: StatTotalScore, Op: CompareGTE, Threshold: 250},
		Rarity:      RarityLegendary,
	},
	{
		ID:          "perfect_week",
		Title:       "🏆 Perfect Week",
		Description: "Get 7 correct answers in 7 days",
		Emoji:       "🏆",
		Criteria:    Criteria{Stat: StatPerfectWeeks, Op: CompareGTE, Threshold: 1},
		Rarity:      RarityEpic,
	},
	{
		ID:          "early_bird",
		Title:       "🌅 Early Bird",
		Description: "Play within 1 hour of song release",
		Emoji:       "🌅",
		Criteria:    Criteria{Stat: StatEarlyBirdPlays, Op: CompareGTE, Threshold: 1},
		Rarity:      RarityUncommon,
	},
}

// ByID returns the catalog entry with the given id, or nil.
func ByID(id string) *Achievement {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
