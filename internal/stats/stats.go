package stats

// PlayerStats is the denormalized per-wallet aggregate updated on every
// resolved guess. CorrectGuesses never exceeds TotalGuesses and
// CurrentStreak never exceeds LongestStreak.
type PlayerStats struct {
	TotalScore           int    `json:"total_score" db:"total_score"`
	TotalGuesses         int    `json:"total_guesses" db:"total_guesses"`
	CorrectGuesses       int    `json:"correct_guesses" db:"correct_guesses"`
	CurrentStreak        int    `json:"current_streak" db:"current_streak"`
	LongestStreak        int    `json:"longest_streak" db:"longest_streak"`
	DaysPlayed           int    `json:"days_played" db:"days_played"`
	PerfectWeeks         int    `json:"perfect_weeks" db:"perfect_weeks"`
	EarlyBirdPlays       int    `json:"early_bird_plays" db:"early_bird_plays"`
	AchievementsUnlocked int    `json:"achievements_unlocked" db:"achievements_unlocked"`
	LastPlayDate         string `json:"last_play_date,omitempty" db:"last_play_date"`
}

// Accuracy is correct guesses over total guesses, 0..100.
func (s *PlayerStats) Accuracy() float64 {
	if s.TotalGuesses == 0 {
		return 0
	}
	return float64(s.CorrectGuesses) / float64(s.TotalGuesses) * 100
}
