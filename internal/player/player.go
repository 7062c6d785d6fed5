package player

import "banginOnBaseAPI/internal/song"

// NeverResolved is the lastGuessDay sentinel for a player who has not
// resolved any challenge yet. It sits below every valid day index.
const NeverResolved = -1

// Record is the per-wallet score row. Addresses are stored lower-cased.
type Record struct {
	Address      string `json:"address" db:"address"`
	Score        int    `json:"score" db:"score"`
	LastGuessDay int    `json:"last_guess_day" db:"last_guess_day"`
}

// GuessSubmission carries one guess into the scoring engine. A guess
// submitted through the on-chain path attaches its transaction hash; the
// engine treats both paths identically.
type GuessSubmission struct {
	Address         string  `json:"address"`
	Guess           string  `json:"guess"`
	TransactionHash *string `json:"transaction_hash,omitempty"`
}

type GuessResult struct {
	Correct         bool       `json:"correct"`
	AlreadyGuessed  bool       `json:"already_guessed,omitempty"`
	Message         string     `json:"message"`
	PointsEarned    int        `json:"points_earned"`
	TodaysSong      *song.Song `json:"todays_song,omitempty"`
	TransactionHash *string    `json:"transaction_hash,omitempty"`
}
