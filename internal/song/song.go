package song

import (
	"fmt"
	"time"
)

// Hints are the three clues shown to the player before guessing.
type Hints struct {
	Emoji  string `json:"emoji"`
	Lyric  string `json:"lyric"`
	Trivia string `json:"trivia"`
}

type Song struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	Hints  Hints  `json:"hints"`
}

const (
	// StartTimestamp is Feb 1, 2024 00:00:00 UTC, the epoch of day 0.
	StartTimestamp = 1706745600

	SecondsPerDay = 86400

	PointsPerCorrectGuess = 5
)

// TodayIndex maps wall-clock time to a day offset from the epoch,
// wrapping around once the catalog is exhausted.
func TodayIndex(now time.Time) int {
	elapsed := now.Unix() - StartTimestamp
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/SecondsPerDay) % len(Catalog)
}

// ForDay returns the challenge for a day index.
func ForDay(dayIndex int) (*Song, error) {
	if len(Catalog) == 0 {
		return nil, fmt.Errorf("song catalog is empty")
	}
	if dayIndex < 0 {
		return nil, fmt.Errorf("invalid day index %d", dayIndex)
	}
	return &Catalog[dayIndex%len(Catalog)], nil
}

// ValidateCatalog is called at startup so a misconfigured catalog fails
// fast instead of at guess time.
func ValidateCatalog() error {
	if len(Catalog) == 0 {
		return fmt.Errorf("song catalog is empty")
	}
	for i, s := range Catalog {
		if s.Title == "" || s.Artist == "" {
			return fmt.Errorf("song %d (id %d) is missing title or artist", i, s.ID)
		}
	}
	return nil
}
