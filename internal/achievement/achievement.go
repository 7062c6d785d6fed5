package achievement

import (
	"time"

	"github.com/google/uuid"

	"banginOnBaseAPI/internal/stats"
)

type StatField string

const (
	StatTotalGuesses   StatField = "total_guesses"
	StatCorrectGuesses StatField = "correct_guesses"
	StatCurrentStreak  StatField = "current_streak"
	StatTotalScore     StatField = "total_score"
	StatPerfectWeeks   StatField = "perfect_weeks"
	StatEarlyBirdPlays StatField = "early_bird_plays"
)

type Comparison string

const (
	CompareGTE Comparison = ">="
	CompareGT  Comparison = ">"
	CompareEQ  Comparison = "=="
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Criteria is the unlock predicate: one stat compared against a threshold.
type Criteria struct {
	Stat      StatField  `json:"stat" db:"criteria_stat"`
	Op        Comparison `json:"op" db:"criteria_op"`
	Threshold int        `json:"threshold" db:"criteria_threshold"`
}

type Achievement struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Emoji       string   `json:"emoji" db:"emoji"`
	Criteria    Criteria `json:"criteria"`
	Rarity      Rarity   `json:"rarity" db:"rarity"`
}

// UserAchievement records an unlock. Unlocks are never revoked.
type UserAchievement struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Address       string    `json:"address" db:"address"`
	AchievementID string    `json:"achievement_id" db:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at" db:"unlocked_at"`
}

type AchievementWithStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

func statValue(s *stats.PlayerStats, field StatField) int {
	switch field {
	case StatTotalGuesses:
		return s.TotalGuesses
	case StatCorrectGuesses:
		return s.CorrectGuesses
	case StatCurrentStreak:
		return s.CurrentStreak
	case StatTotalScore:
		return s.TotalScore
	case StatPerfectWeeks:
		return s.PerfectWeeks
	case StatEarlyBirdPlays:
		return s.EarlyBirdPlays
	default:
		return 0
	}
}

// Met reports whether the criteria holds against the given stats.
func (c Criteria) Met(s *stats.PlayerStats) bool {
	v := statValue(s, c.Stat)
	switch c.Op {
	case CompareGTE:
		return v >= c.Threshold
	case CompareGT:
		return v > c.Threshold
	case CompareEQ:
		return v == c.Threshold
	default:
		return false
	}
}
