package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"banginOnBaseAPI/internal/achievement"
	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/stats"
)

// PostgresStore persists player state in Postgres via pgxpool.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the game tables if they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		address        TEXT PRIMARY KEY,
		score          INTEGER NOT NULL DEFAULT 0,
		last_guess_day INTEGER NOT NULL DEFAULT -1
	);
	CREATE TABLE IF NOT EXISTS player_stats (
		address               TEXT PRIMARY KEY,
		total_score           INTEGER NOT NULL DEFAULT 0,
		total_guesses         INTEGER NOT NULL DEFAULT 0,
		correct_guesses       INTEGER NOT NULL DEFAULT 0,
		current_streak        INTEGER NOT NULL DEFAULT 0,
		longest_streak        INTEGER NOT NULL DEFAULT 0,
		days_played           INTEGER NOT NULL DEFAULT 0,
		perfect_weeks         INTEGER NOT NULL DEFAULT 0,
		early_bird_plays      INTEGER NOT NULL DEFAULT 0,
		achievements_unlocked INTEGER NOT NULL DEFAULT 0,
		last_play_date        TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS user_achievements (
		id             UUID PRIMARY KEY,
		address        TEXT NOT NULL,
		achievement_id TEXT NOT NULL,
		unlocked_at    TIMESTAMPTZ NOT NULL,
		UNIQUE (address, achievement_id)
	);
	`
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetRecord(ctx context.Context, address string) (*player.Record, error) {
	query := `
	SELECT address, score, last_guess_day
	FROM players
	WHERE address = $1
	`

	rec := &player.Record{}
	err := s.db.QueryRow(ctx, query, address).Scan(&rec.Address, &rec.Score, &rec.LastGuessDay)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player record: %w", err)
	}

	return rec, nil
}

func (s *PostgresStore) PutRecord(ctx context.Context, rec *player.Record) error {
	query := `
	INSERT INTO players (address, score, last_guess_day)
	VALUES ($1, $2, $3)
	ON CONFLICT (address)
	DO UPDATE SET score = $2, last_guess_day = $3
	`

	if _, err := s.db.Exec(ctx, query, rec.Address, rec.Score, rec.LastGuessDay); err != nil {
		return fmt.Errorf("failed to save player record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRecords(ctx context.Context) ([]*player.Record, error) {
	query := `
	SELECT address, score, last_guess_day
	FROM players
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list player records: %w", err)
	}
	defer rows.Close()

	var records []*player.Record
	for rows.Next() {
		rec := &player.Record{}
		if err := rows.Scan(&rec.Address, &rec.Score, &rec.LastGuessDay); err != nil {
			return nil, fmt.Errorf("failed to scan player record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read player records: %w", err)
	}

	return records, nil
}

func (s *PostgresStore) GetStats(ctx context.Context, address string) (*stats.PlayerStats, error) {
	query := `
	SELECT total_score, total_guesses, correct_guesses, current_streak, longest_streak,
	       days_played, perfect_weeks, early_bird_plays, achievements_unlocked, last_play_date
	FROM player_stats
	WHERE address = $1
	`

	st := &stats.PlayerStats{}
	err := s.db.QueryRow(ctx, query, address).Scan(
		&st.TotalScore,
		&st.TotalGuesses,
		&st.CorrectGuesses,
		&st.CurrentStreak,
		&st.LongestStreak,
		&st.DaysPlayed,
		&st.PerfectWeeks,
		&st.EarlyBirdPlays,
		&st.AchievementsUnlocked,
		&st.LastPlayDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return st, nil
}

func (s *PostgresStore) PutStats(ctx context.Context, address string, st *stats.PlayerStats) error {
	query := `
	INSERT INTO player_stats (address, total_score, total_guesses, correct_guesses, current_streak,
		longest_streak, days_played, perfect_weeks, early_bird_plays, achievements_unlocked, last_play_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (address)
	DO UPDATE SET
		total_score = $2, total_guesses = $3, correct_guesses = $4, current_streak = $5,
		longest_streak = $6, days_played = $7, perfect_weeks = $8, early_bird_plays = $9,
		achievements_unlocked = $10, last_play_date = $11
	`

	_, err := s.db.Exec(ctx, query, address,
		st.TotalScore,
		st.TotalGuesses,
		st.CorrectGuesses,
		st.CurrentStreak,
		st.LongestStreak,
		st.DaysPlayed,
		st.PerfectWeeks,
		st.EarlyBirdPlays,
		st.AchievementsUnlocked,
		st.LastPlayDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save player stats: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListUnlocked(ctx context.Context, address string) ([]*achievement.UserAchievement, error) {
	query := `
	SELECT id, address, achievement_id, unlocked_at
	FROM user_achievements
	WHERE address = $1
	ORDER BY unlocked_at
	`

	rows, err := s.db.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocked achievements: %w", err)
	}
	defer rows.Close()

	var unlocked []*achievement.UserAchievement
	for rows.Next() {
		ua := &achievement.UserAchievement{}
		if err := rows.Scan(&ua.ID, &ua.Address, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan unlocked achievement: %w", err)
		}
		unlocked = append(unlocked, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unlocked achievements: %w", err)
	}

	return unlocked, nil
}

func (s *PostgresStore) AddUnlocked(ctx context.Context, ua *achievement.UserAchievement) error {
	query := `
	INSERT INTO user_achievements (id, address, achievement_id, unlocked_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (address, achievement_id) DO NOTHING
	`

	if _, err := s.db.Exec(ctx, query, ua.ID, ua.Address, ua.AchievementID, ua.UnlockedAt); err != nil {
		return fmt.Errorf("failed to save unlocked achievement: %w", err)
	}
	return nil
}
