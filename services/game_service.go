package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"banginOnBaseAPI/internal/achievement"
	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/song"
	"banginOnBaseAPI/internal/stats"
	"banginOnBaseAPI/internal/store"
	"banginOnBaseAPI/utils"
)

// GameService runs the daily challenge: it gates each wallet to one
// resolution per day, matches guesses against today's title, credits
// points and keeps the per-wallet stats and achievements current.
type GameService struct {
	store store.PlayerStore
	now   func() time.Time

	// fixedDay pins the daily rotation (demo mode); -1 means the
	// rotation advances with the clock.
	fixedDay int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameService(st store.PlayerStore) *GameService {
	return &GameService{
		store:    st,
		now:      time.Now,
		fixedDay: -1,
		locks:    make(map[string]*sync.Mutex),
	}
}

// SetClock overrides the wall clock. Intended for tests.
func (s *GameService) SetClock(now func() time.Time) {
	s.now = now
}

// PinDay fixes the day index so the same challenge is served every day.
func (s *GameService) PinDay(dayIndex int) {
	s.fixedDay = dayIndex
}

// walletLock returns the mutex serializing all guess resolution for one
// address. Two near-simultaneous guesses from the same wallet must not
// both pass the daily gate.
func (s *GameService) walletLock(address string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[address]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[address] = lock
	}
	return lock
}

// TodayIndex returns the current day index.
func (s *GameService) TodayIndex() int {
	if s.fixedDay >= 0 {
		return s.fixedDay
	}
	return song.TodayIndex(s.now())
}

// TodaysSong returns the full challenge for the current day, answer included.
func (s *GameService) TodaysSong() (*song.Song, error) {
	return song.ForDay(s.TodayIndex())
}

// HasGuessedToday reports whether the wallet already resolved today's
// challenge.
func (s *GameService) HasGuessedToday(ctx context.Context, address string) (bool, error) {
	rec, err := s.store.GetRecord(ctx, address)
	if err != nil {
		return false, fmt.Errorf("failed to check daily status: %w", err)
	}
	return rec != nil && rec.LastGuessDay == s.TodayIndex(), nil
}

// GetScore returns the wallet's cumulative score, zero for new wallets.
func (s *GameService) GetScore(ctx context.Context, address string) (int, error) {
	rec, err := s.store.GetRecord(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to get score: %w", err)
	}
	if rec == nil {
		return 0, nil
	}
	return rec.Score, nil
}

// GetStats returns the wallet's aggregate stats, zero-valued for new wallets.
func (s *GameService) GetStats(ctx context.Context, address string) (*stats.PlayerStats, error) {
	st, err := s.store.GetStats(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	if st == nil {
		st = &stats.PlayerStats{}
	}
	return st, nil
}

// GetAchievements returns the full catalog annotated with the wallet's
// unlock status.
func (s *GameService) GetAchievements(ctx context.Context, address string) ([]*achievement.AchievementWithStatus, error) {
	unlocked, err := s.store.ListUnlocked(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}

	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	result := make([]*achievement.AchievementWithStatus, 0, len(achievement.Catalog))
	for _, a := range achievement.Catalog {
		entry := &achievement.AchievementWithStatus{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			entry.Unlocked = true
			t := at
			entry.UnlockedAt = &t
		}
		result = append(result, entry)
	}
	return result, nil
}

// SubmitGuess resolves one guess. The gate check, match, credit, stats
// update and achievement evaluation run as a single unit of work under
// the wallet's lock; a second guess on the same day is a soft rejection
// that mutates nothing.
func (s *GameService) SubmitGuess(ctx context.Context, sub *player.GuessSubmission) (*player.GuessResult, error) {
	lock := s.walletLock(sub.Address)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	currentDay := s.TodayIndex()
	todaysSong, err := song.ForDay(currentDay)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve today's song: %w", err)
	}

	rec, err := s.store.GetRecord(ctx, sub.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to load player record: %w", err)
	}
	if rec == nil {
		rec = &player.Record{
			Address:      sub.Address,
			Score:        0,
			LastGuessDay: player.NeverResolved,
		}
	}

	if rec.LastGuessDay == currentDay {
		return &player.GuessResult{
			Correct:         false,
			AlreadyGuessed:  true,
			Message:         "You've already guessed today! Come back tomorrow for a new song! 🎵",
			PointsEarned:    0,
			TodaysSong:      todaysSong,
			TransactionHash: sub.TransactionHash,
		}, nil
	}

	correct := utils.IsAnswerCorrect(sub.Guess, todaysSong.Title)
	pointsEarned := 0
	if correct {
		pointsEarned = song.PointsPerCorrectGuess
	}

	st, err := s.store.GetStats(ctx, sub.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to load player stats: %w", err)
	}
	if st == nil {
		st = &stats.PlayerStats{}
	}

	// Compute the full post-guess state before writing anything, so a
	// failed write leaves the record untouched and the guess retryable.
	rec.Score += pointsEarned
	rec.LastGuessDay = currentDay

	st.TotalScore = rec.Score
	st.TotalGuesses++
	if correct {
		st.CorrectGuesses++
		st.CurrentStreak++
		if st.CurrentStreak > st.LongestStreak {
			st.LongestStreak = st.CurrentStreak
		}
	} else {
		st.CurrentStreak = 0
	}

	today := now.UTC().Format("2006-01-02")
	if st.LastPlayDate != today {
		st.DaysPlayed++
		st.LastPlayDate = today
		if now.UTC().Hour() == 0 {
			st.EarlyBirdPlays++
		}
	}

	if st.CurrentStreak > 0 && st.CurrentStreak%7 == 0 {
		st.PerfectWeeks++
	}

	newlyUnlocked, err := s.evaluateAchievements(ctx, sub.Address, st)
	if err != nil {
		return nil, err
	}
	st.AchievementsUnlocked += len(newlyUnlocked)

	if err := s.store.PutRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save player record: %w", err)
	}
	if err := s.store.PutStats(ctx, sub.Address, st); err != nil {
		return nil, fmt.Errorf("failed to save player stats: %w", err)
	}
	for _, ua := range newlyUnlocked {
		if err := s.store.AddUnlocked(ctx, ua); err != nil {
			return nil, fmt.Errorf("failed to save unlocked achievement: %w", err)
		}
	}

	var message string
	if correct {
		message = fmt.Sprintf("🎉 CORRECT! You earned %d points! The song was %q by %s!",
			pointsEarned, todaysSong.Title, todaysSong.Artist)
	} else {
		message = fmt.Sprintf("❌ Not quite! The correct answer was %q by %s. Better luck tomorrow!",
			todaysSong.Title, todaysSong.Artist)
	}

	return &player.GuessResult{
		Correct:         correct,
		Message:         message,
		PointsEarned:    pointsEarned,
		TodaysSong:      todaysSong,
		TransactionHash: sub.TransactionHash,
	}, nil
}

// evaluateAchievements returns the catalog entries whose criteria became
// true with the updated stats and are not unlocked yet.
func (s *GameService) evaluateAchievements(ctx context.Context, address string, st *stats.PlayerStats) ([]*achievement.UserAchievement, error) {
	unlocked, err := s.store.ListUnlocked(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	already := make(map[string]bool, len(unlocked))
	for _, ua := range unlocked {
		already[ua.AchievementID] = true
	}

	var newly []*achievement.UserAchievement
	for _, a := range achievement.Catalog {
		if already[a.ID] || !a.Criteria.Met(st) {
			continue
		}
		newly = append(newly, &achievement.UserAchievement{
			ID:            uuid.New(),
			Address:       address,
			AchievementID: a.ID,
			UnlockedAt:    s.now(),
		})
	}
	return newly, nil
}
