package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/song"
	"banginOnBaseAPI/internal/store"
)

const testWallet = "0xabc0000000000000000000000000000000001234"

// newTestGame returns a game service on a fresh in-memory store with the
// clock pinned to a mutable test time. Day 0 of the rotation is
// "Take On Me". The default time is two hours past the day boundary so
// early-bird counting only triggers where a test asks for it.
func newTestGame() (*GameService, *time.Time) {
	current := time.Unix(song.StartTimestamp, 0).UTC().Add(2 * time.Hour)
	svc := NewGameService(store.NewMemoryStore())
	svc.SetClock(func() time.Time { return current })
	return svc, &current
}

func mustSubmit(t *testing.T, svc *GameService, guess string) *player.GuessResult {
	t.Helper()
	result, err := svc.SubmitGuess(context.Background(), &player.GuessSubmission{
		Address: testWallet,
		Guess:   guess,
	})
	if err != nil {
		t.Fatalf("SubmitGuess(%q) returned error: %v", guess, err)
	}
	return result
}

func TestSubmitGuessCorrect(t *testing.T) {
	svc, _ := newTestGame()

	result := mustSubmit(t, svc, "take on me")

	if !result.Correct {
		t.Fatal("guess should be correct")
	}
	if result.PointsEarned != song.PointsPerCorrectGuess {
		t.Errorf("points = %d, want %d", result.PointsEarned, song.PointsPerCorrectGuess)
	}
	if result.TodaysSong == nil || result.TodaysSong.Title != "Take On Me" {
		t.Errorf("outcome should carry today's song, got %+v", result.TodaysSong)
	}

	score, err := svc.GetScore(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}

	st, err := svc.GetStats(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.TotalGuesses != 1 || st.CorrectGuesses != 1 || st.CurrentStreak != 1 || st.DaysPlayed != 1 {
		t.Errorf("unexpected stats after first correct guess: %+v", st)
	}
}

func TestSubmitGuessRevealsAnswerWhenWrong(t *testing.T) {
	svc, _ := newTestGame()

	result := mustSubmit(t, svc, "billie jean")

	if result.Correct {
		t.Fatal("guess should be incorrect")
	}
	if result.PointsEarned != 0 {
		t.Errorf("points = %d, want 0", result.PointsEarned)
	}
	// The answer is always revealed after a guess, right or wrong.
	if want := `"Take On Me"`; !strings.Contains(result.Message, want) {
		t.Errorf("message %q should reveal the answer %s", result.Message, want)
	}
	if !strings.Contains(result.Message, "a-ha") {
		t.Errorf("message %q should reveal the artist", result.Message)
	}
}

func TestSecondGuessSameDayIsRejected(t *testing.T) {
	svc, _ := newTestGame()

	first := mustSubmit(t, svc, "take on me")
	if !first.Correct || first.PointsEarned != 5 {
		t.Fatalf("unexpected first outcome: %+v", first)
	}

	second := mustSubmit(t, svc, "take on me")
	if second.Correct || !second.AlreadyGuessed || second.PointsEarned != 0 {
		t.Fatalf("second same-day guess should be a soft rejection, got %+v", second)
	}

	// Points credited at most once.
	score, _ := svc.GetScore(context.Background(), testWallet)
	if score != 5 {
		t.Errorf("score = %d, want 5 after repeat guess", score)
	}

	// The rejection must not mutate stats either.
	st, _ := svc.GetStats(context.Background(), testWallet)
	if st.TotalGuesses != 1 {
		t.Errorf("totalGuesses = %d, want 1 after repeat guess", st.TotalGuesses)
	}
}

func TestStreaksAcrossDays(t *testing.T) {
	svc, clock := newTestGame()
	ctx := context.Background()

	// Three correct days in a row.
	for i := 0; i < 3; i++ {
		todaysSong, err := svc.TodaysSong()
		if err != nil {
			t.Fatalf("TodaysSong: %v", err)
		}
		result := mustSubmit(t, svc, todaysSong.Title)
		if !result.Correct {
			t.Fatalf("day %d: guess %q should be correct", i, todaysSong.Title)
		}
		*clock = clock.Add(24 * time.Hour)
	}

	st, _ := svc.GetStats(ctx, testWallet)
	if st.CurrentStreak != 3 || st.LongestStreak != 3 {
		t.Fatalf("streaks = %d/%d, want 3/3", st.CurrentStreak, st.LongestStreak)
	}

	// A wrong guess resets the current streak but not the longest.
	result := mustSubmit(t, svc, "definitely not the answer")
	if result.Correct {
		t.Fatal("guess should be incorrect")
	}

	st, _ = svc.GetStats(ctx, testWallet)
	if st.CurrentStreak != 0 {
		t.Errorf("currentStreak = %d, want 0 after miss", st.CurrentStreak)
	}
	if st.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3 after miss", st.LongestStreak)
	}
	if st.CurrentStreak > st.LongestStreak {
		t.Error("currentStreak must never exceed longestStreak")
	}
}

func TestPerfectWeekAndStreakAchievements(t *testing.T) {
	svc, clock := newTestGame()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		todaysSong, err := svc.TodaysSong()
		if err != nil {
			t.Fatalf("TodaysSong: %v", err)
		}
		mustSubmit(t, svc, todaysSong.Title)
		*clock = clock.Add(24 * time.Hour)
	}

	st, _ := svc.GetStats(ctx, testWallet)
	if st.PerfectWeeks != 1 {
		t.Errorf("perfectWeeks = %d, want 1 after 7 straight days", st.PerfectWeeks)
	}

	achievements, err := svc.GetAchievements(ctx, testWallet)
	if err != nil {
		t.Fatalf("GetAchievements: %v", err)
	}

	unlocked := make(map[string]bool)
	for _, a := range achievements {
		if a.Unlocked {
			unlocked[a.ID] = true
		}
	}
	for _, id := range []string{"first_guess", "first_correct", "streak_3", "streak_7", "perfect_week"} {
		if !unlocked[id] {
			t.Errorf("achievement %q should be unlocked, have %v", id, unlocked)
		}
	}
	if unlocked["streak_14"] {
		t.Error("streak_14 should not be unlocked after 7 days")
	}
}

func TestEarlyBird(t *testing.T) {
	svc, clock := newTestGame()

	// Midnight UTC plus a few minutes is inside the early-bird window.
	*clock = time.Unix(song.StartTimestamp, 0).UTC().Add(10 * time.Minute)
	mustSubmit(t, svc, "take on me")

	st, _ := svc.GetStats(context.Background(), testWallet)
	if st.EarlyBirdPlays != 1 {
		t.Errorf("earlyBirdPlays = %d, want 1", st.EarlyBirdPlays)
	}

	achievements, _ := svc.GetAchievements(context.Background(), testWallet)
	for _, a := range achievements {
		if a.ID == "early_bird" && !a.Unlocked {
			t.Error("early_bird should be unlocked")
		}
	}
}

func TestAchievementsUnlockOnlyOnce(t *testing.T) {
	svc, clock := newTestGame()
	ctx := context.Background()

	mustSubmit(t, svc, "take on me")
	st, _ := svc.GetStats(ctx, testWallet)
	firstCount := st.AchievementsUnlocked
	if firstCount < 2 {
		t.Fatalf("achievementsUnlocked = %d, want at least first_guess and first_correct", firstCount)
	}

	*clock = clock.Add(24 * time.Hour)
	todaysSong, _ := svc.TodaysSong()
	mustSubmit(t, svc, todaysSong.Title)

	st, _ = svc.GetStats(ctx, testWallet)
	// first_guess and first_correct stay unlocked; no re-unlock.
	unlockedList, _ := svc.GetAchievements(ctx, testWallet)
	seen := 0
	for _, a := range unlockedList {
		if a.Unlocked {
			seen++
		}
	}
	if seen != st.AchievementsUnlocked {
		t.Errorf("unlock count %d disagrees with stats %d", seen, st.AchievementsUnlocked)
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	svc, clock := newTestGame()
	ctx := context.Background()

	guesses := []string{"take on me", "wrong", "wrong again", "", "sweet child o mine"}
	last := 0
	for _, g := range guesses {
		if g != "" {
			mustSubmit(t, svc, g)
		}
		score, err := svc.GetScore(ctx, testWallet)
		if err != nil {
			t.Fatalf("GetScore: %v", err)
		}
		if score < last {
			t.Fatalf("score decreased from %d to %d", last, score)
		}
		last = score
		*clock = clock.Add(24 * time.Hour)
	}
}

func TestConcurrentSameWalletGuessesCreditOnce(t *testing.T) {
	svc, _ := newTestGame()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SubmitGuess(context.Background(), &player.GuessSubmission{
				Address: testWallet,
				Guess:   "take on me",
			})
		}()
	}
	wg.Wait()

	score, err := svc.GetScore(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if score != 5 {
		t.Errorf("score = %d, want 5: concurrent guesses must not double-credit", score)
	}

	st, _ := svc.GetStats(context.Background(), testWallet)
	if st.TotalGuesses != 1 {
		t.Errorf("totalGuesses = %d, want 1", st.TotalGuesses)
	}
}

func TestTransactionHashIsCarried(t *testing.T) {
	svc, _ := newTestGame()

	txHash := "0xdeadbeef"
	result, err := svc.SubmitGuess(context.Background(), &player.GuessSubmission{
		Address:         testWallet,
		Guess:           "take on me",
		TransactionHash: &txHash,
	})
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.TransactionHash == nil || *result.TransactionHash != txHash {
		t.Errorf("transaction hash not carried through, got %v", result.TransactionHash)
	}
}

func TestPinDay(t *testing.T) {
	svc, clock := newTestGame()
	svc.PinDay(0)

	*clock = clock.Add(10 * 24 * time.Hour)
	if got := svc.TodayIndex(); got != 0 {
		t.Errorf("pinned day index = %d, want 0", got)
	}
	todaysSong, err := svc.TodaysSong()
	if err != nil {
		t.Fatalf("TodaysSong: %v", err)
	}
	if todaysSong.Title != "Take On Me" {
		t.Errorf("pinned song = %q, want Take On Me", todaysSong.Title)
	}
}
