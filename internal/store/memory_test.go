package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"banginOnBaseAPI/internal/achievement"
	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/stats"
)

func TestMemoryStoreAbsentKeys(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec, err := s.GetRecord(ctx, "0xnobody")
	if err != nil || rec != nil {
		t.Errorf("GetRecord(absent) = %v, %v; want nil, nil", rec, err)
	}

	st, err := s.GetStats(ctx, "0xnobody")
	if err != nil || st != nil {
		t.Errorf("GetStats(absent) = %v, %v; want nil, nil", st, err)
	}

	unlocked, err := s.ListUnlocked(ctx, "0xnobody")
	if err != nil || len(unlocked) != 0 {
		t.Errorf("ListUnlocked(absent) = %v, %v; want empty, nil", unlocked, err)
	}
}

func TestMemoryStoreReadsReturnCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.PutRecord(ctx, &player.Record{Address: "0xaaaa", Score: 5, LastGuessDay: 0}); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}

	rec, _ := s.GetRecord(ctx, "0xaaaa")
	rec.Score = 9999

	again, _ := s.GetRecord(ctx, "0xaaaa")
	if again.Score != 5 {
		t.Errorf("mutating a read copy leaked into the store: score = %d", again.Score)
	}

	if err := s.PutStats(ctx, "0xaaaa", &stats.PlayerStats{TotalGuesses: 1}); err != nil {
		t.Fatalf("PutStats: %v", err)
	}
	st, _ := s.GetStats(ctx, "0xaaaa")
	st.TotalGuesses = 42
	stAgain, _ := s.GetStats(ctx, "0xaaaa")
	if stAgain.TotalGuesses != 1 {
		t.Errorf("mutating a stats copy leaked into the store: %d", stAgain.TotalGuesses)
	}
}

func TestMemoryStoreListRecords(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, addr := range []string{"0xaaaa", "0xbbbb", "0xcccc"} {
		if err := s.PutRecord(ctx, &player.Record{Address: addr, Score: 1, LastGuessDay: 0}); err != nil {
			t.Fatalf("PutRecord(%s): %v", addr, err)
		}
	}

	records, err := s.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestMemoryStoreAddUnlockedDedupes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ua := &achievement.UserAchievement{
		ID:            uuid.New(),
		Address:       "0xaaaa",
		AchievementID: "first_guess",
		UnlockedAt:    time.Now().UTC(),
	}
	if err := s.AddUnlocked(ctx, ua); err != nil {
		t.Fatalf("AddUnlocked: %v", err)
	}

	// A second grant of the same achievement is a no-op.
	dup := *ua
	dup.ID = uuid.New()
	if err := s.AddUnlocked(ctx, &dup); err != nil {
		t.Fatalf("AddUnlocked(dup): %v", err)
	}

	unlocked, err := s.ListUnlocked(ctx, "0xaaaa")
	if err != nil {
		t.Fatalf("ListUnlocked: %v", err)
	}
	if len(unlocked) != 1 {
		t.Errorf("got %d unlocks, want 1", len(unlocked))
	}
}

func TestMemoryStorePutRecordOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.PutRecord(ctx, &player.Record{Address: "0xaaaa", Score: 5, LastGuessDay: 0})
	s.PutRecord(ctx, &player.Record{Address: "0xaaaa", Score: 10, LastGuessDay: 1})

	rec, _ := s.GetRecord(ctx, "0xaaaa")
	if rec.Score != 10 || rec.LastGuessDay != 1 {
		t.Errorf("record not overwritten: %+v", rec)
	}
}
