package song

import (
	"testing"
	"time"
)

func TestTodayIndex(t *testing.T) {
	epoch := time.Unix(StartTimestamp, 0).UTC()

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"epoch start", epoch, 0},
		{"later same day", epoch.Add(23 * time.Hour), 0},
		{"next day", epoch.Add(24 * time.Hour), 1},
		{"one week in", epoch.AddDate(0, 0, 7), 7},
		{"wraps after catalog length", epoch.AddDate(0, 0, len(Catalog)), 0},
		{"wraps plus one", epoch.AddDate(0, 0, len(Catalog)+1), 1},
		{"before epoch", epoch.Add(-time.Hour), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TodayIndex(c.now); got != c.want {
				t.Errorf("TodayIndex(%v) = %d, want %d", c.now, got, c.want)
			}
		})
	}
}

func TestForDay(t *testing.T) {
	first, err := ForDay(0)
	if err != nil {
		t.Fatalf("ForDay(0) returned error: %v", err)
	}
	if first.Title != "Take On Me" {
		t.Errorf("day 0 song = %q, want %q", first.Title, "Take On Me")
	}

	wrapped, err := ForDay(len(Catalog))
	if err != nil {
		t.Fatalf("ForDay(%d) returned error: %v", len(Catalog), err)
	}
	if wrapped.ID != first.ID {
		t.Errorf("day %d should wrap to day 0, got song id %d", len(Catalog), wrapped.ID)
	}

	if _, err := ForDay(-1); err == nil {
		t.Error("ForDay(-1) should return an error")
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("catalog should be valid: %v", err)
	}

	if len(Catalog) != 40 {
		t.Errorf("catalog has %d songs, want 40", len(Catalog))
	}

	seen := make(map[int]bool, len(Catalog))
	for _, s := range Catalog {
		if seen[s.ID] {
			t.Errorf("duplicate song id %d", s.ID)
		}
		seen[s.ID] = true
		if s.Hints.Emoji == "" || s.Hints.Lyric == "" || s.Hints.Trivia == "" {
			t.Errorf("song %d is missing hints", s.ID)
		}
	}
}
