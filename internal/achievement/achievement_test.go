package achievement

import (
	"testing"

	"banginOnBaseAPI/internal/stats"
)

func TestCriteriaMet(t *testing.T) {
	st := &stats.PlayerStats{
		TotalScore:     50,
		TotalGuesses:   12,
		CorrectGuesses: 10,
		CurrentStreak:  3,
		PerfectWeeks:   0,
		EarlyBirdPlays: 1,
	}

	cases := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"gte met exactly", Criteria{StatTotalScore, CompareGTE, 50}, true},
		{"gte not met", Criteria{StatTotalScore, CompareGTE, 51}, false},
		{"gt boundary", Criteria{StatCurrentStreak, CompareGT, 3}, false},
		{"gt met", Criteria{StatCurrentStreak, CompareGT, 2}, true},
		{"eq met", Criteria{StatEarlyBirdPlays, CompareEQ, 1}, true},
		{"eq not met", Criteria{StatPerfectWeeks, CompareEQ, 1}, false},
		{"unknown field reads as zero", Criteria{StatField("bogus"), CompareGTE, 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.criteria.Met(st); got != c.want {
				t.Errorf("criteria %+v: got %v, want %v", c.criteria, got, c.want)
			}
		})
	}
}

func TestCatalogIsWellFormed(t *testing.T) {
	if len(Catalog) != 10 {
		t.Fatalf("achievement catalog has %d entries, want 10", len(Catalog))
	}

	seen := make(map[string]bool, len(Catalog))
	for _, a := range Catalog {
		if a.ID == "" || a.Title == "" || a.Description == "" {
			t.Errorf("achievement %q is missing fields", a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true

		// A zero-stats player must not qualify for anything.
		if a.Criteria.Met(&stats.PlayerStats{}) {
			t.Errorf("achievement %q unlocks with zero stats", a.ID)
		}
	}
}

func TestByID(t *testing.T) {
	if a := ByID("streak_7"); a == nil || a.Title != "⚡ Lightning Streak" {
		t.Errorf("ByID(streak_7) = %+v", a)
	}
	if a := ByID("nope"); a != nil {
		t.Errorf("ByID(nope) should be nil, got %+v", a)
	}
}
