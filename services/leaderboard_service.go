package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"banginOnBaseAPI/internal/leaderboard"
	"banginOnBaseAPI/internal/store"
	"banginOnBaseAPI/utils"
)

// Ranked views are recomputed at most this often; a guess submitted in
// between shows up on the next refresh.
const leaderboardRefreshInterval = 60 * time.Second

// LeaderboardService ranks every known wallet by cumulative score and
// optionally enriches entries with Farcaster identities. It owns no
// state beyond a short-lived snapshot of the ranking.
type LeaderboardService struct {
	store     store.PlayerStore
	farcaster *FarcasterService
	now       func() time.Time

	mu         sync.Mutex
	snapshot   []*leaderboard.Entry
	snapshotAt time.Time
}

func NewLeaderboardService(st store.PlayerStore, fc *FarcasterService) *LeaderboardService {
	return &LeaderboardService{
		store:     st,
		farcaster: fc,
		now:       time.Now,
	}
}

// SetClock overrides the wall clock. Intended for tests.
func (s *LeaderboardService) SetClock(now func() time.Time) {
	s.now = now
}

// rankedEntries returns the full ranking, descending by score with ties
// broken by address so the order is deterministic.
func (s *LeaderboardService) rankedEntries(ctx context.Context) ([]*leaderboard.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && s.now().Sub(s.snapshotAt) < leaderboardRefreshInterval {
		return s.snapshot, nil
	}

	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player records: %w", err)
	}

	entries := make([]*leaderboard.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, &leaderboard.Entry{
			Address: rec.Address,
			Score:   rec.Score,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Address < entries[j].Address
	})
	for i, e := range entries {
		e.Rank = i + 1
	}

	s.snapshot = entries
	s.snapshotAt = s.now()
	return entries, nil
}

// TopPlayers returns the top limit entries without identity enrichment.
func (s *LeaderboardService) TopPlayers(ctx context.Context, limit int) ([]*leaderboard.Entry, error) {
	ranked, err := s.rankedEntries(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}

	// Copies, so enrichment never mutates the shared snapshot.
	top := make([]*leaderboard.Entry, limit)
	for i := 0; i < limit; i++ {
		e := *ranked[i]
		top[i] = &e
	}
	return top, nil
}

// TopPlayersWithUsernames returns the top limit entries enriched with
// Farcaster usernames. Enrichment is best effort: a failed or empty
// lookup falls back to the truncated address and the read never fails
// because of the identity collaborator.
func (s *LeaderboardService) TopPlayersWithUsernames(ctx context.Context, limit int) ([]*leaderboard.Entry, error) {
	top, err := s.TopPlayers(ctx, limit)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, len(top))
	for i, e := range top {
		addresses[i] = e.Address
	}

	users := s.farcaster.BatchResolveUsers(ctx, addresses)
	for _, e := range top {
		if user := users[e.Address]; user != nil {
			username := "@" + user.Username
			e.Username = &username
			displayName := user.DisplayName
			e.DisplayName = &displayName
			if user.Avatar != "" {
				avatar := user.Avatar
				e.Avatar = &avatar
			}
		} else {
			fallback := utils.FormatAddress(e.Address)
			e.Username = &fallback
		}
	}
	return top, nil
}

// UserPosition returns the wallet's own entry, or nil if it has never
// played.
func (s *LeaderboardService) UserPosition(ctx context.Context, address string) (*leaderboard.Entry, error) {
	ranked, err := s.rankedEntries(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range ranked {
		if e.Address == address {
			entry := *e
			return &entry, nil
		}
	}
	return nil, nil
}

// TotalPlayers returns the number of wallets that have ever guessed.
func (s *LeaderboardService) TotalPlayers(ctx context.Context) (int, error) {
	ranked, err := s.rankedEntries(ctx)
	if err != nil {
		return 0, err
	}
	return len(ranked), nil
}
