package store

import (
	"context"
	"sync"

	"banginOnBaseAPI/internal/achievement"
	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/stats"
)

// MemoryStore keeps player state in process memory. It backs tests and
// DB-less local runs; reads hand out copies so callers never share
// mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]player.Record
	stats    map[string]stats.PlayerStats
	unlocked map[string][]achievement.UserAchievement
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string]player.Record),
		stats:    make(map[string]stats.PlayerStats),
		unlocked: make(map[string][]achievement.UserAchievement),
	}
}

func (s *MemoryStore) GetRecord(_ context.Context, address string) (*player.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[address]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) PutRecord(_ context.Context, rec *player.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[rec.Address] = *rec
	return nil
}

func (s *MemoryStore) ListRecords(_ context.Context) ([]*player.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*player.Record, 0, len(s.records))
	for _, rec := range s.records {
		r := rec
		records = append(records, &r)
	}
	return records, nil
}

func (s *MemoryStore) GetStats(_ context.Context, address string) (*stats.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stats[address]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *MemoryStore) PutStats(_ context.Context, address string, st *stats.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[address] = *st
	return nil
}

func (s *MemoryStore) ListUnlocked(_ context.Context, address string) ([]*achievement.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlocked := make([]*achievement.UserAchievement, 0, len(s.unlocked[address]))
	for _, ua := range s.unlocked[address] {
		u := ua
		unlocked = append(unlocked, &u)
	}
	return unlocked, nil
}

func (s *MemoryStore) AddUnlocked(_ context.Context, ua *achievement.UserAchievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.unlocked[ua.Address] {
		if existing.AchievementID == ua.AchievementID {
			return nil
		}
	}
	s.unlocked[ua.Address] = append(s.unlocked[ua.Address], *ua)
	return nil
}
