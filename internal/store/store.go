package store

import (
	"context"

	"banginOnBaseAPI/internal/achievement"
	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/internal/stats"
)

// PlayerStore is the persistence port for per-wallet game state. Get
// methods return (nil, nil) for a wallet that has never played; each
// single-key operation is atomic. Cross-key consistency is the scoring
// engine's job (it serializes per wallet).
type PlayerStore interface {
	GetRecord(ctx context.Context, address string) (*player.Record, error)
	PutRecord(ctx context.Context, rec *player.Record) error
	ListRecords(ctx context.Context) ([]*player.Record, error)

	GetStats(ctx context.Context, address string) (*stats.PlayerStats, error)
	PutStats(ctx context.Context, address string, st *stats.PlayerStats) error

	ListUnlocked(ctx context.Context, address string) ([]*achievement.UserAchievement, error)
	AddUnlocked(ctx context.Context, ua *achievement.UserAchievement) error
}
