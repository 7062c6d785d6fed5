package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"banginOnBaseAPI/internal/leaderboard"
	"banginOnBaseAPI/middleware"
	"banginOnBaseAPI/services"
)

const defaultLeaderboardLimit = 10

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard serves the ranked top players.
// GET /api/v1/leaderboard?limit=10&usernames=true
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	// Enrichment fans out to the identity API, so give this more room
	// than the usual handler timeout.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	var entries []*leaderboard.Entry
	var err error
	if r.URL.Query().Get("usernames") == "true" {
		entries, err = h.leaderboardService.TopPlayersWithUsernames(ctx, limit)
	} else {
		entries, err = h.leaderboardService.TopPlayers(ctx, limit)
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	total, err := h.leaderboardService.TotalPlayers(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	respondWithJSON(w, http.StatusOK, leaderboard.Leaderboard{
		Entries:      entries,
		TotalPlayers: total,
	})
}

// GetUserPosition serves the authenticated wallet's own rank.
func (h *LeaderboardHandler) GetUserPosition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	entry, err := h.leaderboardService.UserPosition(ctx, address)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load rank")
		return
	}
	if entry == nil {
		respondWithError(w, http.StatusNotFound, "No guesses recorded for this wallet")
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}
