package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"banginOnBaseAPI/internal/player"
	"banginOnBaseAPI/middleware"
	"banginOnBaseAPI/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetTodaysClues serves the current challenge's hints. The title and
// artist are never included here; they are only revealed in a guess
// outcome.
func (h *GameHandler) GetTodaysClues(w http.ResponseWriter, r *http.Request) {
	todaysSong, err := h.gameService.TodaysSong()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load today's challenge")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"day_index": h.gameService.TodayIndex(),
		"hints":     todaysSong.Hints,
	})
}

type guessRequest struct {
	Guess           string  `json:"guess"`
	TransactionHash *string `json:"transaction_hash,omitempty"`
}

func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Guess) == "" {
		respondWithError(w, http.StatusBadRequest, "Guess is required")
		return
	}

	result, err := h.gameService.SubmitGuess(ctx, &player.GuessSubmission{
		Address:         address,
		Guess:           req.Guess,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to resolve guess")
		return
	}

	switch {
	case result.AlreadyGuessed:
		middleware.CountGuess("already_guessed")
	case result.Correct:
		middleware.CountGuess("correct")
	default:
		middleware.CountGuess("incorrect")
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetDailyStatus reports whether the wallet has resolved today's challenge.
func (h *GameHandler) GetDailyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	guessed, err := h.gameService.HasGuessedToday(ctx, address)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to check daily status")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"day_index":     h.gameService.TodayIndex(),
		"guessed_today": guessed,
	})
}

func (h *GameHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	score, err := h.gameService.GetScore(ctx, address)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get score")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"address": address,
		"score":   score,
	})
}

func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	st, err := h.gameService.GetStats(ctx, address)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get stats")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stats":    st,
		"accuracy": st.Accuracy(),
	})
}

func (h *GameHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	address, ok := middleware.GetWalletAddress(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Wallet not authenticated")
		return
	}

	achievements, err := h.gameService.GetAchievements(ctx, address)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get achievements")
		return
	}

	respondWithJSON(w, http.StatusOK, achievements)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
