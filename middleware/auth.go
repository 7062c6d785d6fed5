package middleware

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

type contextKey string

const WalletAddressKey contextKey = "walletAddress"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// WalletAuthMiddleware extracts and validates the player's wallet address.
// Possessing the address is the only identity this game has; addresses
// are lower-cased so the same wallet never splits into two records.
func WalletAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := r.Header.Get("X-Wallet-Address")
		if address == "" {
			respondWithError(w, http.StatusUnauthorized, "X-Wallet-Address header required")
			return
		}

		if !addressPattern.MatchString(address) {
			respondWithError(w, http.StatusUnauthorized, "Invalid wallet address format")
			return
		}

		ctx := context.WithValue(r.Context(), WalletAddressKey, strings.ToLower(address))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetWalletAddress extracts the authenticated wallet address from context.
func GetWalletAddress(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(WalletAddressKey).(string)
	return address, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, message)))
}
