package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"banginOnBaseAPI/internal/farcaster"
	"banginOnBaseAPI/utils"
)

const (
	// Resolved identities (including misses) are reused for an hour.
	usernameCacheTTL = time.Hour

	// Neynar has no batch endpoint, so batch resolution fans out with at
	// most this many concurrent lookups.
	maxConcurrentLookups = 5
)

type cachedUser struct {
	user      *farcaster.User
	fetchedAt time.Time
}

// FarcasterService resolves wallet addresses to Farcaster identities via
// the Neynar API. Lookups are cached; failures always degrade to the
// truncated-address display form and never propagate.
type FarcasterService struct {
	baseURL string
	apiKey  string
	client  *http.Client

	mu    sync.Mutex
	cache map[string]cachedUser

	now func() time.Time
}

func NewFarcasterService() *FarcasterService {
	baseURL := os.Getenv("NEYNAR_API_URL")
	if baseURL == "" {
		baseURL = "https://api.neynar.com"
	}
	apiKey := os.Getenv("NEYNAR_API_KEY")
	if apiKey == "" {
		apiKey = "NEYNAR_ONCHAIN_KIT"
	}

	return &FarcasterService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cachedUser),
		now:     time.Now,
	}
}

func (s *FarcasterService) cachedUser(address string) (*farcaster.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[address]
	if !ok || s.now().Sub(entry.fetchedAt) >= usernameCacheTTL {
		return nil, false
	}
	return entry.user, true
}

func (s *FarcasterService) cacheUser(address string, user *farcaster.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[address] = cachedUser{user: user, fetchedAt: s.now()}
}

type neynarUserResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	FID         int    `json:"fid"`
	PfpURL      string `json:"pfp_url"`
}

func (s *FarcasterService) fetchUser(ctx context.Context, address string) (*farcaster.User, error) {
	endpoint := fmt.Sprintf("%s/v2/farcaster/user/by-address?address=%s", s.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api_key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No Farcaster account for this address.
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity lookup failed: status %d", resp.StatusCode)
	}

	var body neynarUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if body.Username == "" {
		return nil, nil
	}

	user := &farcaster.User{
		Username:    body.Username,
		DisplayName: body.DisplayName,
		FID:         body.FID,
		Avatar:      body.PfpURL,
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	return user, nil
}

// GetUser resolves one address, consulting the cache first. A nil user
// with nil error means the address has no Farcaster account.
func (s *FarcasterService) GetUser(ctx context.Context, address string) (*farcaster.User, error) {
	if address == "" {
		return nil, nil
	}

	if user, ok := s.cachedUser(address); ok {
		return user, nil
	}

	user, err := s.fetchUser(ctx, address)
	if err != nil {
		return nil, err
	}

	// Misses are cached too so unknown addresses do not hammer the API.
	s.cacheUser(address, user)
	return user, nil
}

// GetUsername resolves one address to its "@username" form, falling back
// to the truncated address on any miss or failure.
func (s *FarcasterService) GetUsername(ctx context.Context, address string) string {
	user, err := s.GetUser(ctx, address)
	if err != nil || user == nil {
		return utils.FormatAddress(address)
	}
	return "@" + user.Username
}

// BatchResolveUsers resolves many addresses with bounded concurrency.
// The result maps each requested address to its user, or to nil when the
// address resolved to nothing or the lookup failed. It never returns an
// error: enrichment is best effort.
func (s *FarcasterService) BatchResolveUsers(ctx context.Context, addresses []string) map[string]*farcaster.User {
	results := make(map[string]*farcaster.User, len(addresses))

	var pending []string
	for _, addr := range addresses {
		if user, ok := s.cachedUser(addr); ok {
			results[addr] = user
		} else {
			pending = append(pending, addr)
		}
	}

	if len(pending) == 0 {
		return results
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, addr := range pending {
		addr := addr
		g.Go(func() error {
			user, err := s.fetchUser(gctx, addr)
			if err != nil {
				// Leave the entry nil; the caller falls back to the
				// formatted address. Do not cache transient failures.
				return nil
			}
			s.cacheUser(addr, user)

			mu.Lock()
			results[addr] = user
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, addr := range addresses {
		if _, ok := results[addr]; !ok {
			results[addr] = nil
		}
	}
	return results
}
