package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ProxyHandler forwards a described request to an allow-listed upstream
// and returns the upstream status, body and content type unchanged. It
// carries no business logic; the client uses it to reach identity APIs
// that refuse browser CORS.
type ProxyHandler struct {
	client         *http.Client
	allowedOrigins map[string]bool
}

func NewProxyHandler() *ProxyHandler {
	allowed := map[string]bool{
		"api.neynar.com": true,
	}
	if extra := os.Getenv("PROXY_ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowed[origin] = true
			}
		}
	}

	return &ProxyHandler{
		client:         &http.Client{Timeout: 15 * time.Second},
		allowedOrigins: allowed,
	}
}

type proxyRequest struct {
	Protocol string            `json:"protocol"`
	Origin   string            `json:"origin"`
	Path     string            `json:"path"`
	Method   string            `json:"method"`
	Headers  map[string]string `json:"headers"`
	Body     json.RawMessage   `json:"body"`
}

// Forward handles POST /api/proxy.
func (h *ProxyHandler) Forward(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req proxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Protocol == "" || req.Origin == "" || req.Path == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Protocol != "https" && req.Protocol != "http" {
		respondWithError(w, http.StatusBadRequest, "Unsupported protocol")
		return
	}
	if !h.allowedOrigins[req.Origin] {
		respondWithError(w, http.StatusForbidden, "Origin not allowed")
		return
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if method != http.MethodGet && method != http.MethodHead && len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	upstreamURL := fmt.Sprintf("%s://%s%s", req.Protocol, req.Origin, req.Path)
	upstreamReq, err := http.NewRequestWithContext(ctx, method, upstreamURL, body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid upstream request")
		return
	}
	for k, v := range req.Headers {
		upstreamReq.Header.Set(k, v)
	}

	resp, err := h.client.Do(upstreamReq)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Proxy error")
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		return
	}
}
