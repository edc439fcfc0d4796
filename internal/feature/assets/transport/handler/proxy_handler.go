// Package handler exposes the asset cache proxy over HTTP.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dahldoescards/bowman-tracker/internal/feature/assets/usecase"
)

// ProxyHandler serves the two request classes the companion server
// intercepts: API reads are forwarded network-first with an offline
// fallback, everything else goes through the versioned asset cache.
type ProxyHandler struct {
	proxy   *usecase.Proxy
	apiBase string
	client  *http.Client
}

// NewProxyHandler creates a ProxyHandler forwarding API requests to
// apiBase. If client is nil, http.DefaultClient is used.
func NewProxyHandler(proxy *usecase.Proxy, apiBase string, client *http.Client) *ProxyHandler {
	if client == nil {
		client = http.DefaultClient
	}
	return &ProxyHandler{
		proxy:   proxy,
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  client,
	}
}

// HandleAPI forwards an API request to the upstream tracker. GET requests
// that fail at the transport level are answered with a synthesized
// unsuccessful payload instead of an error status, so offline clients get
// a well-formed response they already know how to render. Non-GET
// requests pass through untouched and surface upstream failures as 502.
func (h *ProxyHandler) HandleAPI(c *gin.Context) {
	req, err := http.NewRequestWithContext(
		c.Request.Context(),
		c.Request.Method,
		h.apiBase+c.Request.URL.RequestURI(),
		c.Request.Body,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	req.Header = c.Request.Header.Clone()

	resp, err := h.client.Do(req)
	if err != nil {
		if c.Request.Method == http.MethodGet {
			c.Data(http.StatusOK, "application/json", []byte(usecase.OfflineBody))
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "upstream unreachable"})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.DataFromReader(resp.StatusCode, resp.ContentLength, contentType, resp.Body, nil)
}

// HandleAsset serves a static asset through the versioned cache. Cached
// copies are returned immediately and revalidated in the background.
func (h *ProxyHandler) HandleAsset(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "method not allowed"})
		return
	}

	path := c.Request.URL.Path
	if path == "/" {
		path = "/index.html"
	}

	entry, err := h.proxy.ServeAsset(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "asset unavailable"})
		return
	}

	contentType := entry.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, entry.Body)
}
