package sprite

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// HTTPProber checks sprites with HEAD requests against the sprite host
type HTTPProber struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProber creates a prober for sprites served under baseURL
func NewHTTPProber(baseURL string, client *http.Client) *HTTPProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProber{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Result is the outcome of a single probe
type Result int

const (
	// Unknown means the host could not give an answer: unreachable, timed
	// out or failing with a server error
	Unknown Result = iota
	Found
	Missing
)

// Checker is a prober that can tell a missing asset from an unreachable host
type Checker interface {
	Check(ctx context.Context, path string) Result
}

// Exists reports whether HEAD on the path answers 200
func (p *HTTPProber) Exists(ctx context.Context, path string) bool {
	return p.Check(ctx, path) == Found
}

// Check probes the path. Only 200, 404 and 410 are definitive.
func (p *HTTPProber) Check(ctx context.Context, path string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL+path, nil)
	if err != nil {
		return Unknown
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[Sprite] probe %s failed: %v", path, err)
		return Unknown
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Found
	case http.StatusNotFound, http.StatusGone:
		return Missing
	default:
		log.Printf("[Sprite] probe %s answered %d", path, resp.StatusCode)
		return Unknown
	}
}

// URL returns the absolute URL of a sprite path
func (p *HTTPProber) URL(path string) string {
	return p.baseURL + path
}

// CachingProber remembers definitive probe results. Sprites are static
// assets, so a found or missing answer stays valid for the life of the
// process; an unknown one is retried on the next render. Concurrent probes
// of the same path share one request.
type CachingProber struct {
	next  Prober
	group singleflight.Group

	mu      sync.RWMutex
	results map[string]bool
}

// NewCachingProber wraps next with a result cache
func NewCachingProber(next Prober) *CachingProber {
	return &CachingProber{
		next:    next,
		results: make(map[string]bool),
	}
}

// Exists returns the cached result or probes once
func (p *CachingProber) Exists(ctx context.Context, path string) bool {
	p.mu.RLock()
	exists, ok := p.results[path]
	p.mu.RUnlock()
	if ok {
		return exists
	}

	v, _, _ := p.group.Do(path, func() (interface{}, error) {
		result := p.check(ctx, path)
		// a cancelled probe says nothing about the asset
		if result != Unknown && ctx.Err() == nil {
			p.mu.Lock()
			p.results[path] = result == Found
			p.mu.Unlock()
		}
		return result == Found, nil
	})

	return v.(bool)
}

func (p *CachingProber) check(ctx context.Context, path string) Result {
	if checker, ok := p.next.(Checker); ok {
		return checker.Check(ctx, path)
	}
	if p.next.Exists(ctx, path) {
		return Found
	}
	return Missing
}
