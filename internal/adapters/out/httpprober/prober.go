// Package httpprober checks whether a service answers HTTP requests.
package httpprober

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/testnet/internal/boundaries/out"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 2 * time.Second

// Prober issues HTTP GET probes against service endpoints.
type Prober struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

var _ out.HTTPProber = (*Prober)(nil)

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// WithUserAgent overrides the User-Agent header sent with probes.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout:   DefaultTimeout,
		userAgent: "testnet-probe/1.0",
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
			// Redirects count as an answer.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return p
}

// Probe sends an HTTP GET request and returns the status code and response time in milliseconds.
func (p *Prober) Probe(ctx context.Context, url string) (int, int64, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return 0, elapsed, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, elapsed, nil
}
