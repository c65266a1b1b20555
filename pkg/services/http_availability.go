package services

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/testnet/internal/adapters/out/httpprober"
	"github.com/bnema/testnet/internal/boundaries/out"
)

// DefaultReadinessTimeout bounds a single readiness probe.
const DefaultReadinessTimeout = 2 * time.Second

// HTTPReadinessProbe reports a service available when an HTTP GET on its
// readiness URL answers with a 2xx status. Services embed it to get IsAvailable.
type HTTPReadinessProbe struct {
	url     string
	prober  out.HTTPProber
	timeout time.Duration
}

// ReadinessOption configures an HTTPReadinessProbe.
type ReadinessOption func(*HTTPReadinessProbe)

// WithProber replaces the default HTTP prober.
func WithProber(prober out.HTTPProber) ReadinessOption {
	return func(p *HTTPReadinessProbe) { p.prober = prober }
}

func WithReadinessTimeout(timeout time.Duration) ReadinessOption {
	return func(p *HTTPReadinessProbe) { p.timeout = timeout }
}

// NewHTTPReadinessProbe probes http://{ipAddress}:{port}{path}.
func NewHTTPReadinessProbe(ipAddress string, port int, path string, opts ...ReadinessOption) *HTTPReadinessProbe {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	p := &HTTPReadinessProbe{
		url:     "http://" + net.JoinHostPort(ipAddress, strconv.Itoa(port)) + path,
		timeout: DefaultReadinessTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.prober == nil {
		p.prober = httpprober.New(httpprober.WithTimeout(p.timeout))
	}
	return p
}

func (p *HTTPReadinessProbe) URL() string { return p.url }

// Check performs one probe and returns why the service is not ready.
func (p *HTTPReadinessProbe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status, _, err := p.prober.Probe(ctx, p.url)
	if err != nil {
		return fmt.Errorf("probe %s: %w", p.url, err)
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("probe %s: unexpected status %d", p.url, status)
	}
	return nil
}

func (p *HTTPReadinessProbe) IsAvailable() bool {
	return p.Check(context.Background()) == nil
}
