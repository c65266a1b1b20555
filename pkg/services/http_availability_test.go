package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/pkg/services"
)

func probeFor(t *testing.T, srv *httptest.Server, path string) *services.HTTPReadinessProbe {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return services.NewHTTPReadinessProbe(u.Hostname(), port, path, services.WithReadinessTimeout(time.Second))
}

func TestHTTPReadinessProbe_Ready(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	probe := probeFor(t, srv, "health")

	assert.True(t, probe.IsAvailable())
	assert.Equal(t, "/health", gotPath)
	assert.Equal(t, srv.URL+"/health", probe.URL())
}

func TestHTTPReadinessProbe_NotReadyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	probe := probeFor(t, srv, "/health")

	err := probe.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.False(t, probe.IsAvailable())
}

func TestHTTPReadinessProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	probe := probeFor(t, srv, "/")
	srv.Close()

	assert.False(t, probe.IsAvailable())
}

func TestHTTPReadinessProbe_WithAvailabilityChecker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checker := services.NewDefaultAvailabilityChecker("web", probeFor(t, srv, "/"))

	require.NoError(t, checker.WaitForStartup(5*time.Millisecond, 5))
	assert.Equal(t, int32(3), hits.Load())
}
