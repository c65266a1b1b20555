package out

import "context"

// HTTPProber checks an HTTP endpoint and reports the status and response time.
type HTTPProber interface {
	Probe(ctx context.Context, url string) (statusCode int, elapsedMillis int64, err error)
}
