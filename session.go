package dmart

import (
	"net/http"
	"sync"
	"time"
)

// Connection pool bounds for the shared transport.
const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

var (
	transportOnce sync.Once
	transport     *http.Transport
)

// SharedTransport returns the process-wide pooled HTTP transport used by
// every client. The pool is created lazily on first call and reused for
// the life of the process; concurrent first calls still create exactly one
// pool. There is no teardown: idle connections age out on their own.
//
// Clients built with [NewClient] use this transport unless
// [WithHTTPClient] supplies a replacement (e.g. a fake for tests).
func SharedTransport() *http.Transport {
	transportOnce.Do(func() {
		transport = &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
			ForceAttemptHTTP2:   true,
		}
	})
	return transport
}
