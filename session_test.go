package dmart_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	dmart "github.com/edraj/dmart-go"
)

// TestSharedTransport_Identity tests that repeated acquisitions return
// the same pool instance.
func TestSharedTransport_Identity(t *testing.T) {
	first := dmart.SharedTransport()
	second := dmart.SharedTransport()

	assert.Same(t, first, second)
}

// TestSharedTransport_ConcurrentInit tests that concurrent first calls
// still yield exactly one pool.
func TestSharedTransport_ConcurrentInit(t *testing.T) {
	const goroutines = 32

	results := make([]*http.Transport, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = dmart.SharedTransport()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

// TestSharedTransport_KeepAlive tests the pool is configured for reuse.
func TestSharedTransport_KeepAlive(t *testing.T) {
	pool := dmart.SharedTransport()

	assert.False(t, pool.DisableKeepAlives)
	assert.Greater(t, pool.MaxIdleConns, 0)
	assert.Greater(t, pool.MaxIdleConnsPerHost, 0)
}
