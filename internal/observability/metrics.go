package observability

import (
	"sync"
	"time"
)

type counterKey struct {
	path   string
	method string
	label  string
}

// Metrics keeps in-memory request and error counters, keyed by route,
// method and status or error code.
type Metrics struct {
	mu       sync.RWMutex
	requests map[counterKey]int64
	errors   map[counterKey]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[counterKey]int64),
		errors:   make(map[counterKey]int64),
	}
}

// RecordRequest counts a completed request.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := counterKey{path: path, method: method, label: statusLabel(status)}
	m.mu.Lock()
	m.requests[key]++
	m.mu.Unlock()
}

// RecordError counts a failed request by error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := counterKey{path: path, method: method, label: code}
	m.mu.Lock()
	m.errors[key]++
	m.mu.Unlock()
}

// TotalRequests returns the request count across all routes.
func (m *Metrics) TotalRequests() int64 {
	if m == nil {
		return 0
	}
	return m.total(&m.requests)
}

// TotalErrors returns the error count across all routes.
func (m *Metrics) TotalErrors() int64 {
	if m == nil {
		return 0
	}
	return m.total(&m.errors)
}

func (m *Metrics) total(counters *map[counterKey]int64) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for _, count := range *counters {
		sum += count
	}
	return sum
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
