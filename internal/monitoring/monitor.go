package monitoring

import (
	"sync"
	"time"
)

// Monitor keeps a small thread-safe key/value snapshot of runtime
// figures for the stats endpoint, independent of prometheus.
type Monitor struct {
	mu        sync.RWMutex
	values    map[string]interface{}
	startTime time.Time
}

// NewMonitor creates a monitor with its start time stamped.
func NewMonitor() *Monitor {
	return &Monitor{
		values:    make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// Record stores one value under a name.
func (m *Monitor) Record(name string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
}

// Get returns one recorded value.
func (m *Monitor) Get(name string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Snapshot returns all recorded values plus the process uptime.
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]interface{}, len(m.values)+1)
	for k, v := range m.values {
		out[k] = v
	}
	out["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return out
}

// Reset clears all recorded values.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]interface{})
}
