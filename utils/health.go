package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything whose reachability the health monitor can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor periodically pings the bridge's dependencies and keeps the latest snapshot.
type HealthMonitor struct {
	targets  map[string]Pinger
	interval time.Duration
	timeout  time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(targets map[string]Pinger, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		targets:  targets,
		interval: interval,
		timeout:  5 * time.Second,
	}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every target once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	checks := make(map[string]bool, len(m.targets))
	healthy := true
	for name, target := range m.targets {
		pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
		ok := target.Ping(pingCtx) == nil
		cancel()
		checks[name] = ok
		healthy = healthy && ok
	}

	status := HealthStatus{Healthy: healthy, Checks: checks, CheckedAt: time.Now()}
	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs an immediate check and then re-checks every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
