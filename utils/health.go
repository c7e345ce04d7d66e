package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the session store.
type HealthStatus struct {
	SessionStore string    `json:"sessionStore"`
	Healthy      bool      `json:"healthy"`
	CheckedAt    time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot of the session store.
type HealthMonitor struct {
	store  string
	pinger Pinger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(store string, pinger Pinger) *HealthMonitor {
	return &HealthMonitor{store: store, pinger: pinger}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes the session store once and records the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := m.pinger.Ping(ctx)
	if err != nil {
		GetLogger().Warn("Session store health check failed", zap.String("store", m.store), zap.Error(err))
	}

	status := HealthStatus{
		SessionStore: m.store,
		Healthy:      err == nil,
		CheckedAt:    time.Now(),
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()

	return status
}

// Start performs an immediate check and then one per interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)

	go func() {
		ticker := time.NewTicker(interval)
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
