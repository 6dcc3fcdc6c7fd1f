// ABOUTME: Edge-triggered connectivity monitor feeding the reconciliation engine
// ABOUTME: An offline→online transition fires one sync trigger; no polling loop
package sync

import (
	"context"
	"sync/atomic"
)

// Monitor tracks connectivity as reported by the surrounding environment and
// turns the offline→online edge into a sync trigger. It never polls the
// network itself.
type Monitor struct {
	engine   *Engine
	online   atomic.Bool
	indicate func(online bool)
}

// NewMonitor creates a monitor in the offline state. indicate receives every
// connectivity change for UI display and may be nil.
func NewMonitor(engine *Engine, indicate func(online bool)) *Monitor {
	if indicate == nil {
		indicate = func(bool) {}
	}
	return &Monitor{engine: engine, indicate: indicate}
}

// Online reports the last connectivity state the monitor was given.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// SetOnline records a connectivity change. Only a genuine offline→online
// transition triggers a sync; repeated reports of the same state do nothing.
func (m *Monitor) SetOnline(ctx context.Context, online bool) {
	if !m.online.CompareAndSwap(!online, online) {
		return
	}
	m.indicate(online)
	if online {
		m.engine.TriggerSync(ctx)
	}
}
