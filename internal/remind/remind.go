// Package remind decides when a running timer has gone on long enough to
// deserve a nudge, most often because someone forgot to stop it.
package remind

import "time"

// Monitor watches one open interval and yields at most one nudge per
// interval once the threshold passes. The TUI's countdown tick drives it.
type Monitor struct {
	after   time.Duration
	started time.Time
	armed   bool
}

func NewMonitor(after time.Duration) *Monitor {
	return &Monitor{after: after}
}

// Watch (re)arms the monitor for an interval that started at t.
func (m *Monitor) Watch(t time.Time) {
	m.started = t
	m.armed = true
}

// Clear disarms the monitor, when the timer stops or the project is
// switched away.
func (m *Monitor) Clear() {
	m.armed = false
}

// Due reports whether the nudge should fire at now. Firing disarms the
// monitor, so each interval nudges at most once.
func (m *Monitor) Due(now time.Time) bool {
	if !m.armed || m.after <= 0 {
		return false
	}
	if now.Sub(m.started) >= m.after {
		m.armed = false
		return true
	}
	return false
}

// Overdue reports whether an interval begun at started has outlived the
// threshold. Status displays use it for a one-line warning.
func Overdue(started, now time.Time, after time.Duration) bool {
	return after > 0 && now.Sub(started) >= after
}
