package remind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonitorFiresOncePerInterval(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	m := NewMonitor(2 * time.Hour)
	m.Watch(start)

	assert.False(t, m.Due(start.Add(time.Hour)))
	assert.True(t, m.Due(start.Add(2*time.Hour)), "fires at the threshold")
	assert.False(t, m.Due(start.Add(3*time.Hour)), "one nudge per interval")

	// a new interval rearms
	m.Watch(start.Add(4 * time.Hour))
	assert.True(t, m.Due(start.Add(7*time.Hour)))
}

func TestMonitorClear(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	m := NewMonitor(time.Minute)
	m.Watch(start)
	m.Clear()

	assert.False(t, m.Due(start.Add(time.Hour)))
}

func TestMonitorDisabledThreshold(t *testing.T) {
	m := NewMonitor(0)
	m.Watch(time.Unix(1_700_000_000, 0))
	assert.False(t, m.Due(time.Unix(1_800_000_000, 0)))
}

func TestOverdue(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)

	assert.False(t, Overdue(start, start.Add(time.Hour), 2*time.Hour))
	assert.True(t, Overdue(start, start.Add(2*time.Hour), 2*time.Hour))
	assert.False(t, Overdue(start, start.Add(time.Hour), 0), "zero threshold never fires")
}
