package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvanceFiresDueTimers(t *testing.T) {
	clk := NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var fired []string
	clk.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	clk.AfterFunc(1*time.Second, func() { fired = append(fired, "first") })

	clk.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)

	clk.Advance(2 * time.Second)
	assert.Equal(t, []string{"first", "second"}, fired)
}

func TestManualStopPreventsFiring(t *testing.T) {
	clk := NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	fired := false
	timer := clk.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	clk.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, timer.Stop())
}

func TestManualTimerFiresOnce(t *testing.T) {
	clk := NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	count := 0
	clk.AfterFunc(time.Second, func() { count++ })

	clk.Advance(time.Second)
	clk.Advance(time.Second)
	assert.Equal(t, 1, count)
}

func TestManualCallbackCanScheduleAnotherTimer(t *testing.T) {
	clk := NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	chained := false
	clk.AfterFunc(time.Second, func() {
		clk.AfterFunc(time.Second, func() { chained = true })
	})

	clk.Advance(time.Second)
	assert.False(t, chained)
	clk.Advance(time.Second)
	assert.True(t, chained)
}

func TestManualNow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewManual(start)

	assert.Equal(t, start, clk.Now())
	clk.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clk.Now())
}
