package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockFiresInOrder(t *testing.T) {
	clock := NewFrameClock()
	var got []string
	clock.Every(2*time.Second, func() { got = append(got, "slow") })
	clock.Every(time.Second, func() { got = append(got, "fast") })

	fired := clock.Advance(4 * time.Second)
	assert.Equal(t, 6, fired)
	assert.Equal(t, []string{"fast", "slow", "fast", "fast", "slow", "fast"}, got)
	assert.Equal(t, 4*time.Second, clock.Now())
}

func TestFrameClockSmallSteps(t *testing.T) {
	clock := NewFrameClock()
	n := 0
	clock.Every(time.Second, func() { n++ })

	frame := 50 * time.Millisecond
	for i := 0; i < 19; i++ {
		clock.Advance(frame)
	}
	assert.Equal(t, 0, n)
	clock.Advance(frame)
	assert.Equal(t, 1, n)
}

func TestFrameClockStop(t *testing.T) {
	clock := NewFrameClock()
	n := 0
	timer := clock.Every(time.Second, func() { n++ })
	clock.Advance(time.Second)
	timer.Stop()
	timer.Stop()
	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, clock.Pending())
}

func TestFrameClockStopFromCallback(t *testing.T) {
	clock := NewFrameClock()
	var victim Timer
	victimRuns := 0
	clock.Every(time.Second, func() { victim.Stop() })
	victim = clock.Every(time.Second, func() { victimRuns++ })

	clock.Advance(3 * time.Second)
	assert.Equal(t, 0, victimRuns)
}

func TestFrameClockScheduleFromCallback(t *testing.T) {
	clock := NewFrameClock()
	inner := 0
	var outer Timer
	outer = clock.Every(time.Second, func() {
		outer.Stop()
		clock.Every(time.Second, func() { inner++ })
	})

	clock.Advance(3 * time.Second)
	assert.Equal(t, 2, inner)
}

func TestFrameClockNonPositiveInterval(t *testing.T) {
	clock := NewFrameClock()
	n := 0
	clock.Every(0, func() { n++ })
	clock.Advance(time.Hour)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, clock.Pending())
}
