package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLimit(n int) func() int { return func() int { return n } }

func TestFPSLimiterInterval(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		paused bool
		want   time.Duration
	}{
		{"capped", 50, false, 20 * time.Millisecond},
		{"uncapped", 0, false, 0},
		{"paused uncapped", 0, true, time.Second / pausedFPS},
		{"paused above idle rate", 120, true, time.Second / pausedFPS},
		{"paused below idle rate", 20, true, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFPSLimiter(fixedLimit(tt.limit)).Interval(tt.paused))
		})
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := NewFPSLimiter(fixedLimit(200))
	start := time.Now()
	for range 10 {
		f.Wait(false)
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFPSLimiterUncappedDoesNotBlock(t *testing.T) {
	f := NewFPSLimiter(fixedLimit(0))
	start := time.Now()
	for range 1000 {
		f.Wait(false)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}
