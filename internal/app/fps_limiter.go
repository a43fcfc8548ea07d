package app

import (
	"time"

	"holey-shapes/internal/config"
)

// pausedFPS caps the loop while the animation is stopped; the window still
// has to redraw and respond to input.
const pausedFPS = 30

// spinWindow is how close to the deadline the limiter stops sleeping and
// starts polling the clock.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the frame loop to the configured frame rate cap.
type FPSLimiter struct {
	limit func() int
	next  time.Time
}

// NewFPSLimiter creates a limiter that reads the cap from limit each frame;
// nil reads the live render settings.
func NewFPSLimiter(limit func() int) *FPSLimiter {
	if limit == nil {
		limit = config.GetFPSLimit
	}
	return &FPSLimiter{limit: limit}
}

// Interval returns the target frame time, or 0 when uncapped.
func (f *FPSLimiter) Interval(paused bool) time.Duration {
	limit := f.limit()
	if paused && (limit <= 0 || limit > pausedFPS) {
		limit = pausedFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due. It sleeps most of the way and
// spins for the last stretch, and drops the schedule after a long hitch
// rather than racing to catch up.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.Interval(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
