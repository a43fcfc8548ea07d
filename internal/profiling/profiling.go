package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Frame accumulates named CPU timings for the frame being drawn.
// The zero value is ready to use.
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	start  time.Time
}

// Begin clears the previous frame's totals. Call it at the top of each frame.
func (f *Frame) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.totals)
	f.start = time.Now()
}

// Elapsed returns the time since Begin.
func (f *Frame) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return time.Since(f.start)
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer frame.Track("scene.Update")()
func (f *Frame) Track(name string) func() {
	start := time.Now()
	return func() {
		f.Add(name, time.Since(start))
	}
}

// Add records d under name.
func (f *Frame) Add(name string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.totals == nil {
		f.totals = make(map[string]time.Duration)
	}
	f.totals[name] += d
}

// Snapshot returns a copy of the current totals.
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, e.g. "mesh.Upload:4.2ms, scene.Update:0.3ms".
func (f *Frame) TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	ss := f.Snapshot()
	list := make([]entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
