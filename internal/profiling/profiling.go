// Package profiling is a lightweight per-frame CPU profiler.
//
// Usage: defer profiling.Track("scene.RenderFrame")()
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Sample is the accumulated time of one tracked name in the current frame.
type Sample struct {
	Name     string
	Duration time.Duration
}

func (s Sample) String() string {
	return fmt.Sprintf("%s:%.1fms", s.Name, float64(s.Duration.Microseconds())/1000.0)
}

// Track returns a stop function that records the elapsed time under name.
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name without timing anything itself.
func Add(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

// ResetFrame clears the per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every name starting with prefix, e.g. "glfw.".
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN returns the n most expensive samples of the current frame, longest
// first. Ties are ordered by name.
func TopN(n int) []Sample {
	ss := Snapshot()
	list := make([]Sample, 0, len(ss))
	for k, v := range ss {
		list = append(list, Sample{Name: k, Duration: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Duration != list[j].Duration {
			return list[i].Duration > list[j].Duration
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// Format joins samples as "a:4.2ms, b:2.1ms".
func Format(samples []Sample) string {
	parts := make([]string, len(samples))
	for i, s := range samples {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// Log writes the top n samples of the frame to ev.
func Log(ev *zerolog.Event, n int) {
	ev.Str("top", Format(TopN(n))).Msg("frame profile")
}
