package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Timer records how long named runs take and renders a summary, fastest
// first. It is safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	timings map[string]time.Duration
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{timings: make(map[string]time.Duration)}
}

// TimeRun measures fn under the given name, keeping the fastest observation
// when the same name is timed more than once.
func (t *Timer) TimeRun(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.timings[name]; !ok || elapsed < prev {
		t.timings[name] = elapsed
	}
	return err
}

// Results renders the recorded timings sorted fastest first.
func (t *Timer) Results() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.timings))
	for name := range t.timings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return t.timings[names[i]] < t.timings[names[j]]
	})

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s executed in %v\n", name, t.timings[name].Round(time.Millisecond))
	}
	return b.String()
}
