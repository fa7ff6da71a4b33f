// Package perf keeps timing samples for named operations.
package perf

import (
	"log"
	"sort"
	"time"

	"github.com/gowade/tinyui/logutil"
)

type Stats struct {
	Avg, Min, Max time.Duration
	Samples       int
}

// Timer records how long measured operations take. The zero value is not
// usable, create one with New.
type Timer struct {
	// Now is the clock, time.Now unless replaced.
	Now     func() time.Time
	logger  *log.Logger
	samples map[string][]time.Duration
}

func New(logger *log.Logger) *Timer {
	return &Timer{
		Now:     time.Now,
		logger:  logutil.OrDiscard(logger),
		samples: make(map[string][]time.Duration),
	}
}

// Measure runs fn and records its duration under name.
func (t *Timer) Measure(name string, fn func()) time.Duration {
	start := t.Now()
	fn()
	d := t.Now().Sub(start)

	t.samples[name] = append(t.samples[name], d)
	t.logger.Printf("%s took %s", name, ms(d))
	return d
}

func (t *Timer) Stats(name string) (Stats, bool) {
	ds, ok := t.samples[name]
	if !ok || len(ds) == 0 {
		return Stats{}, false
	}

	s := Stats{Min: ds[0], Max: ds[0], Samples: len(ds)}
	var sum time.Duration
	for _, d := range ds {
		sum += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}

	s.Avg = sum / time.Duration(len(ds))
	return s, true
}

// Names lists the measured operations, sorted.
func (t *Timer) Names() []string {
	names := make([]string, 0, len(t.samples))
	for name := range t.samples {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Reset drops every sample.
func (t *Timer) Reset() {
	t.samples = make(map[string][]time.Duration)
}

// LogStats logs the stats of every measured operation.
func (t *Timer) LogStats() {
	for _, name := range t.Names() {
		s, _ := t.Stats(name)
		t.logger.Printf("%s stats: avg %s, min %s, max %s, samples %d",
			name, ms(s.Avg), ms(s.Min), ms(s.Max), s.Samples)
	}
}

func ms(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
