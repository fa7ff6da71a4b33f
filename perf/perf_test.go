package perf

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t    time.Time
	step []time.Duration
}

func (c *fakeClock) now() time.Time {
	now := c.t
	if len(c.step) > 0 {
		c.t = c.t.Add(c.step[0])
		c.step = c.step[1:]
	}

	return now
}

func TestMeasure(t *testing.T) {
	var buf bytes.Buffer
	timer := New(log.New(&buf, "", 0))
	clock := &fakeClock{t: time.Unix(0, 0), step: []time.Duration{
		2 * time.Millisecond, 0,
		4 * time.Millisecond, 0,
		6 * time.Millisecond, 0,
	}}
	timer.Now = clock.now

	ran := 0
	for i := 0; i < 3; i++ {
		timer.Measure("render", func() { ran++ })
	}
	require.Equal(t, 3, ran)

	s, ok := timer.Stats("render")
	require.True(t, ok)
	require.Equal(t, Stats{
		Avg:     4 * time.Millisecond,
		Min:     2 * time.Millisecond,
		Max:     6 * time.Millisecond,
		Samples: 3,
	}, s)
	require.Contains(t, buf.String(), "render took 2ms")

	_, ok = timer.Stats("missing")
	require.False(t, ok)

	buf.Reset()
	timer.LogStats()
	require.Equal(t, "render stats: avg 4ms, min 2ms, max 6ms, samples 3\n", buf.String())

	timer.Measure("route_render", func() {})
	require.Equal(t, []string{"render", "route_render"}, timer.Names())

	timer.Reset()
	require.Empty(t, timer.Names())
}
