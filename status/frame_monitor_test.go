package status

import (
	"io"
	"log"
	"os"
	"testing"
	"time"
)

// stepClock returns successive preset instants
type stepClock struct {
	times []time.Time
	i     int
}

func (c *stepClock) now() time.Time {
	t := c.times[c.i]
	c.i++
	return t
}

func TestFrameMonitorAverageAndMax(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	base := time.Unix(1000, 0)
	durations := []time.Duration{
		1 * time.Millisecond,
		3 * time.Millisecond,
		200 * time.Millisecond, // slow
		4 * time.Millisecond,
	}

	clock := &stepClock{}
	at := base
	for _, d := range durations {
		clock.times = append(clock.times, at, at.Add(d))
		at = at.Add(50 * time.Millisecond)
	}

	reg := NewRegistry()
	m := NewFrameMonitor(reg)
	m.now = clock.now

	for range durations {
		m.StartFrame()
		m.EndFrame()
	}

	if got := reg.Ints.Get(KeyFrames).Load(); got != 4 {
		t.Errorf("frames = %d, want 4", got)
	}
	if got := reg.Ints.Get(KeySlowFrames).Load(); got != 1 {
		t.Errorf("slow frames = %d, want 1", got)
	}
	if got := reg.Floats.Get(KeyFrameMaxUs).Get(); got != 200000 {
		t.Errorf("max = %v us, want 200000", got)
	}
	wantAvg := (1000.0 + 3000 + 200000 + 4000) / 4
	if got := reg.Floats.Get(KeyFrameAvgUs).Get(); got < wantAvg-1e-6 || got > wantAvg+1e-6 {
		t.Errorf("avg = %v us, want %v", got, wantAvg)
	}
	if got, want := m.AverageFPS(), 1e6/wantAvg; got < want-1e-6 || got > want+1e-6 {
		t.Errorf("AverageFPS = %v, want %v", got, want)
	}
}

func TestFrameMonitorUnmatchedEnd(t *testing.T) {
	reg := NewRegistry()
	m := NewFrameMonitor(reg)
	m.EndFrame()
	if got := reg.Ints.Get(KeyFrames).Load(); got != 0 {
		t.Errorf("frames = %d, want 0", got)
	}
	if m.AverageFPS() != 0 {
		t.Errorf("AverageFPS = %v, want 0", m.AverageFPS())
	}
}
