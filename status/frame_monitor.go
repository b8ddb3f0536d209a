package status

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/oled-xmas/constants"
)

// FrameMonitor measures frame durations and publishes them to a registry
type FrameMonitor struct {
	reg   *Registry
	start time.Time

	count   *atomic.Int64
	slow    *atomic.Int64
	avgUs   *AtomicFloat
	maxUs   *AtomicFloat
	lastLog time.Time

	// now is swapped in tests
	now func() time.Time
}

func NewFrameMonitor(reg *Registry) *FrameMonitor {
	return &FrameMonitor{
		reg:   reg,
		count: reg.Ints.Get(KeyFrames),
		slow:  reg.Ints.Get(KeySlowFrames),
		avgUs: reg.Floats.Get(KeyFrameAvgUs),
		maxUs: reg.Floats.Get(KeyFrameMaxUs),
		now:   time.Now,
	}
}

// StartFrame marks the beginning of a frame
func (m *FrameMonitor) StartFrame() {
	m.start = m.now()
}

// EndFrame records the frame, updating the running average and maximum
// Calls without a matching StartFrame are ignored
func (m *FrameMonitor) EndFrame() {
	if m.start.IsZero() {
		return
	}
	end := m.now()
	us := float64(end.Sub(m.start).Microseconds())
	m.start = time.Time{}

	n := m.count.Add(1)
	avg := m.avgUs.Get()
	m.avgUs.Set(avg + (us-avg)/float64(n))
	if us > m.maxUs.Get() {
		m.maxUs.Set(us)
	}

	if us > constants.SlowFrameUs {
		m.slow.Add(1)
		log.Printf("[WARN] slow frame: %.0f us", us)
	}

	if m.lastLog.IsZero() {
		m.lastLog = end
	} else if end.Sub(m.lastLog) >= constants.StatsIntervalMs*time.Millisecond {
		m.lastLog = end
		m.LogStats()
	}
}

// AverageFPS derives the frame rate the loop could sustain from the average frame time
func (m *FrameMonitor) AverageFPS() float64 {
	avg := m.avgUs.Get()
	if avg <= 0 {
		return 0
	}
	return 1e6 / avg
}

// LogStats writes the frame statistics and every registered metric
func (m *FrameMonitor) LogStats() {
	log.Printf("[INFO] frames=%d avg=%.2fus (%.1f FPS) max=%.0fus",
		m.count.Load(), m.avgUs.Get(), m.AverageFPS(), m.maxUs.Get())
	log.Printf("[INFO] status (%d metrics): %s", m.reg.TotalCount(), m.reg.Summary())
}
