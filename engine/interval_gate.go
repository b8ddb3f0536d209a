package engine

// IntervalGate reports when at least Interval milliseconds passed since it last fired
// Elapsed time uses unsigned modular subtraction so the gate keeps working across
// a wrap of the millisecond counter
type IntervalGate struct {
	lastFire Millis
	interval Millis
	enabled  bool
}

// NewIntervalGate creates an enabled gate measuring from zero
func NewIntervalGate(interval Millis) *IntervalGate {
	return &IntervalGate{interval: interval, enabled: true}
}

// ShouldFire returns true at most once per interval and restarts the window when it does
// A disabled gate returns false and leaves its state untouched
func (g *IntervalGate) ShouldFire(now Millis) bool {
	if !g.enabled {
		return false
	}
	if now-g.lastFire >= g.interval {
		g.lastFire = now
		return true
	}
	return false
}

// Reset makes the next window start at now
func (g *IntervalGate) Reset(now Millis) {
	g.lastFire = now
}

// SetInterval changes the window length without touching the last fire time
func (g *IntervalGate) SetInterval(interval Millis) {
	g.interval = interval
}

// Interval returns the window length
func (g *IntervalGate) Interval() Millis {
	return g.interval
}

// LastFire returns the timestamp of the last fire or reset
func (g *IntervalGate) LastFire() Millis {
	return g.lastFire
}

func (g *IntervalGate) Enable()  { g.enabled = true }
func (g *IntervalGate) Disable() { g.enabled = false }

// Enabled reports whether the gate can fire
func (g *IntervalGate) Enabled() bool {
	return g.enabled
}

// Progress returns the elapsed fraction of the current window clamped to [0,1]
// Zero when disabled or when the interval is zero
func (g *IntervalGate) Progress(now Millis) float32 {
	if !g.enabled || g.interval == 0 {
		return 0
	}
	p := float32(now-g.lastFire) / float32(g.interval)
	if p > 1 {
		return 1
	}
	return p
}
