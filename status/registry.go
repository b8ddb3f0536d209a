package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the frame loop
const (
	KeyFrames       = "frame.count"
	KeyFrameAvgUs   = "frame.avg_us"
	KeyFrameMaxUs   = "frame.max_us"
	KeySlowFrames   = "frame.slow"
	KeyScene        = "scene.current"
	KeyWeather      = "weather.current"
	KeyNight        = "sky.night"
	KeyParticles    = "particles.active"
	KeyPresentError = "present.errors"
)

// Registry groups metrics by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as sorted key=value pairs grouped by type
func (r *Registry) Summary() string {
	var parts []string
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
