package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// envelope fades a stream in over attack samples and out over the final release samples
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope shapes s and cuts it off after duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume silences it
// math.Log2(0) is -Inf so silence is requested explicitly
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// bell renders one bell strike: a sine fundamental with a quieter octave overtone
func bell(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(rate, freq*2)
	if err != nil {
		return nil, err
	}

	attack := 5 * time.Millisecond
	mixed := beep.Mix(
		newVolume(newEnvelope(fund, duration, attack, duration*3/4, rate), 0.7),
		newVolume(newEnvelope(over, duration, attack, duration/2, rate), 0.3),
	)
	return beep.Take(rate.N(duration), mixed), nil
}
