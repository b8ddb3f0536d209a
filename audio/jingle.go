package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Note is one strike of a jingle; Freq 0 is a rest
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Jingles per scene index, in scene order
var sceneJingles = [][]Note{
	{{784, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {784, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {784, 180 * time.Millisecond}},
	{{1047, 60 * time.Millisecond}, {1175, 60 * time.Millisecond}, {1319, 60 * time.Millisecond}, {1568, 120 * time.Millisecond}},
	{{523, 120 * time.Millisecond}, {392, 180 * time.Millisecond}},
	{{659, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {880, 150 * time.Millisecond}},
}

// SceneJingle returns the notes played when scene i starts; wraps for out of range indices
func SceneJingle(i int) []Note {
	if i < 0 {
		i = -i
	}
	return sceneJingles[i%len(sceneJingles)]
}

// Length returns the total duration of notes
func Length(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.Duration
	}
	return d
}

// NewJingle sequences notes into a finite stream
func NewJingle(notes []Note, rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for i, n := range notes {
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(n.Duration)))
			continue
		}
		s, err := bell(n.Freq, n.Duration, rate)
		if err != nil {
			return nil, fmt.Errorf("note %d (%.0f Hz): %w", i, n.Freq, err)
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}
