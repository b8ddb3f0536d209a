package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays short jingles through the speaker
// A muted or uninitialized chime accepts every call and plays nothing
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewChime creates a chime at the given linear volume
func NewChime(volume float64, muted bool) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Initialize opens the speaker and starts the mixer; no-op when muted
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.muted || c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Active reports whether jingles will be heard
func (c *Chime) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized && !c.muted
}

// Play queues notes on the mixer, returning immediately
func (c *Chime) Play(notes []Note) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	s, err := NewJingle(notes, sampleRate)
	if err != nil {
		log.Printf("[WARN] jingle: %v", err)
		return
	}

	speaker.Lock()
	c.mixer.Add(newVolume(s, c.volume))
	speaker.Unlock()
	log.Printf("[INFO] jingle queued: %d notes, %v", len(notes), Length(notes))
}

// PlayScene plays the jingle of scene index i
func (c *Chime) PlayScene(i int) {
	c.Play(SceneJingle(i))
}

// SetMuted toggles output without closing the speaker
func (c *Chime) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// Cleanup drops queued jingles and closes the speaker
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}
