package engine

import (
	"fmt"

	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/render"
)

// Stage is a state machine advanced and drawn once per tick
type Stage interface {
	Update(now Millis, canvas render.Canvas)
}

// Monitor brackets each tick for timing
type Monitor interface {
	StartFrame()
	EndFrame()
}

// Order selects which stage draws first; the later one draws on top
type Order uint8

const (
	// OverlayFirst runs the day/night overlay before the scene, as the device does
	OverlayFirst Order = iota
	// SceneFirst runs the scene before the overlay
	SceneFirst
)

func (o Order) String() string {
	switch o {
	case OverlayFirst:
		return "overlay"
	case SceneFirst:
		return "scene"
	default:
		return "unknown"
	}
}

// ParseOrder maps "overlay" or "scene" to an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "overlay":
		return OverlayFirst, nil
	case "scene":
		return SceneFirst, nil
	default:
		return OverlayFirst, fmt.Errorf("unknown stage order %q (want overlay or scene)", s)
	}
}

// FrameConfig wires the collaborators of a FrameClock
type FrameConfig struct {
	Clock     Clock
	Canvas    *render.Bitmap
	Presenter render.Presenter
	Overlay   Stage
	Scene     Stage
	Order     Order
	Monitor   Monitor // optional
}

// FrameClock runs one synchronous tick per loop iteration
// The stage order is fixed at construction so it cannot change between ticks
type FrameClock struct {
	clock     Clock
	canvas    *render.Bitmap
	presenter render.Presenter
	stages    [2]Stage
	order     Order
	monitor   Monitor
	ticks     uint64
	last      Millis
}

// NewFrameClock creates a frame clock from cfg
func NewFrameClock(cfg FrameConfig) *FrameClock {
	fc := &FrameClock{
		clock:     cfg.Clock,
		canvas:    cfg.Canvas,
		presenter: cfg.Presenter,
		order:     cfg.Order,
		monitor:   cfg.Monitor,
	}
	if cfg.Order == SceneFirst {
		fc.stages = [2]Stage{cfg.Scene, cfg.Overlay}
	} else {
		fc.stages = [2]Stage{cfg.Overlay, cfg.Scene}
	}
	return fc
}

// Tick clears the canvas, draws the frame border, runs both stages and presents the result
// Only presenting can fail
func (fc *FrameClock) Tick() error {
	if fc.monitor != nil {
		fc.monitor.StartFrame()
		defer fc.monitor.EndFrame()
	}

	now := fc.clock.Now()
	fc.last = now
	fc.ticks++

	fc.canvas.Clear()
	fc.canvas.SetDrawColor(render.ColorSet)
	fc.canvas.DrawFrame(constants.XOffset, constants.YOffset, constants.FrameWidth, constants.FrameHeight)

	for _, stage := range fc.stages {
		stage.Update(now, fc.canvas)
	}

	if fc.presenter == nil {
		return nil
	}
	if err := fc.presenter.Present(fc.canvas); err != nil {
		return fmt.Errorf("present frame %d: %w", fc.ticks, err)
	}
	return nil
}

// Ticks returns the number of completed ticks
func (fc *FrameClock) Ticks() uint64 { return fc.ticks }

// LastTick returns the clock value of the latest tick
func (fc *FrameClock) LastTick() Millis { return fc.last }

func (fc *FrameClock) Order() Order           { return fc.order }
func (fc *FrameClock) Canvas() *render.Bitmap { return fc.canvas }
