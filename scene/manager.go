// Package scene cycles the display through its fixed set of scenes
package scene

import (
	"fmt"

	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/engine/fsm"
	"github.com/lixenwraith/oled-xmas/render"
	"github.com/lixenwraith/oled-xmas/sprite"
	"github.com/lixenwraith/oled-xmas/weather"
)

// Scene is one mode of the display, in presentation order
type Scene uint8

const (
	Tree Scene = iota
	Sleigh
	Fireplace
	WeatherView
	sceneCount
)

// Count is the number of scenes in the cycle
const Count = int(sceneCount)

func (s Scene) String() string {
	switch s {
	case Tree:
		return "Tree"
	case Sleigh:
		return "Sleigh"
	case Fireplace:
		return "Fireplace"
	case WeatherView:
		return "Weather"
	default:
		return "Unknown"
	}
}

// Listener is notified after each scene change
type Listener func(prev, next Scene, now engine.Millis)

// Manager owns the scene cycle and every sprite drawn by the scenes
type Manager struct {
	machine *fsm.Cycle[Scene]
	weather *weather.Cycle

	tree      *sprite.Tree
	star      *sprite.Star
	snowman   *sprite.Snowman
	sleigh    *sprite.Sleigh
	fireplace *sprite.Fireplace
	ticker    *sprite.Ticker
}

// NewManager creates a manager starting at the Tree scene
func NewManager(w *weather.Cycle, rng engine.Random, now engine.Millis) *Manager {
	m := &Manager{
		machine:   fsm.NewCycle(Tree, sceneCount, constants.SceneDurationMs, now),
		weather:   w,
		tree:      sprite.NewTree(),
		star:      sprite.NewStar(),
		snowman:   sprite.NewSnowman(),
		sleigh:    sprite.NewSleigh(),
		fireplace: sprite.NewFireplace(rng),
		ticker:    sprite.NewTicker(constants.ScrollText),
	}
	m.enter(Tree, now)
	m.machine.OnEnter(func(_, next Scene, now engine.Millis) {
		m.enter(next, now)
	})
	return m
}

// OnChange registers a listener for scene transitions
func (m *Manager) OnChange(fn Listener) {
	m.machine.OnEnter(fsm.EnterFunc[Scene](fn))
}

// Current returns the active scene
func (m *Manager) Current() Scene {
	return m.machine.Current()
}

// Weather returns the weather cycle used by weather-bearing scenes
func (m *Manager) Weather() *weather.Cycle {
	return m.weather
}

func (m *Manager) Sleigh() *sprite.Sleigh { return m.sleigh }
func (m *Manager) Ticker() *sprite.Ticker { return m.ticker }

// Advance moves to the next scene when the scene period elapsed
func (m *Manager) Advance(now engine.Millis) bool {
	return m.machine.Advance(now)
}

// enter restarts the sprite state of the scene being shown
func (m *Manager) enter(s Scene, now engine.Millis) {
	switch s {
	case Tree:
		m.tree.Reset(now)
		m.star.Reset(now)
		m.snowman.Reset(now)
	case Sleigh:
		m.sleigh.Reset(now)
	case Fireplace:
		m.fireplace.Reset(now)
	case WeatherView:
	default:
		panic(fmt.Sprintf("scene: unhandled scene %d", s))
	}
}

// Update advances the cycle and draws the active scene followed by the scrolling text
func (m *Manager) Update(now engine.Millis, canvas render.Canvas) {
	m.Advance(now)

	switch s := m.machine.Current(); s {
	case Tree:
		m.tree.Draw(now, canvas)
		m.star.Draw(now, canvas)
		m.snowman.Draw(now, canvas)
		sprite.DrawPresents(canvas)
	case Sleigh:
		m.sleigh.Draw(now, canvas)
		m.weather.Update(now, canvas)
	case Fireplace:
		m.fireplace.Draw(now, canvas)
		sprite.DrawPresents(canvas)
	case WeatherView:
		m.weather.Update(now, canvas)
	default:
		panic(fmt.Sprintf("scene: unhandled scene %d", s))
	}

	m.ticker.Draw(now, canvas)
}
