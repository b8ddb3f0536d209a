package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/daynight"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/particle"
	"github.com/lixenwraith/oled-xmas/render"
	"github.com/lixenwraith/oled-xmas/scene"
	"github.com/lixenwraith/oled-xmas/status"
	"github.com/lixenwraith/oled-xmas/weather"
)

// appConfig carries the collaborators chosen by main
type appConfig struct {
	clock     engine.Clock
	rng       engine.Random
	presenter render.Presenter
	order     engine.Order
	registry  *status.Registry
	monitor   engine.Monitor
}

// app owns every long-lived state machine; each is created once and injected
type app struct {
	clock    engine.Clock
	frames   *engine.FrameClock
	sky      *daynight.Cycle
	scenes   *scene.Manager
	weather  *weather.Cycle
	registry *status.Registry
}

func newApp(cfg appConfig) *app {
	now := cfg.clock.Now()

	pool := particle.NewPool(particle.FrameBounds())
	w := weather.New(pool, cfg.rng, now)
	sky := daynight.New(now)
	scenes := scene.NewManager(w, cfg.rng, now)

	a := &app{
		clock:    cfg.clock,
		sky:      sky,
		scenes:   scenes,
		weather:  w,
		registry: cfg.registry,
		frames: engine.NewFrameClock(engine.FrameConfig{
			Clock:     cfg.clock,
			Canvas:    render.NewBitmap(constants.ScreenWidth, constants.ScreenHeight),
			Presenter: cfg.presenter,
			Overlay:   sky,
			Scene:     scenes,
			Order:     cfg.order,
			Monitor:   cfg.monitor,
		}),
	}

	scenes.OnChange(func(prev, next scene.Scene, now engine.Millis) {
		log.Printf("[INFO] scene %s -> %s at %dms", prev, next, now)
	})
	w.OnChange(func(prev, next weather.Weather) {
		log.Printf("[INFO] weather %s -> %s", prev, next)
	})
	sky.OnChange(func(prev, next daynight.Phase) {
		log.Printf("[INFO] sky %s -> %s", prev, next)
	})

	if a.registry == nil {
		a.registry = status.NewRegistry()
	}
	a.publish()
	return a
}

// tick runs one frame and refreshes the published metrics
func (a *app) tick() error {
	err := a.frames.Tick()
	a.publish()
	if err != nil {
		a.registry.Ints.Get(status.KeyPresentError).Add(1)
	}
	return err
}

func (a *app) publish() {
	a.registry.Strings.Get(status.KeyScene).Store(a.scenes.Current().String())
	a.registry.Strings.Get(status.KeyWeather).Store(a.weather.Current().String())
	a.registry.Bools.Get(status.KeyNight).Store(a.sky.IsNight())
	a.registry.Ints.Get(status.KeyParticles).Store(int64(a.weather.Pool().ActiveCount()))
}

// caption summarizes the visible state for the line under the panel
func (a *app) caption() string {
	return fmt.Sprintf("%-9s %-5s %-5s particles %2d/%d",
		a.scenes.Current(), a.weather.Current(), a.sky.Phase(),
		a.weather.Pool().ActiveCount(), a.weather.Pool().Cap())
}
