package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/oled-xmas/audio"
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
	"github.com/lixenwraith/oled-xmas/scene"
	"github.com/lixenwraith/oled-xmas/service"
	"github.com/lixenwraith/oled-xmas/status"
)

var (
	debugFlag    = flag.Bool("debug", false, "write a debug log to logs/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "disable scene jingles")
	volumeFlag   = flag.Float64("volume", 0.3, "jingle volume (0-1)")
	phosphorFlag = flag.String("phosphor", render.DefaultPhosphor, "hex color of lit pixels")
	orderFlag    = flag.String("order", "overlay", "stage drawn first: overlay (day/night) or scene")
	snapshotFlag = flag.Int("snapshot", 0, "run N ticks of simulated time, print the frame and exit")
	seedFlag     = flag.Int64("seed", 0, "random seed (0 = time based)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	phosphor, err := render.NewPhosphor(*phosphorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	order, err := engine.ParseOrder(*orderFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if *snapshotFlag > 0 {
		if err := runSnapshot(*snapshotFlag, rng, order, phosphor); err != nil {
			fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(rng, order, phosphor); err != nil {
		fmt.Fprintf(os.Stderr, "oled-xmas: %v\n", err)
		os.Exit(1)
	}
}

// runSnapshot advances a mock clock tick by tick without sleeping and prints the final frame
func runSnapshot(ticks int, rng *rand.Rand, order engine.Order, phosphor render.Phosphor) error {
	clock := engine.NewMockClock(0)
	a := newApp(appConfig{clock: clock, rng: rng, order: order})

	for i := 0; i < ticks; i++ {
		if err := a.tick(); err != nil {
			return err
		}
		clock.Advance(constants.FrameDelayMs)
	}

	printer := render.NewSnapshotPrinter(os.Stdout, phosphor)
	if err := printer.Present(a.frames.Canvas()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, a.caption())
	return nil
}

// newServices registers the front-end services on a hub and logs their start order
func newServices(display *render.ScreenService, chime *audio.Chime) (*service.Hub, error) {
	hub := service.NewHub()
	for _, svc := range []service.Service{display, chime, status.NewService()} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}

	names, err := hub.Order()
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] services: %v", names)
	return hub, nil
}

func runTerminal(rng *rand.Rand, order engine.Order, phosphor render.Phosphor) error {
	hub, err := newServices(render.NewScreenService(), audio.NewChime(*volumeFlag, *muteFlag))
	if err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			hub.StopAll()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mOLED-XMAS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer hub.StopAll()

	if err := hub.StartAll(); err != nil {
		return err
	}

	chime := service.MustGet[*audio.Chime](hub, "audio")
	stats := service.MustGet[*status.Service](hub, "status")
	screen := service.MustGet[*render.ScreenService](hub, "display").Screen()
	presenter := render.NewTerminalRenderer(screen, phosphor)

	a := newApp(appConfig{
		clock:     engine.NewMonotonicClock(),
		rng:       rng,
		presenter: presenter,
		order:     order,
		registry:  stats.Registry(),
		monitor:   stats.Monitor(),
	})
	a.scenes.OnChange(func(_, next scene.Scene, _ engine.Millis) {
		chime.PlayScene(int(next))
	})

	log.Printf("[INFO] oled-xmas started: order=%s audio=%t", order, chime.Active())
	return runLoop(screen, presenter, a, chime, stats.Monitor())
}

func runLoop(screen tcell.Screen, presenter *render.TerminalRenderer, a *app, chime *audio.Chime, monitor *status.FrameMonitor) error {
	ticker := time.NewTicker(constants.FrameDelayMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	muted := *muteFlag
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune {
					switch ev.Rune() {
					case 'q':
						return nil
					case 'm':
						muted = !muted
						chime.SetMuted(muted)
						if !muted && !chime.Active() {
							if err := chime.Initialize(); err != nil {
								log.Printf("[WARN] audio initialization failed: %v", err)
							}
						}
						log.Printf("[INFO] muted=%t audio=%t", muted, chime.Active())
					case 's':
						monitor.LogStats()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			presenter.SetCaption(a.caption())
			if err := a.tick(); err != nil {
				return err
			}
		}
	}
}
