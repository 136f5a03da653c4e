// Package main is a terminal demo for the aurora input pipeline: it wires
// the input manager, the gesture recognizers, and the Lua shortcut actions
// to a tcell screen and prints what the pipeline recognizes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dshills/aurora/internal/config"
	"github.com/dshills/aurora/internal/config/watcher"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/gesture"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/manager"
	"github.com/dshills/aurora/internal/platform/terminal"
	"github.com/dshills/aurora/internal/script"

	"github.com/gdamore/tcell/v2"
	lua "github.com/yuin/gopher-lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// tickInterval drives ProcessEvents, and with it key-repeat synthesis.
const tickInterval = 25 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "aurora.toml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "aurora.toml", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("aurora %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.shutdown()

	if w := startConfigWatcher(configPath, app); w != nil {
		defer func() { _ = w.Stop() }()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.quit()
	}()

	return app.loop()
}

// app bundles the wired pipeline.
type app struct {
	screen tcell.Screen
	source *terminal.Source

	mgr         *manager.Manager
	recognizers []gesture.Recognizer
	engine      *script.Engine

	quitCh   chan struct{}
	reloadCh chan config.Config
	quitOnce sync.Once
}

func newApp(cfg config.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()

	a := &app{
		screen:   screen,
		source:   terminal.NewSource(screen),
		mgr:      manager.New(cfg.ManagerConfig()),
		engine:   script.New(),
		quitCh:   make(chan struct{}),
		reloadCh: make(chan config.Config, 1),
	}

	a.recognizers = []gesture.Recognizer{
		gesture.NewTap(cfg.Tap.TapConfig()),
		gesture.NewLongPress(cfg.LongPress.LongPressConfig()),
		gesture.NewSwipe(cfg.Swipe.SwipeConfig()),
		gesture.NewPinch(cfg.Pinch.PinchConfig()),
	}

	a.engine.RegisterModule("shell", map[string]lua.LGFunction{
		"notify": func(L *lua.LState) int {
			a.printf("lua: %s", L.CheckString(1))
			return 0
		},
		"quit": func(L *lua.LState) int {
			a.quit()
			return 0
		},
	})

	// The recognizers ride the dispatch stream as one global handler.
	a.mgr.AddHandler(func(ev *event.Event) bool {
		for _, r := range a.recognizers {
			if info := r.Update(ev); info != nil {
				a.printGesture(info)
			}
		}
		return true
	})

	a.registerShortcuts(cfg.Shortcuts)
	return a, nil
}

func (a *app) registerShortcuts(entries []config.ShortcutEntry) {
	quitChord := key.NewRuneChord('q', key.ModCtrl)
	a.mgr.RegisterShortcut(manager.Shortcut{Chord: quitChord, Description: "Quit"}, a.quit)

	for _, entry := range entries {
		chord, err := key.Parse(entry.Keys)
		if err != nil {
			log.Printf("shortcut %q: %v", entry.Keys, err)
			continue
		}
		a.mgr.RegisterShortcut(
			manager.Shortcut{Chord: chord, Description: entry.Description},
			a.engine.Action(entry.Action),
		)
	}
}

// loop is the single thread that owns the manager: terminal events are
// pumped in from a poll goroutine, and a ticker drives ProcessEvents.
func (a *app) loop() int {
	type batch struct {
		events []*event.Event
		ok     bool
	}
	batches := make(chan batch)
	go func() {
		for {
			evs, ok := a.source.Poll()
			batches <- batch{evs, ok}
			if !ok {
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.quitCh:
			return 0

		case b := <-batches:
			if !b.ok {
				return 0
			}
			for _, ev := range b.events {
				a.mgr.PushEvent(ev)
			}
			a.mgr.ProcessEvents(a.source.Now())

		case <-ticker.C:
			a.mgr.ProcessEvents(a.source.Now())

		case cfg := <-a.reloadCh:
			a.applyConfig(cfg)
			a.printf("config reloaded")
		}
	}
}

func (a *app) quit() {
	a.quitOnce.Do(func() {
		close(a.quitCh)
		a.source.Interrupt()
	})
}

func (a *app) shutdown() {
	a.screen.Fini()
	a.engine.Close()
}

func (a *app) printGesture(info *gesture.Info) {
	switch info.Type {
	case gesture.TypePinch:
		a.printf("%s %s scale=%.2f pattern=%s", info.Type, info.State, info.Scale, info.Pattern)
	case gesture.TypeSwipe:
		a.printf("%s %s dir=%s delta=(%.0f,%.0f)", info.Type, info.State,
			info.SwipeDirection, info.Delta.X, info.Delta.Y)
	case gesture.TypeLongPress:
		a.printf("%s held=%s at (%.0f,%.0f)", info.Type, info.LongPressDuration,
			info.Position.X, info.Position.Y)
	default:
		a.printf("%s %s at (%.0f,%.0f)", info.Type, info.State,
			info.Position.X, info.Position.Y)
	}
}

// printf writes one status line to the top of the screen.
func (a *app) printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	width, _ := a.screen.Size()
	style := tcell.StyleDefault
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(msg) {
			r = rune(msg[x])
		}
		a.screen.SetContent(x, 0, r, nil, style)
	}
	a.screen.Show()
}

// startConfigWatcher hot-applies threshold changes from the config file.
func startConfigWatcher(path string, a *app) *watcher.Watcher {
	w, err := watcher.New()
	if err != nil {
		log.Printf("config watcher unavailable: %v", err)
		return nil
	}
	if err := w.Watch(path); err != nil {
		log.Printf("config watcher: %v", err)
		return nil
	}
	// Reloads are handed to the main loop so the manager and recognizers
	// stay single-threaded.
	w.OnChange(func(string) {
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		select {
		case a.reloadCh <- cfg:
		default:
		}
	})
	w.Start()
	return w
}

// applyConfig pushes reloaded thresholds through the validated setters.
func (a *app) applyConfig(cfg config.Config) {
	mc := cfg.ManagerConfig()
	a.mgr.SetRepeatDelay(mc.RepeatDelay)
	a.mgr.SetRepeatInterval(mc.RepeatInterval)
	a.mgr.SetDoubleClickTime(mc.DoubleClickTime)
	a.mgr.SetDoubleClickDistance(mc.DoubleClickDistance)
	a.mgr.SetDragThreshold(mc.DragThreshold)

	for _, r := range a.recognizers {
		switch g := r.(type) {
		case *gesture.Tap:
			tc := cfg.Tap.TapConfig()
			g.SetMaxDistance(tc.MaxDistance)
			g.SetTimeout(tc.Timeout)
		case *gesture.LongPress:
			lc := cfg.LongPress.LongPressConfig()
			g.SetDuration(lc.Duration)
			g.SetMaxDistance(lc.MaxDistance)
		case *gesture.Swipe:
			sc := cfg.Swipe.SwipeConfig()
			g.SetMinDistance(sc.MinDistance)
			g.SetMaxTime(sc.MaxTime)
		case *gesture.Pinch:
			pc := cfg.Pinch.PinchConfig()
			g.SetMinDistance(pc.MinDistance)
			g.SetMinScaleDelta(pc.MinScaleDelta)
			g.SetWheelFactor(pc.WheelFactor)
			g.SetWheelTimeout(pc.WheelTimeout)
		}
	}
}
