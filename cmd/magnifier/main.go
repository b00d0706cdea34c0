package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/audio"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/capture"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/config"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/engine"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/input"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/monitor"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/render"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/service"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/status"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/window"
)

func main() {
	// Panic Recovery: restore the terminal even if wiring crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logFile, logger := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	path := opts.path()
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flag: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config %s:\n%v\n", path, err)
		os.Exit(1)
	}

	reg := status.NewRegistry()
	if err := run(cfg, path, reg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "magnifier: %v\n", err)
		os.Exit(1)
	}
	if opts.stats {
		fmt.Println(reg.Snapshot())
	}
}

// run wires the services, blocks until quit and tears everything down
func run(cfg *config.Config, path string, reg *status.Registry, logger *slog.Logger) error {
	overrides, err := input.LoadKeyConfig(cfg.Hotkeys)
	if err != nil {
		return err
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), overrides)

	layout := monitor.NewLayout(cfg.MonitorList())
	if err := layout.Select(cfg.Magnifier.SourceMonitor, cfg.Magnifier.MagnifierMonitor); err != nil {
		return fmt.Errorf("select monitors: %w", err)
	}

	// Foreground identity: configured windows first, then the terminal we run in
	procProbe := window.NewProcessProbe(cfg.Tracking.TerminalRect)
	if err := procProbe.Refresh(context.Background()); err != nil {
		logger.Warn("process probe unavailable", "error", err)
	}
	probe := window.MultiProbe{window.NewStaticProbe(cfg.Windows), procProbe}

	ctrl := tracking.New(cfg.Tuning(), probe)
	ctrl.SetLogger(logger)
	ctrl.SetMode(cfg.Magnifier.Mode)
	ctrl.SetZoom(cfg.Magnifier.Zoom)
	ctrl.SetInvert(cfg.Magnifier.Invert)

	queue := event.NewEventQueue()

	source := capture.NewSource(cfg.Capture.Source, logger)
	if fs, ok := source.(*capture.FileSource); ok {
		fs.OnReload = func(p event.FramePayload) {
			queue.Push(event.Event{Type: event.EventFrameReloaded, Payload: &p, At: time.Now()})
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer core.SetCrashReset(nil)

	ropts := render.DefaultOptions()
	ropts.BlockCursor = cfg.Magnifier.BlockCursor
	ropts.StatusLine = cfg.Magnifier.StatusLine
	presenter := render.NewPresenter(screen, ropts, logger)

	translator := input.NewTranslator(queue, keys, func() (core.Rect, bool) {
		m, ok := layout.Source()
		return m.Bounds, ok
	}, time.Now)
	inputSvc := input.NewService(screen, translator)

	cues := audio.NewCueService(logger)

	app := engine.NewApp(engine.AppConfig{
		Controller: ctrl,
		Layout:     layout,
		Source:     source,
		Presenter:  presenter,
		Cues:       cues,
		Queue:      queue,
		Status:     reg,
		Logger:     logger,
		Persist: func(s engine.Settings) {
			cfg.UpdateSettings(s)
			if err := config.Save(path, cfg); err != nil {
				logger.Warn("save settings failed", "path", path, "error", err)
			}
		},
	})

	scheduler := engine.NewClockScheduler(app.Clock, cfg.TickInterval(), app.ProcessTick, reg, logger,
		presenter.Name(), inputSvc.Name(), cues.Name(), source.Name())

	hub := service.NewHub(logger)
	services := []service.Service{presenter, inputSvc, cues, scheduler}
	if svc, ok := source.(service.Service); ok {
		services = append(services, svc)
	}
	for _, svc := range services {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	if err := hub.InitAll(map[string][]any{
		cues.Name(): {!cfg.Audio.Enabled},
	}); err != nil {
		return err
	}

	// Runs before the scheduler goroutine exists, so the App is still ours
	if cfg.Magnifier.AutoLaunch {
		if err := app.Activate(app.Clock.Now()); err != nil {
			logger.Warn("auto launch failed", "error", err)
		}
	}

	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-app.Done():
		logger.Info("quit requested")
	case s := <-sig:
		logger.Info("signal received", "signal", s.String())
	}

	logger.Info("shutting down", reg.LogValues()...)
	return nil
}
