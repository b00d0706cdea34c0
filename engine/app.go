package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/audio"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/capture"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/monitor"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/status"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

// Presenter draws the magnified region of a frame on the magnifier output
// A nil frame means the magnifier is stopped and only the badge is shown
type Presenter interface {
	Present(frame *capture.Frame, view tracking.ViewState, badge string) error
	Size() core.Size
}

// CuePlayer plays short feedback tones
type CuePlayer interface {
	Play(cue audio.Cue)
}

// Settings is the user-visible state worth saving between runs
type Settings struct {
	Mode      core.TrackingMode
	Zoom      float64
	Invert    bool
	Source    string
	Magnifier string
}

// AppConfig carries the collaborators of an App
// Queue and Clock are created when nil; Cues and Persist are optional
type AppConfig struct {
	Controller *tracking.Controller
	Layout     *monitor.Layout
	Source     capture.Source
	Presenter  Presenter
	Cues       CuePlayer
	Queue      *event.EventQueue
	Clock      Clock
	Status     *status.Registry
	Logger     *slog.Logger
	Persist    func(Settings)
}

// App is the magnifier context owned by the tick goroutine
// Handlers receive it from the router; nothing else may touch the controller
type App struct {
	Controller *tracking.Controller
	Layout     *monitor.Layout
	Source     capture.Source
	Presenter  Presenter
	Cues       CuePlayer
	Queue      *event.EventQueue
	Router     *event.Router[*App]
	Clock      Clock
	Status     *status.Registry
	Badge      *status.Badge
	Logger     *slog.Logger
	Persist    func(Settings)

	active     bool
	wasAligned bool

	quit     chan struct{}
	quitOnce sync.Once

	// Cached metric pointers
	statFrames  *atomic.Int64
	statSkipped *atomic.Int64
	statEvents  *atomic.Int64
	statDropped *atomic.Int64
	statActive  *atomic.Bool
	statAligned *atomic.Bool
	statZone    *atomic.Bool
	statMode    *status.AtomicString
	statSource  *status.AtomicString
	statZoom    *status.AtomicFloat
	statCenterX *status.AtomicFloat
	statCenterY *status.AtomicFloat
}

// NewApp wires an App and registers the standard handlers
func NewApp(cfg AppConfig) *App {
	if cfg.Queue == nil {
		cfg.Queue = event.NewEventQueue()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	reg := cfg.Status
	a := &App{
		Controller: cfg.Controller,
		Layout:     cfg.Layout,
		Source:     cfg.Source,
		Presenter:  cfg.Presenter,
		Cues:       cfg.Cues,
		Queue:      cfg.Queue,
		Router:     event.NewRouter[*App](cfg.Queue),
		Clock:      cfg.Clock,
		Status:     reg,
		Badge:      status.NewBadge(),
		Logger:     cfg.Logger,
		Persist:    cfg.Persist,
		quit:       make(chan struct{}),

		statFrames:  reg.Ints.Get("engine.frames"),
		statSkipped: reg.Ints.Get("engine.skipped"),
		statEvents:  reg.Ints.Get("engine.events"),
		statDropped: reg.Ints.Get("queue.dropped"),
		statActive:  reg.Bools.Get("magnifier.active"),
		statAligned: reg.Bools.Get("tracking.aligned"),
		statZone:    reg.Bools.Get("tracking.messenger_zone"),
		statMode:    reg.Strings.Get("tracking.mode"),
		statSource:  reg.Strings.Get("capture.source"),
		statZoom:    reg.Floats.Get("tracking.zoom"),
		statCenterX: reg.Floats.Get("tracking.center_x"),
		statCenterY: reg.Floats.Get("tracking.center_y"),
	}

	a.Router.Register(&SignalHandler{})
	a.Router.Register(&ActionHandler{})
	a.Router.Register(&SystemHandler{})
	return a
}

// Active reports whether the magnifier is running
func (a *App) Active() bool {
	return a.active
}

// Done is closed once a quit is requested
func (a *App) Done() <-chan struct{} {
	return a.quit
}

// RequestQuit closes Done; safe to call repeatedly
func (a *App) RequestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Activate binds the selected monitors and starts magnifying
func (a *App) Activate(now time.Time) error {
	if err := a.bindMonitors(); err != nil {
		return err
	}
	a.active = true
	a.statActive.Store(true)
	a.Badge.Show(status.ClockLabel(now), parameter.StatusBadgeDuration, now)
	a.Logger.Info("magnifier started", "source", a.Controller.Mapper().Bounds, "zoom", a.Controller.Zoom())
	return nil
}

// Deactivate stops magnifying and forgets the center history
func (a *App) Deactivate(now time.Time) {
	a.active = false
	a.statActive.Store(false)
	a.Controller.Reset()
	a.Badge.Clear()
	a.Logger.Info("magnifier stopped")
}

// bindMonitors points the controller and capture at the active source monitor
func (a *App) bindMonitors() error {
	src, _, err := a.Layout.Pair()
	if err != nil {
		return err
	}
	if err := a.Source.Configure(src.FrameSize()); err != nil {
		return fmt.Errorf("configure capture for %s: %w", src.Label(), err)
	}
	a.Controller.SetMapper(src.Mapper())
	a.statSource.Store(src.Label())
	return nil
}

// ProcessTick drains pending events, advances the controller and presents the result
func (a *App) ProcessTick(now time.Time) {
	n := a.Router.DispatchAll(a)
	a.statEvents.Add(int64(n))
	a.statDropped.Store(int64(a.Queue.Dropped()))

	if !a.active {
		a.present(nil, tracking.ViewState{}, now)
		return
	}

	frame, _ := a.Source.Acquire()
	view, ok := a.Controller.Tick(now, frame.Size())
	if !ok {
		a.statSkipped.Add(1)
		return
	}
	a.statFrames.Add(1)

	st := a.Controller.State()
	if st.Anchor.Aligned && !a.wasAligned {
		a.cue(audio.CueAlign)
	}
	a.wasAligned = st.Anchor.Aligned

	a.statAligned.Store(st.Anchor.Aligned)
	a.statZone.Store(st.Zone.Active)
	a.statMode.Store(a.Controller.Mode().String())
	a.statZoom.Set(view.Zoom)
	a.statCenterX.Set(st.Center.X)
	a.statCenterY.Set(st.Center.Y)

	a.present(frame, view, now)
}

func (a *App) present(frame *capture.Frame, view tracking.ViewState, now time.Time) {
	if a.Presenter == nil {
		return
	}
	if err := a.Presenter.Present(frame, view, a.Badge.Text(now)); err != nil {
		a.Logger.Debug("present failed", "error", err)
	}
}

func (a *App) cue(c audio.Cue) {
	if a.Cues != nil {
		a.Cues.Play(c)
	}
}

// Settings snapshots the persistable state
func (a *App) Settings() Settings {
	s := Settings{
		Mode:   a.Controller.Mode(),
		Zoom:   a.Controller.Zoom(),
		Invert: a.Controller.Invert(),
	}
	if src, mag, err := a.Layout.Pair(); err == nil {
		s.Source, s.Magnifier = src.DeviceName, mag.DeviceName
	}
	return s
}

func (a *App) persist() {
	if a.Persist != nil {
		a.Persist(a.Settings())
	}
}
