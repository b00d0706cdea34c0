// Package config loads and saves the magnifier settings file.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/engine"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/monitor"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/window"
)

// Config is the whole settings file
type Config struct {
	Magnifier MagnifierConfig   `toml:"magnifier"`
	Tracking  TrackingConfig    `toml:"tracking"`
	Capture   CaptureConfig     `toml:"capture"`
	Audio     AudioConfig       `toml:"audio"`
	Hotkeys   map[string]string `toml:"hotkeys"`
	// Monitors replaces the built-in dual display desk when non-empty
	Monitors []monitor.Monitor `toml:"monitors"`
	// Windows seeds the static foreground window list
	Windows []window.Window `toml:"windows"`
}

// MagnifierConfig holds user-visible state restored at startup
type MagnifierConfig struct {
	SourceMonitor    string            `toml:"source_monitor"`
	MagnifierMonitor string            `toml:"magnifier_monitor"`
	Zoom             float64           `toml:"zoom"`
	Mode             core.TrackingMode `toml:"mode"`
	Invert           bool              `toml:"invert"`
	BlockCursor      bool              `toml:"block_cursor"`
	StatusLine       bool              `toml:"status_line"`
	AutoLaunch       bool              `toml:"auto_launch"`
	TickInterval     Duration          `toml:"tick_interval"`
}

// TrackingConfig overrides tracking tuning; zero values keep the defaults
type TrackingConfig struct {
	DeadZone          float64   `toml:"dead_zone"`
	Smoothing         float64   `toml:"smoothing"`
	ClickSpeed        float64   `toml:"click_speed"`
	CaretTimeout      Duration  `toml:"caret_timeout"`
	MouseTimeout      Duration  `toml:"mouse_timeout"`
	FocusTimeout      Duration  `toml:"focus_timeout"`
	AnchorHold        Duration  `toml:"anchor_hold"`
	TerminalPatterns  []string  `toml:"terminal_patterns"`
	MessengerPatterns []string  `toml:"messenger_patterns"`
	TerminalRect      core.Rect `toml:"terminal_rect"`
}

// CaptureConfig selects the frame source: "synthetic" or an image path
type CaptureConfig struct {
	Source string `toml:"source"`
}

// AudioConfig toggles feedback tones
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Magnifier: MagnifierConfig{
			Zoom:         parameter.DefaultZoom,
			Mode:         core.ModeAuto,
			StatusLine:   true,
			AutoLaunch:   true,
			TickInterval: Duration{parameter.TickInterval},
		},
		Tracking: TrackingConfig{
			TerminalPatterns:  append([]string(nil), parameter.DefaultTerminalPatterns...),
			MessengerPatterns: append([]string(nil), parameter.DefaultMessengerPatterns...),
		},
		Capture: CaptureConfig{
			Source: "synthetic",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Validate reports every setting that cannot be used
func (c *Config) Validate() error {
	var errs []error

	z := c.Magnifier.Zoom
	if math.IsNaN(z) || z < parameter.MinZoom || z > parameter.MaxZoom {
		errs = append(errs, fmt.Errorf("zoom %v outside [%v, %v]", z, parameter.MinZoom, parameter.MaxZoom))
	}
	if s := c.Tracking.Smoothing; s < 0 || s > 1 {
		errs = append(errs, fmt.Errorf("smoothing %v outside [0, 1]", s))
	}
	if c.Tracking.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("dead zone %v is negative", c.Tracking.DeadZone))
	}
	if c.Tracking.ClickSpeed < 0 {
		errs = append(errs, fmt.Errorf("click speed %v is negative", c.Tracking.ClickSpeed))
	}
	if strings.TrimSpace(c.Capture.Source) == "" {
		errs = append(errs, errors.New("capture source is empty"))
	}

	seen := make(map[string]bool, len(c.Monitors))
	for i, m := range c.Monitors {
		if m.DeviceName == "" {
			errs = append(errs, fmt.Errorf("monitor %d has no device name", i))
			continue
		}
		if seen[m.DeviceName] {
			errs = append(errs, fmt.Errorf("monitor %q listed twice", m.DeviceName))
		}
		seen[m.DeviceName] = true
		if m.Bounds.Empty() {
			errs = append(errs, fmt.Errorf("monitor %q has empty bounds", m.DeviceName))
		}
	}

	return errors.Join(errs...)
}

// MonitorList returns the configured monitors or the built-in desk
func (c *Config) MonitorList() []monitor.Monitor {
	if len(c.Monitors) == 0 {
		return monitor.DefaultMonitors()
	}
	return c.Monitors
}

// TickInterval returns the controller period, defaulting when unset
func (c *Config) TickInterval() time.Duration {
	if c.Magnifier.TickInterval.Duration <= 0 {
		return parameter.TickInterval
	}
	return c.Magnifier.TickInterval.Duration
}

// Tuning builds the tracking tuning from the defaults plus overrides
func (c *Config) Tuning() tracking.Tuning {
	t := tracking.DefaultTuning()
	tc := c.Tracking

	if tc.DeadZone > 0 {
		t.DeadZone = tc.DeadZone
	}
	if tc.Smoothing > 0 {
		t.Smoothing = tc.Smoothing
	}
	if tc.ClickSpeed > 0 {
		t.ClickSpeed = tc.ClickSpeed
	}
	if tc.CaretTimeout.Duration > 0 {
		t.CaretTimeout = tc.CaretTimeout.Duration
	}
	if tc.MouseTimeout.Duration > 0 {
		t.MouseTimeout = tc.MouseTimeout.Duration
	}
	if tc.FocusTimeout.Duration > 0 {
		t.FocusTimeout = tc.FocusTimeout.Duration
	}
	if tc.AnchorHold.Duration > 0 {
		t.AnchorHold = tc.AnchorHold.Duration
	}
	// An explicit empty list disables the override
	if tc.TerminalPatterns != nil {
		t.TerminalPatterns = append([]string(nil), tc.TerminalPatterns...)
	}
	if tc.MessengerPatterns != nil {
		t.MessengerPatterns = append([]string(nil), tc.MessengerPatterns...)
	}
	return t
}

// Settings returns the persisted magnifier state
func (c *Config) Settings() engine.Settings {
	return engine.Settings{
		Mode:      c.Magnifier.Mode,
		Zoom:      c.Magnifier.Zoom,
		Invert:    c.Magnifier.Invert,
		Source:    c.Magnifier.SourceMonitor,
		Magnifier: c.Magnifier.MagnifierMonitor,
	}
}

// UpdateSettings stores the runtime state for the next save
func (c *Config) UpdateSettings(s engine.Settings) {
	c.Magnifier.Mode = s.Mode
	c.Magnifier.Zoom = s.Zoom
	c.Magnifier.Invert = s.Invert
	if s.Source != "" {
		c.Magnifier.SourceMonitor = s.Source
	}
	if s.Magnifier != "" {
		c.Magnifier.MagnifierMonitor = s.Magnifier
	}
}
