package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/config"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// options holds the command line; unset flags leave the config alone
type options struct {
	flags *pflag.FlagSet

	configPath string
	debug      bool
	zoom       float64
	mode       string
	capture    string
	mute       bool
	invert     bool
	stats      bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet("magnifier", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/magnifier/config.toml)")
	fs.BoolVar(&o.debug, "debug", false, "write logs/magnifier.log")
	fs.Float64VarP(&o.zoom, "zoom", "z", 0, "initial zoom factor (1-12)")
	fs.StringVarP(&o.mode, "mode", "m", "", "tracking mode: auto, caret, mouse, focus, manual")
	fs.StringVar(&o.capture, "capture", "", `frame source: "synthetic" or an image path`)
	fs.BoolVar(&o.mute, "mute", false, "disable feedback tones")
	fs.BoolVar(&o.invert, "invert", false, "start with inverted colors")
	fs.BoolVar(&o.stats, "stats", false, "print metrics on exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.flags = fs
	return o, nil
}

// apply overrides config values for flags given explicitly
func (o *options) apply(cfg *config.Config) error {
	if o.flags.Changed("zoom") {
		cfg.Magnifier.Zoom = o.zoom
	}
	if o.flags.Changed("mode") {
		m, ok := core.ParseTrackingMode(o.mode)
		if !ok {
			return fmt.Errorf("unknown tracking mode %q", o.mode)
		}
		cfg.Magnifier.Mode = m
	}
	if o.flags.Changed("capture") {
		cfg.Capture.Source = o.capture
	}
	if o.flags.Changed("mute") {
		cfg.Audio.Enabled = !o.mute
	}
	if o.flags.Changed("invert") {
		cfg.Magnifier.Invert = o.invert
	}
	return nil
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}
