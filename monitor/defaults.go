package monitor

import "github.com/marchenkojuri1981-crypto/MAGNIFIER/core"

// DefaultMonitors is a side-by-side dual 1080p desk
func DefaultMonitors() []Monitor {
	return []Monitor{
		{
			DeviceName:   `\\.\DISPLAY1`,
			FriendlyName: "Primary",
			Bounds:       core.Rect{Right: 1920, Bottom: 1080},
			WorkArea:     core.Rect{Right: 1920, Bottom: 1040},
			Scale:        1,
			Primary:      true,
		},
		{
			DeviceName:   `\\.\DISPLAY2`,
			FriendlyName: "Magnifier",
			Bounds:       core.Rect{Left: 1920, Right: 3840, Bottom: 1080},
			WorkArea:     core.Rect{Left: 1920, Right: 3840, Bottom: 1040},
			Scale:        1,
		},
	}
}
