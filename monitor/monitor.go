package monitor

import (
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

// Monitor describes one display in virtual-desktop coordinates
type Monitor struct {
	DeviceName   string    `toml:"device_name"`
	FriendlyName string    `toml:"friendly_name"`
	Bounds       core.Rect `toml:"bounds"`
	WorkArea     core.Rect `toml:"work_area"`
	// Scale is effective dpi / 96
	Scale   float64 `toml:"scale"`
	Primary bool    `toml:"primary"`
}

// Label returns the friendly name, falling back to the device name
func (m Monitor) Label() string {
	if m.FriendlyName != "" {
		return m.FriendlyName
	}
	return m.DeviceName
}

// Mapper returns the screen-to-frame conversion for captures of this monitor
func (m Monitor) Mapper() tracking.Mapper {
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}
	return tracking.Mapper{Bounds: m.Bounds, Scale: scale}
}

// FrameSize is the captured pixel size of the monitor
func (m Monitor) FrameSize() core.Size {
	mp := m.Mapper()
	return core.Size{
		Width:  int(float64(m.Bounds.Width()) * mp.Scale),
		Height: int(float64(m.Bounds.Height()) * mp.Scale),
	}
}
