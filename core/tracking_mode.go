package core

import "strings"

// TrackingMode selects which attention signal drives the viewport
type TrackingMode uint8

const (
	ModeAuto TrackingMode = iota
	ModeCaret
	ModeMouse
	ModeFocus
	ModeManual
)

var trackingModeNames = [...]string{
	ModeAuto:   "Auto",
	ModeCaret:  "Caret",
	ModeMouse:  "Mouse",
	ModeFocus:  "Focus",
	ModeManual: "Manual",
}

func (m TrackingMode) String() string {
	if int(m) < len(trackingModeNames) {
		return trackingModeNames[m]
	}
	return "Auto"
}

// Next returns the mode that follows m in the hotkey cycle
// Auto -> Caret -> Mouse -> Focus -> Manual -> Auto
func (m TrackingMode) Next() TrackingMode {
	if m >= ModeManual {
		return ModeAuto
	}
	return m + 1
}

// ParseTrackingMode resolves a case-insensitive mode name
// Unknown names fall back to Auto with ok=false
func ParseTrackingMode(s string) (TrackingMode, bool) {
	s = strings.TrimSpace(s)
	for i, name := range trackingModeNames {
		if strings.EqualFold(name, s) {
			return TrackingMode(i), true
		}
	}
	return ModeAuto, false
}

// MarshalText implements encoding.TextMarshaler for config files
func (m TrackingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; unknown values become Auto
func (m *TrackingMode) UnmarshalText(text []byte) error {
	*m, _ = ParseTrackingMode(string(text))
	return nil
}
