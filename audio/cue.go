package audio

// Cue identifies a short feedback tone
type Cue uint8

const (
	CueNone Cue = iota
	// CueMode follows a tracking mode change
	CueMode
	// CueZoomIn follows a zoom increase
	CueZoomIn
	// CueZoomOut follows a zoom decrease
	CueZoomOut
	// CueAlign marks terminal alignment engaging
	CueAlign
	// CueToggle marks the magnifier starting or stopping
	CueToggle
)

var cueNames = [...]string{
	CueNone:    "none",
	CueMode:    "mode",
	CueZoomIn:  "zoom_in",
	CueZoomOut: "zoom_out",
	CueAlign:   "align",
	CueToggle:  "toggle",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}
