package parameter

import "time"

// Audio output settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioVolume is the linear gain applied to every cue
	AudioVolume = 0.35
)

// Cue tone shapes
const (
	CueDuration = 90 * time.Millisecond
	CueAttack   = 5 * time.Millisecond
	CueRelease  = 40 * time.Millisecond

	// CueGap separates the two notes of a two-note cue
	CueGap = 30 * time.Millisecond
)

// Cue pitches (Hz)
const (
	CueModeFreq    = 660.0
	CueZoomInFreq  = 880.0
	CueZoomOutFreq = 440.0
	CueAlignFreq   = 523.25
	CueAlignUpFreq = 783.99
	CueToggleFreq  = 330.0
)
