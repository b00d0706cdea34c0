package parameter

// Synthetic test pattern layout (frame px)
const (
	PatternGridStep    = 64
	PatternLineHeight  = 18
	PatternTaskbarRows = 40
)

// File source reload filtering
const (
	// ReloadMinHashDistance skips reloads whose difference hash is this close to the current frame
	ReloadMinHashDistance = 1
)
