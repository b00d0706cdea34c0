package tracking

import "github.com/marchenkojuri1981-crypto/MAGNIFIER/core"

// ViewState is the per-tick output handed to the presenter
type ViewState struct {
	SourceRegion  core.Rect
	Zoom          float64
	CursorVisible bool
	CursorX       float64
	CursorY       float64
	InvertColors  bool
}
