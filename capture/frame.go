package capture

import (
	"image"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// Frame is one captured image of the source monitor
// Frames are immutable once published; Seq increases on every new frame
type Frame struct {
	Image *image.NRGBA
	Seq   uint64
}

// Size returns the frame pixel size; nil frames are zero-sized
func (f *Frame) Size() core.Size {
	if f == nil || f.Image == nil {
		return core.Size{}
	}
	b := f.Image.Bounds()
	return core.Size{Width: b.Dx(), Height: b.Dy()}
}

// Source produces frames of the source monitor
type Source interface {
	// Name identifies the source in logs and badges
	Name() string
	// Configure prepares frames of the given pixel size
	Configure(size core.Size) error
	// Acquire returns the latest frame; false when nothing is available yet
	Acquire() (*Frame, bool)
}
