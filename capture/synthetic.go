package capture

import (
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// SyntheticSource renders a static desktop-like test pattern
type SyntheticSource struct {
	mu    sync.Mutex
	size  core.Size
	frame *Frame
	seq   uint64
}

// NewSyntheticSource creates an unconfigured pattern source
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

func (s *SyntheticSource) Name() string {
	return "synthetic"
}

// Configure re-renders the pattern when the size changes
func (s *SyntheticSource) Configure(size core.Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size == s.size && s.frame != nil {
		return nil
	}
	s.size = size
	if size.Zero() {
		s.frame = nil
		return nil
	}
	s.seq++
	s.frame = &Frame{Image: Pattern(size), Seq: s.seq}
	return nil
}

func (s *SyntheticSource) Acquire() (*Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.frame != nil
}

// Service lifecycle; the pattern needs no background work

func (s *SyntheticSource) Dependencies() []string { return nil }
func (s *SyntheticSource) Init(args ...any) error { return nil }
func (s *SyntheticSource) Start() error           { return nil }
func (s *SyntheticSource) Stop() error            { return nil }

var (
	patternDesk    = color.NRGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}
	patternGrid    = color.NRGBA{R: 0x2c, G: 0x4d, B: 0x78, A: 0xff}
	patternWindow  = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf0, A: 0xff}
	patternTitle   = color.NRGBA{R: 0x3b, G: 0x6e, B: 0xa8, A: 0xff}
	patternText    = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	patternTaskbar = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	patternInput   = color.NRGBA{R: 0xdc, G: 0xf8, B: 0xc6, A: 0xff}
)

// Pattern draws a desktop with a grid, two text windows and a taskbar
// The bottom right holds a chat-style input box for messenger zone demos
func Pattern(size core.Size) *image.NRGBA {
	w, h := size.Width, size.Height
	img := imaging.New(w, h, patternDesk)

	step := parameter.PatternGridStep
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%step == 0 || y%step == 0 {
				img.SetNRGBA(x, y, patternGrid)
			}
		}
	}

	drawWindow(img, image.Rect(w/16, h/12, w/2, h*2/3))
	drawWindow(img, image.Rect(w*9/16, h/6, w*15/16, h*3/4))

	taskbar := min(parameter.PatternTaskbarRows, h/10)
	fillRect(img, image.Rect(0, h-taskbar, w, h), patternTaskbar)
	fillRect(img, image.Rect(w/4+8, h-taskbar+6, w-8, h-6), patternInput)
	return img
}

func drawWindow(img *image.NRGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	fillRect(img, r, patternWindow)
	line := parameter.PatternLineHeight
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+line), patternTitle)

	// Text lines of varying width, one every line height
	row := 0
	for y := r.Min.Y + line*2; y+line/2 < r.Max.Y-line; y += line {
		width := (r.Dx() - 2*line) * (5 + (row*7)%5) / 10
		fillRect(img, image.Rect(r.Min.X+line, y, r.Min.X+line+width, y+line/2), patternText)
		row++
	}
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
