package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/capture"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

const (
	// halfBlock paints the top pixel as foreground and the bottom pixel as background
	halfBlock = '▀'

	arrowCursor = '▲'
	blockCursor = '█'

	statusRows = 1
)

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus  = tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 40)).Foreground(tcell.NewRGBColor(200, 200, 210))
	styleBadge   = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 215, 0)).Foreground(tcell.ColorBlack).Bold(true)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 40, 40))
	styleStopped = styleBase.Foreground(tcell.NewRGBColor(120, 120, 120))
)

// Options tune the presenter output
type Options struct {
	// BlockCursor draws a solid cell instead of an arrow at the pointer
	BlockCursor bool
	// StatusLine reserves the bottom row for zoom and region details
	StatusLine bool
	// Filter resamples the source region to cell resolution
	Filter imaging.ResampleFilter
}

// DefaultOptions uses an arrow cursor, a status line and linear resampling
func DefaultOptions() Options {
	return Options{StatusLine: true, Filter: imaging.Linear}
}

// Presenter draws view states on a tcell screen using half-block cells
// Each cell shows two vertically stacked source pixels
type Presenter struct {
	screen tcell.Screen
	opts   Options
	logger *slog.Logger

	mu sync.Mutex
}

// NewPresenter wraps screen; the screen is initialized by Init
func NewPresenter(screen tcell.Screen, opts Options, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Filter.Support == 0 && opts.Filter.Kernel == nil {
		opts.Filter = imaging.Linear
	}
	return &Presenter{screen: screen, opts: opts, logger: logger}
}

func (p *Presenter) Name() string {
	return "render"
}

func (p *Presenter) Dependencies() []string {
	return nil
}

// Init initializes the screen and enables mouse reporting
func (p *Presenter) Init(args ...any) error {
	if err := p.screen.Init(); err != nil {
		return fmt.Errorf("render: screen init: %w", err)
	}
	p.screen.SetStyle(styleBase)
	p.screen.EnableMouse()
	p.screen.HideCursor()
	p.screen.Clear()
	return nil
}

func (p *Presenter) Start() error {
	return nil
}

// Stop restores the terminal
func (p *Presenter) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screen.Fini()
	return nil
}

// Screen exposes the underlying screen for input polling
func (p *Presenter) Screen() tcell.Screen {
	return p.screen
}

// Size returns the screen size in cells
func (p *Presenter) Size() core.Size {
	w, h := p.screen.Size()
	return core.Size{Width: w, Height: h}
}

// viewportRows returns the number of cell rows available for the image
func (p *Presenter) viewportRows(h int) int {
	if p.opts.StatusLine {
		return max(h-statusRows, 0)
	}
	return h
}

// Present draws the view region of frame; a nil frame draws the stopped screen
func (p *Presenter) Present(frame *capture.Frame, view tracking.ViewState, badge string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, h := p.screen.Size()
	rows := p.viewportRows(h)
	if w <= 0 || rows <= 0 {
		return nil
	}

	p.screen.Clear()
	if frame == nil || frame.Image == nil {
		drawCentered(p.screen, w, rows/2, "magnifier stopped", styleStopped)
	} else {
		img, err := p.scale(frame.Image, view, w, rows*2)
		if err != nil {
			return err
		}
		p.drawImage(img, w, rows)
		if view.CursorVisible {
			p.drawCursor(view, w, rows)
		}
		if p.opts.StatusLine {
			p.drawStatus(view, w, h-1)
		}
	}

	if badge != "" {
		drawCentered(p.screen, w, 1, " "+badge+" ", styleBadge)
	}
	p.screen.Show()
	return nil
}

// scale crops the region and resamples it to cols x pixelRows
func (p *Presenter) scale(src *image.NRGBA, view tracking.ViewState, cols, pixelRows int) (*image.NRGBA, error) {
	r := view.SourceRegion
	region := image.Rect(r.Left, r.Top, r.Right, r.Bottom).Intersect(src.Bounds())
	if region.Empty() {
		return nil, fmt.Errorf("render: region %+v outside frame %v", r, src.Bounds())
	}
	img := imaging.Resize(imaging.Crop(src, region), cols, pixelRows, p.opts.Filter)
	if view.InvertColors {
		img = imaging.Invert(img)
	}
	return img, nil
}

func (p *Presenter) drawImage(img *image.NRGBA, cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := img.NRGBAAt(x, 2*y)
			bottom := img.NRGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func (p *Presenter) drawCursor(view tracking.ViewState, cols, rows int) {
	x, y, ok := CursorCell(view, cols, rows)
	if !ok {
		return
	}
	if p.opts.BlockCursor {
		p.screen.SetContent(x, y, blockCursor, nil, styleCursor)
		return
	}
	_, _, style, _ := p.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	p.screen.SetContent(x, y, arrowCursor, nil, styleCursor.Background(bg))
}

func (p *Presenter) drawStatus(view tracking.ViewState, cols, row int) {
	r := view.SourceRegion
	text := fmt.Sprintf(" %.2fx  [%d,%d %dx%d]", view.Zoom, r.Left, r.Top, r.Width(), r.Height())
	if view.InvertColors {
		text += "  inverted"
	}
	for x := 0; x < cols; x++ {
		p.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	drawText(p.screen, 0, row, cols, text, styleStatus)
}

// CursorCell maps the pointer in frame space to a cell of a cols x rows viewport
func CursorCell(view tracking.ViewState, cols, rows int) (int, int, bool) {
	r := view.SourceRegion
	if r.Empty() || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	fx := (view.CursorX - float64(r.Left)) / float64(r.Width())
	fy := (view.CursorY - float64(r.Top)) / float64(r.Height())
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return int(fx * float64(cols)), int(fy * float64(rows)), true
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}

func drawCentered(s tcell.Screen, cols, y int, text string, style tcell.Style) {
	n := len([]rune(text))
	x := max((cols-n)/2, 0)
	drawText(s, x, y, cols, text, style)
}
