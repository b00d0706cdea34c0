package capture

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// ErrNoImage is returned when the source file has not been decoded yet
var ErrNoImage = errors.New("no source image loaded")

// FileSource serves an image file scaled to the monitor frame size
// The file is watched and reloaded when its content visibly changes
type FileSource struct {
	path   string
	logger *slog.Logger

	// OnReload is called from the watcher goroutine after a new frame is published
	OnReload func(event.FramePayload)

	mu       sync.RWMutex
	size     core.Size
	decoded  image.Image
	frame    *Frame
	hash     *goimagehash.ImageHash
	seq      uint64

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFileSource creates a source for path; nothing is read until Init
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileSource{
		path:     filepath.Clean(path),
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (s *FileSource) Name() string {
	return "file:" + filepath.Base(s.path)
}

func (s *FileSource) Dependencies() []string {
	return nil
}

// Init decodes the file once so startup fails fast on a bad path
func (s *FileSource) Init(args ...any) error {
	img, err := imaging.Open(s.path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("capture: open %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.decoded = img
	s.mu.Unlock()
	return nil
}

// Start launches the file watcher
func (s *FileSource) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("capture: watcher: %w", err)
	}
	// Editors replace files by rename, so watch the directory
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		s.running.Store(false)
		return fmt.Errorf("capture: watch %s: %w", filepath.Dir(s.path), err)
	}
	s.watcher = w

	s.wg.Add(1)
	core.Go(s.watchLoop)
	return nil
}

// Stop halts the watcher; safe to call repeatedly
func (s *FileSource) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.CompareAndSwap(true, false) {
			err = s.watcher.Close()
			s.wg.Wait()
		}
	})
	return err
}

// Configure rescales the decoded image to size
func (s *FileSource) Configure(size core.Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = size
	if s.decoded == nil {
		return ErrNoImage
	}
	s.publishLocked(s.decoded, true)
	return nil
}

func (s *FileSource) Acquire() (*Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.frame != nil
}

// Reload re-reads the file and publishes it unless it looks the same as the current frame
// Returns whether a new frame was published
func (s *FileSource) Reload() (bool, error) {
	img, err := imaging.Open(s.path, imaging.AutoOrientation(true))
	if err != nil {
		return false, fmt.Errorf("capture: reload %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.decoded = img
	payload, ok := s.publishLocked(img, false)
	s.mu.Unlock()

	if ok && s.OnReload != nil {
		s.OnReload(payload)
	}
	return ok, nil
}

// publishLocked scales img to the configured size and swaps it in
// Unless forced, a frame within the hash distance threshold of the current one is dropped
func (s *FileSource) publishLocked(img image.Image, force bool) (event.FramePayload, bool) {
	if s.size.Zero() {
		return event.FramePayload{}, false
	}

	scaled := imaging.Fill(img, s.size.Width, s.size.Height, imaging.Center, imaging.Lanczos)
	payload := event.FramePayload{Source: s.Name(), Size: s.size}

	hash, err := goimagehash.DifferenceHash(scaled)
	if err != nil {
		s.logger.Debug("frame hash failed", "error", err)
		hash = nil
	}
	if hash != nil && s.hash != nil {
		if dist, err := s.hash.Distance(hash); err == nil {
			payload.Distance = dist
			if !force && dist < parameter.ReloadMinHashDistance {
				s.logger.Debug("skipping unchanged frame", "source", s.path, "distance", dist)
				return payload, false
			}
		}
	}

	s.seq++
	s.frame = &Frame{Image: scaled, Seq: s.seq}
	s.hash = hash
	return payload, true
}

func (s *FileSource) watchLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return

		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			// Partial writes fail to decode; the next write event retries
			if _, err := s.Reload(); err != nil {
				s.logger.Debug("reload failed", "error", err)
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("capture watcher error", "error", err)
		}
	}
}
