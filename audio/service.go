package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// CueService plays feedback tones through the system speaker
// Without a usable audio device it degrades to a silent no-op
type CueService struct {
	logger *slog.Logger
	rate   beep.SampleRate

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	muted    atomic.Bool
	disabled atomic.Bool
	played   atomic.Int64
}

// NewCueService creates a muted-until-Init cue service
func NewCueService(logger *slog.Logger) *CueService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CueService{
		logger: logger,
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
	}
	s.muted.Store(true)
	return s
}

func (s *CueService) Name() string {
	return "audio"
}

func (s *CueService) Dependencies() []string {
	return nil
}

// Init applies the mute flag
// args[0]: bool - true mutes all cues
func (s *CueService) Init(args ...any) error {
	muted := false
	if len(args) > 0 {
		if m, ok := args[0].(bool); ok {
			muted = m
		}
	}
	s.muted.Store(muted)
	return nil
}

// Start opens the speaker; failure disables cues without failing startup
func (s *CueService) Start() error {
	if s.muted.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferDuration)); err != nil {
		s.disabled.Store(true)
		s.logger.Warn("audio unavailable, cues disabled", "error", fmt.Errorf("speaker init: %w", err))
		return nil
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Stop silences pending cues and releases the device
func (s *CueService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
	return nil
}

// Play queues a cue; returns immediately
func (s *CueService) Play(c Cue) {
	if s.muted.Load() || s.disabled.Load() {
		return
	}
	tone := Tone(c, s.rate)
	if tone == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
	s.played.Add(1)
}

// SetMuted toggles cue output at runtime
func (s *CueService) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// Muted reports whether cues are suppressed
func (s *CueService) Muted() bool {
	return s.muted.Load()
}

// Disabled reports whether the audio device failed to open
func (s *CueService) Disabled() bool {
	return s.disabled.Load()
}

// Played returns the number of cues sent to the speaker
func (s *CueService) Played() int64 {
	return s.played.Load()
}
