package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// Service polls a tcell screen and feeds the translator
type Service struct {
	screen     tcell.Screen
	translator *Translator

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	polled   atomic.Int64
}

// NewService creates an input service; the screen must be initialized before Start
func NewService(screen tcell.Screen, translator *Translator) *Service {
	return &Service{
		screen:     screen,
		translator: translator,
		stopChan:   make(chan struct{}),
	}
}

func (s *Service) Name() string {
	return "input"
}

// Dependencies: the presenter owns screen initialization
func (s *Service) Dependencies() []string {
	return []string{"render"}
}

func (s *Service) Init(args ...any) error {
	return nil
}

// Start launches the polling goroutine
func (s *Service) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	s.translator.Resize(s.screen.Size())
	s.wg.Add(1)
	core.Go(s.pollLoop)
	return nil
}

// Stop interrupts PollEvent and waits for the loop to exit
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.CompareAndSwap(true, false) {
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
			s.wg.Wait()
		}
	})
	return nil
}

// Polled returns the number of terminal events received
func (s *Service) Polled() int64 {
	return s.polled.Load()
}

func (s *Service) pollLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		s.polled.Add(1)
		s.translator.Translate(ev)
	}
}
