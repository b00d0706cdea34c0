package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/status"
)

// TickFunc runs one controller cycle at now
type TickFunc func(now time.Time)

// ClockScheduler runs the tick function on a fixed interval with drift correction
// It is the only goroutine that touches controller state
type ClockScheduler struct {
	clock        Clock
	tickInterval time.Duration
	tick         TickFunc
	deps         []string
	logger       *slog.Logger

	nextTickDeadline time.Time
	tickCount        atomic.Uint64
	mu               sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks *atomic.Int64
	statLate  *atomic.Int64
}

// NewClockScheduler creates a stopped scheduler; deps name the services that must start first
func NewClockScheduler(clock Clock, tickInterval time.Duration, tick TickFunc, reg *status.Registry, logger *slog.Logger, deps ...string) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		tick:         tick,
		deps:         deps,
		logger:       logger,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statLate:     reg.Ints.Get("engine.late_resets"),
	}
}

func (cs *ClockScheduler) Name() string {
	return "scheduler"
}

func (cs *ClockScheduler) Dependencies() []string {
	return cs.deps
}

func (cs *ClockScheduler) Init(args ...any) error {
	return nil
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() error {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
	return nil
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() error {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
	return nil
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		now := cs.clock.Now()

		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		var sleepDuration time.Duration
		if !now.Before(deadline) {
			cs.tick(now)

			cs.mu.Lock()
			next, late := advanceDeadline(cs.nextTickDeadline, now, cs.tickInterval)
			cs.nextTickDeadline = next
			cs.mu.Unlock()

			if late {
				cs.statLate.Add(1)
			}
			cs.statTicks.Store(int64(cs.tickCount.Add(1)))

			sleepDuration = max(next.Sub(cs.clock.Now()), 0)
		} else {
			sleepDuration = deadline.Sub(now)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// advanceDeadline moves the deadline by one interval
// When the loop has fallen more than TickMaxBehind behind, missed ticks are dropped
// and the schedule restarts from now; late reports that case
func advanceDeadline(deadline, now time.Time, interval time.Duration) (next time.Time, late bool) {
	next = deadline.Add(interval)
	if now.Sub(next) > parameter.TickMaxBehind {
		return now.Add(interval), true
	}
	return next, false
}
