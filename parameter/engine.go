package parameter

import "time"

// Tick loop timing
const (
	// TickInterval is the controller update period (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// TickMaxBehind is how far the scheduler may lag before it drops missed deadlines
	TickMaxBehind = 2 * TickInterval
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
