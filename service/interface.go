package service

// Service is the lifecycle of a long-lived collaborator: the terminal screen,
// the audio backend, the input poller, the capture watcher
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from flags and settings
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init and Start before this one
	Dependencies() []string

	// Init configures the service; args are service-specific
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation; must be idempotent
	Stop() error
}
