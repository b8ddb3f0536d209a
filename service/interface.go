package service

// Service defines the lifecycle of a front-end subsystem
// Services own long-lived resources outside the animation core: the terminal, the speaker, metrics
//
// Lifecycle:
//  1. Construction
//  2. Init() - acquire resources, dependencies are already initialized
//  3. Start() - begin operation once every service initialized
//  4. [frame loop]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be idempotent
	Stop() error
}
