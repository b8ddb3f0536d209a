package engine

// MockClock provides a controllable millisecond counter for tests and headless runs
type MockClock struct {
	now Millis
}

// NewMockClock creates a mock clock at the given start value
func NewMockClock(start Millis) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked value
func (m *MockClock) Now() Millis {
	return m.now
}

// Set sets the current value
func (m *MockClock) Set(t Millis) {
	m.now = t
}

// Advance moves the clock forward, wrapping past the 32-bit limit
func (m *MockClock) Advance(ms uint32) {
	m.now += Millis(ms)
}
