package constants

// Cycle Periods (milliseconds)
const (
	// SceneDurationMs is how long each scene stays on screen
	SceneDurationMs = 5000

	// DayNightDurationMs is the day/night toggle period
	DayNightDurationMs = 10000

	// WeatherChangeDurationMs is the weather cycle period
	WeatherChangeDurationMs = 10000
)

// Frame Timing
const (
	// FrameDelayMs is the nominal tick budget (20 FPS)
	FrameDelayMs = 50

	// FrameDeltaSeconds is the fixed animation step fed to ScalarAnimator
	FrameDeltaSeconds = float32(FrameDelayMs) / 1000

	// SlowFrameUs is the frame time above which a warning is logged
	SlowFrameUs = 100000

	// StatsIntervalMs is how often frame statistics are logged
	StatsIntervalMs = 10000
)

// Sprite Animation Intervals (milliseconds)
const (
	StarAnimationMs   = 50
	ArmAnimationMs    = 200
	TextScrollMs      = 100
	FlameAnimationMs  = 100
	TwinkleIntervalMs = 500
)
