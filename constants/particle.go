package constants

// Particle System
const (
	// MaxParticles is the fixed capacity of the weather particle pool
	MaxParticles = 32

	// MinParticleSpeed is the inclusive lower bound of snow fall speed (px/tick)
	MinParticleSpeed = 1

	// MaxParticleSpeed is the exclusive upper bound of snow fall speed (px/tick)
	MaxParticleSpeed = 3

	// RainSpeed is the fixed fall speed of rain drops (px/tick)
	RainSpeed = 2

	// ParticleLifeDecay is subtracted from a particle's life every step
	ParticleLifeDecay = 0.01

	// SnowJitterPeriod is the frame period of lateral snow drift
	SnowJitterPeriod = 4

	// SnowSpawnMargin keeps respawned flakes off the frame border
	SnowSpawnMargin = 2

	// ConstellationSize is the number of stars drawn in clear weather
	ConstellationSize = 5
)

// Animation Rates (1/s)
const (
	// AnimationEpsilon is the snap threshold of ScalarAnimator
	AnimationEpsilon = 0.01

	// CelestialRiseRate is the decay rate of the sun/moon rise offset
	CelestialRiseRate = 4.0

	// CelestialRiseOffset is the starting offset (px) of a rising sun/moon
	CelestialRiseOffset = 6

	// SleighClimbRate is the decay rate of the sleigh altitude
	SleighClimbRate = 2.0

	// SleighClimbOffset is the starting altitude offset (px) of the sleigh
	SleighClimbOffset = 8
)
