package engine

import "github.com/lixenwraith/oled-xmas/constants"

// ScalarAnimator eases a single value toward a target with geometric decay
//
// Each Step moves the value by (target-current)*rate*dt and snaps to the target once
// the gap drops below constants.AnimationEpsilon, which bounds the step count for any
// rate > 0. A rate of 0 never converges; only SetImmediate ends such an animation.
// rate*dt must stay below 2 or the value oscillates outward; neither case is guarded.
type ScalarAnimator struct {
	current float32
	target  float32
	start   float32
	rate    float32
	active  bool
}

// NewScalarAnimator creates an idle animator holding v
func NewScalarAnimator(v float32) *ScalarAnimator {
	return &ScalarAnimator{current: v, target: v, start: v, rate: 1}
}

// AnimateTo begins easing from the current value toward target
func (a *ScalarAnimator) AnimateTo(target, rate float32) {
	a.start = a.current
	a.target = target
	a.rate = rate
	a.active = true
}

// Step advances the animation by dt seconds; no-op when idle
func (a *ScalarAnimator) Step(dt float32) {
	if !a.active {
		return
	}

	a.current += (a.target - a.current) * a.rate * dt

	diff := a.target - a.current
	if diff < 0 {
		diff = -diff
	}
	if diff < constants.AnimationEpsilon {
		a.current = a.target
		a.active = false
	}
}

// SetImmediate snaps value and target together and stops the animation
func (a *ScalarAnimator) SetImmediate(v float32) {
	a.current = v
	a.target = v
	a.start = v
	a.active = false
}

func (a *ScalarAnimator) Value() float32  { return a.current }
func (a *ScalarAnimator) Target() float32 { return a.target }
func (a *ScalarAnimator) Start() float32  { return a.start }
func (a *ScalarAnimator) IsActive() bool  { return a.active }
