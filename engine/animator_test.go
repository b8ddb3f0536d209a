package engine

import (
	"testing"

	"github.com/lixenwraith/oled-xmas/constants"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// TestScalarAnimatorScenario eases 0 → 10 at rate 5 with 50ms steps
// The gap shrinks by a factor of 0.75 per step: 10*0.75^25 < 0.01 < 10*0.75^24
func TestScalarAnimatorScenario(t *testing.T) {
	a := NewScalarAnimator(0)
	a.AnimateTo(10, 5)

	prev := a.Value()
	steps := 0
	for a.IsActive() {
		a.Step(0.05)
		steps++
		if a.Value() < prev {
			t.Fatalf("value decreased at step %d: %v -> %v", steps, prev, a.Value())
		}
		prev = a.Value()
		if steps > 1000 {
			t.Fatal("animation did not converge")
		}
	}

	if steps != 25 {
		t.Errorf("converged after %d steps, want 25", steps)
	}
	if a.Value() != 10 {
		t.Errorf("final value = %v, want 10 exactly", a.Value())
	}
}

// TestScalarAnimatorConvergesForPositiveRates checks termination and idle no-op steps
func TestScalarAnimatorConvergesForPositiveRates(t *testing.T) {
	rates := []float32{0.1, 1, 5, 19.9, 39}
	for _, rate := range rates {
		a := NewScalarAnimator(-3)
		a.AnimateTo(42, rate)

		steps := 0
		for a.IsActive() && steps < 100000 {
			a.Step(constants.FrameDeltaSeconds)
			steps++
		}
		if a.IsActive() {
			t.Errorf("rate %v: still active after %d steps", rate, steps)
			continue
		}
		if absf(a.Value()-42) >= constants.AnimationEpsilon {
			t.Errorf("rate %v: value %v not within epsilon of 42", rate, a.Value())
		}

		a.Step(constants.FrameDeltaSeconds)
		if a.Value() != 42 || a.IsActive() {
			t.Errorf("rate %v: step after convergence changed state (%v, %v)", rate, a.Value(), a.IsActive())
		}
	}
}

func TestScalarAnimatorZeroRateNeverConverges(t *testing.T) {
	a := NewScalarAnimator(1)
	a.AnimateTo(5, 0)
	for i := 0; i < 100; i++ {
		a.Step(0.05)
	}
	if !a.IsActive() || a.Value() != 1 {
		t.Errorf("zero rate: active=%v value=%v, want active at 1", a.IsActive(), a.Value())
	}

	a.SetImmediate(5)
	if a.IsActive() || a.Value() != 5 || a.Target() != 5 {
		t.Errorf("SetImmediate: active=%v value=%v target=%v", a.IsActive(), a.Value(), a.Target())
	}
}

func TestScalarAnimatorIdleInvariant(t *testing.T) {
	a := NewScalarAnimator(3)
	if a.IsActive() {
		t.Fatal("new animator is active")
	}
	if a.Value() != a.Target() {
		t.Errorf("idle value %v != target %v", a.Value(), a.Target())
	}

	a.AnimateTo(4, 2)
	if a.Start() != 3 {
		t.Errorf("Start() = %v, want 3", a.Start())
	}
	a.Step(0.05)
	a.AnimateTo(0, 2)
	if a.Start() != a.Value() {
		t.Errorf("AnimateTo did not restart from current value: start %v, value %v", a.Start(), a.Value())
	}
}
