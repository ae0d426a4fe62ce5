package easing

import (
	"math"
	"testing"
)

func TestBuiltinsAreNormalized(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			curve, err := ByName(name)
			if err != nil {
				t.Fatalf("Expected curve %q, got error %v", name, err)
			}
			if got := curve.Ease(0); math.Abs(got) > 1e-9 {
				t.Errorf("Expected Ease(0) == 0, got %f", got)
			}
			if got := curve.Ease(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("Expected Ease(1) == 1, got %f", got)
			}
		})
	}
}

func TestInputIsClamped(t *testing.T) {
	if got := OutQuad.Ease(-3); got != 0 {
		t.Errorf("Expected clamped 0, got %f", got)
	}
	if got := OutQuad.Ease(7); got != 1 {
		t.Errorf("Expected clamped 1, got %f", got)
	}
}

func TestOutBackOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, OutBack.Ease(float64(i)/100))
	}
	if peak <= 1.0 {
		t.Errorf("Expected OutBack to overshoot 1.0, peak was %f", peak)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("wobble"); err == nil {
		t.Error("Expected error for unknown easing")
	}
	if _, err := ByName(" Out-Back "); err != nil {
		t.Errorf("Expected case insensitive lookup, got %v", err)
	}
}
