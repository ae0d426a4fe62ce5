package tween

import (
	"math"
	"testing"

	"github.com/edwinsyarief/mireel/easing"
)

func TestTweenLinear(t *testing.T) {
	tw := New(0, 10, 4, nil)
	want := []float64{2.5, 5, 7.5, 10}
	for i, w := range want {
		value, done := tw.Update(1)
		if math.Abs(value-w) > 1e-9 {
			t.Errorf("Tick %d: expected %f, got %f", i, w, value)
		}
		if done != (i == len(want)-1) {
			t.Errorf("Tick %d: unexpected done=%v", i, done)
		}
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := New(3, 8, 0, easing.OutBack)
	if !tw.Done() {
		t.Error("Expected zero duration tween to be done")
	}
	if tw.Value() != 8 {
		t.Errorf("Expected value 8, got %f", tw.Value())
	}
}

func TestTweenLargeTickRate(t *testing.T) {
	tw := New(0, 1, 5, easing.OutQuad)
	value, done := tw.Update(100)
	if !done || value != 1 {
		t.Errorf("Expected completion at 1, got %f (done=%v)", value, done)
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(
		New(0, 10, 2, nil),
		New(10, 10, 0, nil),
		New(10, 0, 2, nil),
	)

	var values []float64
	for !seq.Done() {
		value, _ := seq.Update(1)
		values = append(values, value)
	}

	want := []float64{5, 10, 5, 0}
	if len(values) != len(want) {
		t.Fatalf("Expected %d updates, got %d (%v)", len(want), len(values), values)
	}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("Update %d: expected %f, got %f", i, want[i], values[i])
		}
	}

	seq.Reset()
	if seq.Done() || seq.Value() != 0 {
		t.Errorf("Expected reset sequence at 0, got %f", seq.Value())
	}
}
