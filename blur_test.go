package mireel

import (
	"math"
	"testing"
)

func TestBlurFaderStages(t *testing.T) {
	var fader blurFader
	fader.Start(4)

	want := []float64{0.25, 0.5, 0.75, 1, 1, 1}
	for i, w := range want {
		fader.Update(1)
		if math.Abs(fader.Level()-w) > 1e-9 {
			t.Errorf("Tick %d: expected level %f, got %f", i, w, fader.Level())
		}
	}

	fader.End(2)
	fader.Update(1)
	if math.Abs(fader.Level()-0.5) > 1e-9 {
		t.Errorf("Expected level 0.5 while fading out, got %f", fader.Level())
	}
	fader.Update(1)
	if fader.Level() != 0 || fader.IsActive() {
		t.Errorf("Expected inactive fader, got level %f", fader.Level())
	}
}

func TestBlurFaderReversals(t *testing.T) {
	var fader blurFader
	fader.Start(10)
	for i := 0; i < 5; i++ {
		fader.Update(1)
	}
	before := fader.Level()

	// ending mid fade in keeps the level
	fader.End(10)
	if math.Abs(fader.Activity()-before) > 1e-9 {
		t.Errorf("Expected level %f preserved on end, got %f", before, fader.Activity())
	}
	if !fader.IsFadingOut() {
		t.Error("Expected fader to be fading out")
	}

	fader.Update(1)
	before = fader.Level()
	fader.Start(10)
	if math.Abs(fader.Activity()-before) > 1e-9 {
		t.Errorf("Expected level %f preserved on restart, got %f", before, fader.Activity())
	}
	if !fader.IsFadingIn() {
		t.Error("Expected fader to be fading in")
	}
}

func TestBlurFaderInstant(t *testing.T) {
	var fader blurFader
	fader.Start(0)
	fader.Update(1)
	if fader.Level() != 1 {
		t.Errorf("Expected instant blur, got %f", fader.Level())
	}
	fader.End(0)
	fader.Update(1)
	if fader.Level() != 0 {
		t.Errorf("Expected instant unblur, got %f", fader.Level())
	}

	fader.End(5)
	if fader.IsActive() {
		t.Error("Expected End on an inactive fader to do nothing")
	}
}
