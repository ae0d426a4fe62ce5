package mireel

import (
	"image"
	"testing"

	"github.com/edwinsyarief/mireel/outcome"
)

func TestSpinButtonLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		allowSlam bool
		afterSpin ButtonState
		label     string
	}{
		{"Slam allowed", true, ButtonSlam, "STOP"},
		{"Slam disabled", false, ButtonDisabled, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, _ := newTestGroup(t, WithSource(outcome.Fixed{1, 2, 3}))
			button := NewSpinButton(group, image.Rect(0, 0, 100, 40), tt.allowSlam)

			if !button.Enabled() || button.Label() != "SPIN" {
				t.Fatalf("Expected enabled SPIN button, got %v %q", button.State(), button.Label())
			}
			if !button.Click() {
				t.Fatal("Expected click to spin")
			}
			if !group.Busy() {
				t.Error("Expected group to spin")
			}
			if button.State() != tt.afterSpin || button.Label() != tt.label {
				t.Errorf("Expected %v %q, got %v %q", tt.afterSpin, tt.label, button.State(), button.Label())
			}

			if tt.allowSlam {
				if !button.Click() {
					t.Error("Expected click to slam")
				}
				if !group.Stopping() {
					t.Error("Expected slam to request a stop")
				}
			} else {
				_ = group.Stop([]int{1, 2, 3})
			}
			if button.Enabled() || button.Click() {
				t.Error("Expected button to stay disabled until completion")
			}

			runGroup(t, group, 3000, func() bool { return !group.Busy() })
			if button.State() != ButtonReady {
				t.Errorf("Expected button ready after completion, got %v", button.State())
			}
		})
	}
}

func TestSpinButtonClickAt(t *testing.T) {
	group, _ := newTestGroup(t)
	button := NewSpinButton(group, image.Rect(10, 10, 60, 30), false)

	if button.ClickAt(5, 5) {
		t.Error("Expected click outside bounds to be ignored")
	}
	if group.Busy() {
		t.Error("Expected group to stay idle")
	}
	if !button.ClickAt(20, 20) || !group.Busy() {
		t.Error("Expected click inside bounds to spin")
	}
	if button.ClickAt(20, 20) {
		t.Error("Expected click while disabled to be ignored")
	}
	if button.Clicks() != 2 {
		t.Errorf("Expected 2 clicks, got %d", button.Clicks())
	}
}

func TestSpinButtonSlamFailureKeepsButtonUsable(t *testing.T) {
	group, _ := newTestGroup(t, WithSource(failingSource{}))
	button := NewSpinButton(group, image.Rect(0, 0, 100, 40), true)

	_ = button.Click()
	if button.Click() {
		t.Error("Expected the slam to fail")
	}
	if button.State() != ButtonSlam || !button.Enabled() {
		t.Fatalf("Expected the button to stay on STOP, got %v", button.State())
	}

	// a stop from elsewhere still completes the spin
	_ = group.Stop([]int{1, 2, 3})
	runGroup(t, group, 3000, func() bool { return !group.Busy() })
	if button.State() != ButtonReady {
		t.Errorf("Expected button ready after completion, got %v", button.State())
	}
}

func TestSpinButtonReset(t *testing.T) {
	group, _ := newTestGroup(t)
	button := NewSpinButton(group, image.Rect(0, 0, 100, 40), false)

	_ = button.Click()
	if button.Enabled() {
		t.Fatal("Expected a disabled button while spinning")
	}
	for i := 0; i < 20; i++ {
		group.Update()
	}

	button.Reset()
	if group.Busy() || button.State() != ButtonReady || button.Label() != "SPIN" {
		t.Errorf("Expected idle reels and a SPIN button, got busy=%v %v", group.Busy(), button.State())
	}
	if !button.Click() {
		t.Error("Expected a new spin after reset")
	}
}
