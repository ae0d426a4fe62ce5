package mireel

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/edwinsyarief/mireel/outcome"
	"github.com/edwinsyarief/mireel/symbol"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	started   int
	stopped   []int
	completed []SpinResult
}

func (self *recordingObserver) SpinStarted(reels int) { self.started += 1 }

func (self *recordingObserver) ReelStopped(reel int, landed symbol.ID, ticks uint64) {
	self.stopped = append(self.stopped, reel)
}

func (self *recordingObserver) SpinCompleted(result SpinResult) {
	self.completed = append(self.completed, result)
}

type failingSource struct{}

func (failingSource) Next(strips [][]symbol.ID) ([]int, error) {
	return nil, errors.New("outcome service unavailable")
}

func newTestGroup(t *testing.T, opts ...Option) (*Group, map[[2]int]*fakeView) {
	t.Helper()
	views := make(map[[2]int]*fakeView)
	factory := func(reel, slot int) SymbolView {
		view := &fakeView{}
		views[[2]int{reel, slot}] = view
		return view
	}
	opts = append([]Option{WithRand(seeded())}, opts...)
	group, err := NewGroup(testConfig(), factory, opts...)
	if err != nil {
		t.Fatalf("Expected group, got error %v", err)
	}
	return group, views
}

func runGroup(t *testing.T, group *Group, limit int, done func() bool) {
	t.Helper()
	for tick := 0; tick < limit; tick++ {
		group.Update()
		if done() {
			return
		}
	}
	t.Fatalf("Condition not reached within %d ticks", limit)
}

func TestNewGroup(t *testing.T) {
	group, views := newTestGroup(t, WithOrigin(10, 20))
	if group.Len() != 3 {
		t.Fatalf("Expected 3 reels, got %d", group.Len())
	}
	if len(views) != 3*5 {
		t.Errorf("Expected 15 views, got %d", len(views))
	}
	x, y := group.Reel(2).Origin()
	if x != 210 || y != 20 {
		t.Errorf("Expected reel 2 origin (210, 20), got (%f, %f)", x, y)
	}
	if view := views[[2]int{1, 1}]; view.x != 110 || view.y != 20 {
		t.Errorf("Expected first visible view of reel 1 at (110, 20), got (%f, %f)", view.x, view.y)
	}
}

func TestGroupRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Bounce.Easing = "wobble"
	_, err := NewGroup(cfg, func(int, int) SymbolView { return &fakeView{} })
	if err == nil {
		t.Error("Expected unknown easing to be rejected")
	}
}

func TestGroupSpinAndStop(t *testing.T) {
	observer := &recordingObserver{}
	group, _ := newTestGroup(t, WithObserver(observer))

	var results []SpinResult
	group.OnComplete(func(result SpinResult) { results = append(results, result) })

	if err := group.Stop([]int{0, 0, 0}); !errors.Is(err, ErrNotSpinning) {
		t.Errorf("Expected ErrNotSpinning, got %v", err)
	}
	if err := group.Spin(); err != nil {
		t.Fatalf("Unexpected spin error: %v", err)
	}
	if !group.Busy() || group.Running() != 3 {
		t.Errorf("Expected 3 running reels, got %d", group.Running())
	}
	if err := group.Spin(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy, got %v", err)
	}
	if err := group.Stop([]int{0, 0}); !errors.Is(err, ErrStopIndex) {
		t.Errorf("Expected ErrStopIndex for short stops, got %v", err)
	}
	if err := group.Stop([]int{0, 0, 99}); !errors.Is(err, ErrStopIndex) {
		t.Errorf("Expected ErrStopIndex for invalid stop, got %v", err)
	}
	for _, reel := range group.Reels() {
		if reel.stop.pending {
			t.Fatal("Expected invalid stops to leave reels untouched")
		}
	}

	stops := []int{2, 5, 7}
	if err := group.Stop(stops); err != nil {
		t.Fatalf("Unexpected stop error: %v", err)
	}
	if err := group.Stop(stops); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy for second stop, got %v", err)
	}
	runGroup(t, group, 3000, func() bool { return !group.Busy() })

	if len(results) != 1 {
		t.Fatalf("Expected one completion, got %d", len(results))
	}
	result := results[0]
	if !slices.Equal(result.Stops, stops) {
		t.Errorf("Expected stops %v, got %v", stops, result.Stops)
	}
	for i, stop := range stops {
		if result.Landed[i] != testStrip[stop] {
			t.Errorf("Reel %d: expected landed %d, got %d", i, testStrip[stop], result.Landed[i])
		}
		if want := windowAt(testStrip, 1, 3, stop); !slices.Equal(result.Windows[i], want) {
			t.Errorf("Reel %d: expected window %v, got %v", i, want, result.Windows[i])
		}
	}
	if observer.started != 1 || len(observer.completed) != 1 {
		t.Errorf("Unexpected observer calls: %+v", observer)
	}
	if !slices.Equal(observer.stopped, []int{0, 1, 2}) {
		t.Errorf("Expected reels to stop in order, got %v", observer.stopped)
	}

	// input is accepted again
	if err := group.Spin(); err != nil {
		t.Errorf("Expected a new spin after completion, got %v", err)
	}
}

func TestGroupStaggersStops(t *testing.T) {
	group, _ := newTestGroup(t)
	_ = group.Spin()
	runGroup(t, group, 100, func() bool {
		return group.Reel(2).State() == SpinningConst
	})
	if err := group.Stop([]int{1, 1, 1}); err != nil {
		t.Fatalf("Unexpected stop error: %v", err)
	}

	stoppingAt := make([]uint64, group.Len())
	runGroup(t, group, 3000, func() bool {
		for i, reel := range group.Reels() {
			if reel.State() == Stopping && stoppingAt[i] == 0 {
				stoppingAt[i] = group.SpinTicks()
			}
		}
		return !group.Busy()
	})

	delay := uint64(testConfig().Ticks(testConfig().StopDelay))
	for i := 1; i < len(stoppingAt); i++ {
		if got := stoppingAt[i] - stoppingAt[i-1]; got != delay {
			t.Errorf("Reel %d: expected %d ticks after reel %d, got %d", i, delay, i-1, got)
		}
	}
}

func TestGroupStopOn(t *testing.T) {
	group, _ := newTestGroup(t)
	var result SpinResult
	group.OnComplete(func(r SpinResult) { result = r })

	_ = group.Spin()
	if err := group.StopOn([]symbol.ID{8, 1, 99}); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Expected ErrUnknownSymbol, got %v", err)
	}
	ids := []symbol.ID{8, 1, 4}
	if err := group.StopOn(ids); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	runGroup(t, group, 3000, func() bool { return !group.Busy() })
	if !slices.Equal(result.Landed, ids) {
		t.Errorf("Expected landed %v, got %v", ids, result.Landed)
	}
}

func TestGroupAutoStop(t *testing.T) {
	cfg := testConfig()
	cfg.SpinDuration = time.Second
	var result SpinResult
	group, err := NewGroup(cfg, func(int, int) SymbolView { return &fakeView{} },
		WithRand(seeded()), WithSource(outcome.Fixed{3, 4, 6}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	group.OnComplete(func(r SpinResult) { result = r })

	_ = group.Spin()
	for i := 0; i < 59; i++ {
		group.Update()
	}
	if group.Stopping() {
		t.Fatal("Expected no stop before the spin duration")
	}
	group.Update()
	if !group.Stopping() {
		t.Fatal("Expected an automatic stop after the spin duration")
	}
	runGroup(t, group, 3000, func() bool { return !group.Busy() })
	if !slices.Equal(result.Stops, []int{3, 4, 6}) {
		t.Errorf("Expected scripted stops, got %v", result.Stops)
	}
}

func TestGroupSlam(t *testing.T) {
	group, _ := newTestGroup(t, WithSource(outcome.Fixed{0, 1, 2}))
	if err := group.Slam(); !errors.Is(err, ErrNotSpinning) {
		t.Errorf("Expected ErrNotSpinning, got %v", err)
	}

	_ = group.Spin()
	runGroup(t, group, 100, func() bool { return group.Reel(0).State() == SpinningConst })
	if err := group.Slam(); err != nil {
		t.Fatalf("Unexpected slam error: %v", err)
	}
	for _, reel := range group.Reels() {
		if reel.stop.delay != 0 {
			t.Errorf("Reel %d: expected no stagger on slam, got %d", reel.Index(), reel.stop.delay)
		}
	}
	runGroup(t, group, 3000, func() bool { return !group.Busy() })
}

func TestGroupSlamHurriesPendingStops(t *testing.T) {
	group, _ := newTestGroup(t)
	_ = group.Spin()
	_ = group.Stop([]int{0, 0, 0})
	if group.Reel(2).stop.delay == 0 {
		t.Fatal("Expected staggered delay before slam")
	}
	if err := group.Slam(); err != nil {
		t.Fatalf("Unexpected slam error: %v", err)
	}
	if group.Reel(2).stop.delay != 0 {
		t.Errorf("Expected hurried stop, got delay %d", group.Reel(2).stop.delay)
	}
}

func TestGroupIgnoresReelsSpunAlone(t *testing.T) {
	group, _ := newTestGroup(t)
	reel := group.Reel(0)
	_ = reel.Spin()
	if group.Busy() {
		t.Error("Expected group to stay idle")
	}
	if err := group.Spin(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy while a reel spins, got %v", err)
	}
	_ = reel.Stop(0, 0)
	runGroup(t, group, 3000, func() bool { return reel.State() == Idle })
	if group.Running() != 0 {
		t.Errorf("Expected no running count change, got %d", group.Running())
	}
}

func TestGroupRejectsMismatchedScript(t *testing.T) {
	script, _ := outcome.NewScripted([]int{0, 1, 2}, []int{0, 1, 2, 3, 4})
	_, err := NewGroup(testConfig(), func(int, int) SymbolView { return &fakeView{} }, WithSource(script))
	if !errors.Is(err, outcome.ErrMismatch) {
		t.Errorf("Expected ErrMismatch for a five reel spin, got %v", err)
	}
}

func TestGroupStopLeavesReelsUntouchedWhenOneIsBusy(t *testing.T) {
	group, _ := newTestGroup(t)
	_ = group.Spin()
	if err := group.Reel(1).Stop(3, 0); err != nil {
		t.Fatalf("Unexpected reel stop error: %v", err)
	}

	if err := group.Stop([]int{1, 1, 1}); !errors.Is(err, ErrBusy) {
		t.Fatalf("Expected ErrBusy, got %v", err)
	}
	if group.Stopping() {
		t.Error("Expected the rejected stop not to mark the group stopping")
	}
	for _, index := range []int{0, 2} {
		if group.Reel(index).stop.pending {
			t.Errorf("Reel %d: expected no pending stop", index)
		}
	}

	if err := group.Slam(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected slam to be rejected the same way, got %v", err)
	}

	// the spin can still be aborted
	group.Reset()
	if group.Busy() {
		t.Error("Expected reset to release the group")
	}
}

func TestGroupAutoStopFailsOncePerSpin(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := testConfig()
	cfg.SpinDuration = time.Second
	group, err := NewGroup(cfg, func(int, int) SymbolView { return &fakeView{} },
		WithRand(seeded()), WithSource(failingSource{}), WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	failures := func() int {
		return logs.FilterMessage("auto stop failed, waiting for a manual stop").Len()
	}

	_ = group.Spin()
	for i := 0; i < 300; i++ {
		group.Update()
	}
	if failures() != 1 {
		t.Errorf("Expected one failure report, got %d", failures())
	}
	if !group.Busy() || group.Stopping() {
		t.Fatal("Expected the group to keep spinning without a stop")
	}

	if err := group.Stop([]int{1, 2, 3}); err != nil {
		t.Fatalf("Expected a manual stop to work, got %v", err)
	}
	runGroup(t, group, 3000, func() bool { return !group.Busy() })

	_ = group.Spin()
	for i := 0; i < 100; i++ {
		group.Update()
	}
	if failures() != 2 {
		t.Errorf("Expected one more failure report for the new spin, got %d", failures())
	}
}

func TestGroupReset(t *testing.T) {
	recorder := &recordingObserver{}
	group, views := newTestGroup(t, WithObserver(recorder))
	completed, resets := 0, 0
	group.OnComplete(func(SpinResult) { completed += 1 })
	group.OnReset(func() { resets += 1 })

	_ = group.Spin()
	runGroup(t, group, 100, func() bool { return group.Reel(2).State() == SpinningConst })
	_ = group.Stop([]int{1, 2, 3})
	for i := 0; i < 10; i++ {
		group.Update()
	}

	group.Reset()
	if group.Busy() || group.Stopping() || group.Running() != 0 {
		t.Errorf("Expected an idle group, got running %d stopping %v", group.Running(), group.Stopping())
	}
	for _, reel := range group.Reels() {
		if reel.State() != Idle || reel.stop.pending {
			t.Errorf("Reel %d: expected idle without stop, got %v", reel.Index(), reel.State())
		}
	}
	for key, view := range views {
		if math.Mod(view.y, 100) != 0 || view.blur != 0 {
			t.Errorf("View %v: expected aligned sharp view, got y=%f blur=%f", key, view.y, view.blur)
		}
	}
	if resets != 1 || completed != 0 || len(recorder.completed) != 0 {
		t.Errorf("Expected one reset and no completion, got %d resets %d completions", resets, completed)
	}

	// the group spins and completes normally afterwards
	if err := group.Spin(); err != nil {
		t.Fatalf("Expected spin after reset, got %v", err)
	}
	_ = group.Stop([]int{4, 5, 6})
	runGroup(t, group, 3000, func() bool { return !group.Busy() })
	if completed != 1 {
		t.Errorf("Expected one completion after reset, got %d", completed)
	}
}
