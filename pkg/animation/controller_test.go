package animation

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func withFakeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestController_ProgressFollowsElapsedTime(t *testing.T) {
	clk := withFakeClock(t)
	sched := NewScheduler()
	c := NewController(500*time.Millisecond, WithScheduler(sched))

	c.Forward()
	if c.Status() != StatusForward {
		t.Fatalf("status = %v, want forward", c.Status())
	}

	clk.Advance(125 * time.Millisecond)
	sched.Step()
	if got := c.Value(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("value = %v, want 0.25", got)
	}

	// A single late frame jumps straight to the right progress.
	clk.Advance(250 * time.Millisecond)
	sched.Step()
	if got := c.Value(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("value = %v, want 0.75", got)
	}
}

func TestController_CompletesAndDeregistersOnce(t *testing.T) {
	clk := withFakeClock(t)
	sched := NewScheduler()
	c := NewController(100*time.Millisecond, WithScheduler(sched))

	completions := 0
	c.AddStatusListener(func(s Status) {
		if s == StatusCompleted {
			completions++
		}
	})

	c.Forward()
	if sched.Len() != 1 {
		t.Fatalf("scheduler len = %d, want 1", sched.Len())
	}

	for range 10 {
		clk.Advance(16 * time.Millisecond)
		sched.Step()
	}

	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if c.Value() != 1 {
		t.Errorf("value = %v, want 1", c.Value())
	}
	if c.IsAnimating() {
		t.Error("controller should not be animating after completion")
	}
	if sched.HasActiveTickers() {
		t.Error("scheduler should be empty after completion")
	}
}

func TestController_ForwardRestartsWithoutStacking(t *testing.T) {
	clk := withFakeClock(t)
	sched := NewScheduler()
	c := NewController(time.Second, WithScheduler(sched))

	c.Forward()
	clk.Advance(600 * time.Millisecond)
	sched.Step()

	c.Forward()
	if c.Value() != 0 {
		t.Errorf("value after restart = %v, want 0", c.Value())
	}
	if sched.Len() != 1 {
		t.Errorf("scheduler len = %d, want 1", sched.Len())
	}

	clk.Advance(500 * time.Millisecond)
	sched.Step()
	if got := c.Value(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("value = %v, want 0.5 measured from the restart", got)
	}
}

func TestController_ZeroDurationCompletesOnFirstStep(t *testing.T) {
	withFakeClock(t)
	sched := NewScheduler()
	c := NewController(0, WithScheduler(sched))

	c.Forward()
	sched.Step()
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
}

func TestController_MonotonicUnderCurve(t *testing.T) {
	clk := withFakeClock(t)
	sched := NewScheduler()
	c := NewController(300*time.Millisecond, WithScheduler(sched), WithCurve(EaseInOut))

	c.Forward()
	prev := c.Value()
	for c.IsAnimating() {
		clk.Advance(7 * time.Millisecond)
		sched.Step()
		if c.Value() < prev {
			t.Fatalf("value went backwards: %v -> %v", prev, c.Value())
		}
		prev = c.Value()
	}
}

func TestController_ResetAndListeners(t *testing.T) {
	clk := withFakeClock(t)
	sched := NewScheduler()
	c := NewController(time.Second, WithScheduler(sched))

	calls := 0
	unsubscribe := c.AddListener(func() { calls++ })

	c.Forward()
	clk.Advance(100 * time.Millisecond)
	sched.Step()
	c.Reset()

	if c.Status() != StatusDismissed || c.Value() != 0 {
		t.Errorf("after Reset: status=%v value=%v", c.Status(), c.Value())
	}
	if sched.HasActiveTickers() {
		t.Error("Reset should deregister the ticker")
	}

	before := calls
	unsubscribe()
	c.Forward()
	if calls != before {
		t.Error("unsubscribed listener was called")
	}
	c.Dispose()
	if sched.HasActiveTickers() {
		t.Error("Dispose should deregister the ticker")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusDismissed, "dismissed"},
		{StatusForward, "forward"},
		{StatusCompleted, "completed"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
