package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/graphics"
)

const (
	// DefaultTestWidth is the default width the face is laid out at.
	DefaultTestWidth = 640
	// DefaultTestHeight is the default height the face is laid out at.
	DefaultTestHeight = 320
	// DefaultFrame is the frame interval used by PumpAndSettle.
	DefaultFrame = 16 * time.Millisecond
)

// Epoch is the instant the fake clock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: face did not settle")

// FaceTester drives a clock face against a fake clock and a private
// scheduler, so flips advance only when the test pumps frames.
type FaceTester struct {
	face      *clockface.Face
	clock     *clockwork.FakeClock
	prevClock clockwork.Clock
	scheduler *animation.Scheduler
	frames    int
}

// NewFaceTester builds a face laid out at the default test size. The
// animation clock is restored and the face disposed via t.Cleanup.
func NewFaceTester(t testing.TB, opts ...clockface.Option) *FaceTester {
	t.Helper()
	clk := clockwork.NewFakeClockAt(Epoch)
	sched := animation.NewScheduler()

	all := append([]clockface.Option{clockface.WithScheduler(sched)}, opts...)
	ft := &FaceTester{
		face:      clockface.New(all...),
		clock:     clk,
		scheduler: sched,
	}
	ft.prevClock = animation.SetClock(clk)
	ft.face.Layout(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
	t.Cleanup(ft.Cleanup)
	return ft
}

// Cleanup disposes the face and restores the animation clock.
func (ft *FaceTester) Cleanup() {
	if ft.face != nil {
		ft.face.Dispose()
		ft.face = nil
	}
	animation.SetClock(ft.prevClock)
}

// Face returns the face under test.
func (ft *FaceTester) Face() *clockface.Face { return ft.face }

// Clock returns the fake clock for advancing time in tests.
func (ft *FaceTester) Clock() *clockwork.FakeClock { return ft.clock }

// Scheduler returns the scheduler the face's flips register with.
func (ft *FaceTester) Scheduler() *animation.Scheduler { return ft.scheduler }

// Frames returns the number of frames pumped so far.
func (ft *FaceTester) Frames() int { return ft.frames }

// SetTime moves the fake clock to t when t is later than the current fake
// time, then hands t to the face.
func (ft *FaceTester) SetTime(t time.Time) error {
	if d := t.Sub(ft.clock.Now()); d > 0 {
		ft.clock.Advance(d)
	}
	return ft.face.SetTime(t)
}

// Pump advances the fake clock by d and runs a single frame.
func (ft *FaceTester) Pump(d time.Duration) {
	if d > 0 {
		ft.clock.Advance(d)
	}
	ft.face.Tick()
	ft.frames++
}

// PumpFrames runs n frames, advancing the clock by frame before each.
func (ft *FaceTester) PumpFrames(n int, frame time.Duration) {
	for i := 0; i < n; i++ {
		ft.Pump(frame)
	}
}

// PumpAndSettle runs frames until no flip is running or the timeout is
// reached. Each frame advances the fake clock by DefaultFrame. Returns
// ErrSettleTimeout if the face does not settle within timeout.
func (ft *FaceTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		ft.Pump(0)
		if !ft.needsWork() {
			return nil
		}
		ft.clock.Advance(DefaultFrame)
		elapsed += DefaultFrame
	}
	return ErrSettleTimeout
}

func (ft *FaceTester) needsWork() bool {
	return ft.face.IsAnimating() || ft.scheduler.HasActiveTickers()
}
