// Package animation provides the timing primitives behind flip transitions.
//
// # Core Components
//
//   - [Scheduler]: stands in for the host's display-refresh callback. The
//     embedding environment calls [Scheduler.Step] once per frame at whatever
//     rate it likes.
//
//   - [Ticker]: a per-frame callback registered with a Scheduler while active.
//     Callbacks receive the wall time elapsed since Start, so animation length
//     does not depend on the frame rate.
//
//   - [Controller]: drives a normalized progress value from 0.0 to 1.0 over a
//     fixed duration, optionally shaped by an easing curve.
//
// # Basic Usage
//
//	sched := animation.NewScheduler()
//	ctrl := animation.NewController(500*time.Millisecond, animation.WithScheduler(sched))
//	ctrl.AddListener(func() { fmt.Println(ctrl.Value()) })
//	ctrl.Forward()
//
//	// once per frame, from the host
//	sched.Step()
package animation

import (
	"sync"
	"time"
)

// Scheduler holds the set of active tickers and advances them on Step.
// A ticker is registered at most once, so restarting an animation never
// stacks callbacks.
type Scheduler struct {
	mu     sync.Mutex
	active map[*Ticker]struct{}
	order  []*Ticker
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[*Ticker]struct{})}
}

// DefaultScheduler is used by tickers created without an explicit scheduler.
var DefaultScheduler = NewScheduler()

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[t]; ok {
		return
	}
	s.active[t] = struct{}{}
	s.order = append(s.order, t)
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[t]; !ok {
		return
	}
	delete(s.active, t)
	for i, o := range s.order {
		if o == t {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Step advances every active ticker once, in registration order.
// Tickers started or stopped by a callback take effect on the next Step.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.order) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers without holding the lock.
	tickers := make([]*Ticker, len(s.order))
	copy(tickers, s.order)
	s.mu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is registered.
func (s *Scheduler) HasActiveTickers() bool {
	return s.Len() > 0
}

// Len returns the number of registered tickers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// StepTickers advances all tickers on the DefaultScheduler.
func StepTickers() {
	DefaultScheduler.Step()
}

// Ticker calls a callback on each scheduler step while active.
//
// Ticker is the low-level timing primitive used by [Controller].
// Most code should use Controller directly rather than Ticker.
type Ticker struct {
	callback  func(elapsed time.Duration)
	scheduler *Scheduler
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker bound to sched. A nil sched means DefaultScheduler.
func NewTicker(sched *Scheduler, callback func(elapsed time.Duration)) *Ticker {
	if sched == nil {
		sched = DefaultScheduler
	}
	return &Ticker{
		callback:  callback,
		scheduler: sched,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently registered.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}
