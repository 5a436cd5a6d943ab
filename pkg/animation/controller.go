package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a controller.
//
//	         Forward()             progress >= 1
//	Dismissed ─────────► Forward ─────────────────► Completed
//	    ▲                                              │
//	    └──────────────── Reset() ─────────────────────┘
//
// Forward() from any state restarts at 0.
type Status int

const (
	// StatusDismissed means the controller is idle at progress 0.
	StatusDismissed Status = iota
	// StatusForward means the controller is running toward 1.
	StatusForward
	// StatusCompleted means the controller reached 1 and stopped its ticker.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler binds the controller's tickers to sched.
func WithScheduler(sched *Scheduler) Option {
	return func(c *Controller) { c.scheduler = sched }
}

// WithCurve sets the easing curve. Nil means LinearCurve.
func WithCurve(curve func(float64) float64) Option {
	return func(c *Controller) {
		if curve == nil {
			curve = LinearCurve
		}
		c.curve = curve
	}
}

// Controller drives a progress value from 0.0 to 1.0 over Duration.
//
// Progress is derived from elapsed wall time, never from the number of
// frames seen, so a host running at 30 Hz and one running at 120 Hz finish
// the same animation at the same moment. Dropped frames are skipped over.
//
// Always call Dispose when done to release the ticker.
type Controller struct {
	duration  time.Duration
	curve     func(float64) float64
	scheduler *Scheduler

	value           float64
	status          Status
	ticker          *Ticker
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration, opts ...Option) *Controller {
	c := &Controller{
		duration:        duration,
		curve:           LinearCurve,
		scheduler:       DefaultScheduler,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Duration returns the configured animation length.
func (c *Controller) Duration() time.Duration { return c.duration }

// Value returns the current progress in [0, 1].
func (c *Controller) Value() float64 { return c.value }

// Forward resets progress to 0 and animates toward 1. A running animation is
// stopped first, so at most one ticker per controller is ever registered.
func (c *Controller) Forward() {
	c.Stop()
	c.value = 0
	c.setStatus(StatusForward)
	c.notifyListeners()

	c.ticker = NewTicker(c.scheduler, c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.ticker == nil {
		return
	}
	progress := 1.0
	if c.duration > 0 {
		progress = float64(elapsed) / float64(c.duration)
	}
	if progress >= 1 {
		c.value = 1
		c.Stop()
		c.setStatus(StatusCompleted)
		c.notifyListeners()
		return
	}
	if progress < 0 {
		progress = 0
	}

	eased := c.curve(progress)
	// The curve may overshoot numerically; progress never moves backwards.
	if eased > c.value {
		c.value = clampUnit(eased)
	}
	c.notifyListeners()
}

// Reset stops the animation and returns progress to 0.
func (c *Controller) Reset() {
	c.Stop()
	c.value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Stop deregisters the ticker, leaving progress where it is.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true while a ticker is registered.
func (c *Controller) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// IsCompleted returns true if the animation finished at 1.
func (c *Controller) IsCompleted() bool {
	return c.status == StatusCompleted
}

// AddListener adds a callback that fires whenever the value is recomputed.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = map[int]func(){}
	c.statusListeners = map[int]func(Status){}
}
