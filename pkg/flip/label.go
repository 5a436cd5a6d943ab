// Package flip implements the split-flap digit card: a numeric field drawn as
// three stacked text layers, one of which folds over to reveal the next
// value.
//
// A [Label] never ticks itself. Its animation registers a ticker with an
// [animation.Scheduler]; the embedding environment steps that scheduler once
// per frame.
package flip

import (
	"math"
	"strconv"
	"time"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/graphics"
)

const (
	// DefaultDuration is the length of one flip.
	DefaultDuration = 500 * time.Millisecond

	// nextRevealProgress is the progress past which the next value is
	// uncovered beneath the folding card.
	nextRevealProgress = 0.01

	// halfFlip is the progress at which the card stands edge-on and its text
	// switches to the next value.
	halfFlip = 0.5
)

// Layer is one text surface of a label.
type Layer struct {
	Text      string             `json:"text"`
	Frame     graphics.Rect      `json:"frame"`
	Hidden    bool               `json:"hidden"`
	Transform graphics.Matrix4   `json:"transform"`
	Style     graphics.TextStyle `json:"style"`
}

type options struct {
	duration    time.Duration
	curve       func(float64) float64
	scheduler   *animation.Scheduler
	perspective float64
}

// Option configures a Label or Item.
type Option func(*options)

// WithDuration sets the flip length. Non-positive durations settle on the
// first frame.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithCurve sets the easing applied to flip progress. The curve must be
// monotonic.
func WithCurve(curve func(float64) float64) Option {
	return func(o *options) { o.curve = curve }
}

// WithScheduler binds the label's animation to sched instead of
// animation.DefaultScheduler.
func WithScheduler(sched *animation.Scheduler) Option {
	return func(o *options) { o.scheduler = sched }
}

// WithPerspective sets the m34 term of the fold transform. Zero (the
// default) gives a flat, orthographic fold.
func WithPerspective(m34 float64) Option {
	return func(o *options) { o.perspective = m34 }
}

func buildOptions(opts []Option) options {
	o := options{
		duration:  DefaultDuration,
		curve:     animation.LinearCurve,
		scheduler: animation.DefaultScheduler,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Label displays one integer and animates a flip to the next.
//
// Layers are stacked back to front as current, next, fold. While idle only
// the fold layer is meaningful and shows the settled value.
type Label struct {
	frame       graphics.Rect
	background  graphics.Color
	card        graphics.Color
	style       graphics.TextStyle
	perspective float64

	current Layer
	next    Layer
	fold    Layer

	currentValue int
	nextValue    int

	controller *animation.Controller
	angle      *animation.Tween[float64]
}

// NewLabel creates a label showing 0.
func NewLabel(opts ...Option) *Label {
	o := buildOptions(opts)
	l := &Label{
		background:  graphics.ColorPanel,
		card:        graphics.ColorCard,
		perspective: o.perspective,
		style: graphics.TextStyle{
			Font:  graphics.DigitFont(),
			Color: graphics.ColorLightText,
			Align: graphics.TextAlignLeft,
		},
		controller: animation.NewController(o.duration,
			animation.WithScheduler(o.scheduler),
			animation.WithCurve(o.curve),
		),
		angle: animation.TweenFloat64(0, math.Pi),
	}
	for _, layer := range l.layers() {
		layer.Style = l.style
		layer.Transform = l.baseTransform()
	}
	l.controller.AddListener(l.update)
	l.settle(0)
	return l
}

func (l *Label) layers() []*Layer {
	return []*Layer{&l.current, &l.next, &l.fold}
}

func (l *Label) baseTransform() graphics.Matrix4 {
	return graphics.Identity().WithPerspective(l.perspective)
}

// nextStartTransform tilts the hidden next layer by the reveal threshold so
// it lines up with the fold the moment it appears.
func (l *Label) nextStartTransform() graphics.Matrix4 {
	return l.baseTransform().Rotate(math.Pi*nextRevealProgress, -1, 0, 0)
}

// SetValue shows current and starts flipping toward next. Progress restarts
// at 0 even if a flip is already running.
func (l *Label) SetValue(current, next int) {
	l.currentValue = current
	l.nextValue = next

	l.current.Text = strconv.Itoa(current)
	l.fold.Text = l.current.Text
	l.next.Text = strconv.Itoa(next)
	l.next.Transform = l.nextStartTransform()
	l.next.Hidden = true

	l.controller.Forward()
}

// Show settles on value immediately, cancelling any running flip.
func (l *Label) Show(value int) {
	l.controller.Reset()
	l.settle(value)
}

// settle leaves the label at rest on value.
func (l *Label) settle(value int) {
	l.currentValue = value
	l.nextValue = value
	text := strconv.Itoa(value)
	l.current.Text = text
	l.next.Text = text
	l.fold.Text = text
	l.fold.Transform = l.baseTransform()
	l.next.Transform = l.nextStartTransform()
	l.next.Hidden = true
}

// update runs on every controller notification, i.e. once per frame while
// the flip is active.
func (l *Label) update() {
	if l.controller.IsCompleted() {
		l.settle(l.nextValue)
		return
	}
	if l.controller.Status() != animation.StatusForward {
		return
	}

	p := l.controller.Value()
	t := l.baseTransform().Rotate(l.angle.Evaluate(p), -1, 0, 0)
	if p >= halfFlip {
		// Edge-on: turn the card over so its back face reads upright.
		t = t.Rotate(math.Pi, 0, 0, 1)
		t = t.Rotate(math.Pi, 0, 1, 0)
		l.fold.Text = l.next.Text
	} else {
		l.fold.Text = l.current.Text
	}
	l.fold.Transform = t
	l.next.Hidden = p <= nextRevealProgress
}

// Progress returns flip progress in [0, 1].
func (l *Label) Progress() float64 {
	return l.controller.Value()
}

// IsAnimating reports whether a flip is registered with the scheduler.
func (l *Label) IsAnimating() bool {
	return l.controller.IsAnimating()
}

// HalfFlipCrossed reports whether the running flip has passed edge-on.
func (l *Label) HalfFlipCrossed() bool {
	return l.IsAnimating() && l.Progress() >= halfFlip
}

// DisplayedValue returns the value the fold layer currently shows.
func (l *Label) DisplayedValue() int {
	if l.HalfFlipCrossed() {
		return l.nextValue
	}
	return l.currentValue
}

// Current returns the value being flipped away from, or the settled value.
func (l *Label) Current() int { return l.currentValue }

// Next returns the value being flipped toward, or the settled value.
func (l *Label) Next() int { return l.nextValue }

// FoldAngle returns the fold rotation about the horizontal axis in radians.
func (l *Label) FoldAngle() float64 {
	if !l.IsAnimating() {
		return 0
	}
	return l.angle.Evaluate(l.Progress())
}

// Layers returns copies of the three layers, back to front.
func (l *Label) Layers() []Layer {
	return []Layer{l.current, l.next, l.fold}
}

// Frame returns the label bounds.
func (l *Label) Frame() graphics.Rect { return l.frame }

// SetFrame sizes the container and all three layers to rect.
func (l *Label) SetFrame(rect graphics.Rect) {
	l.frame = rect
	for _, layer := range l.layers() {
		layer.Frame = rect
	}
}

// Style returns the text style shared by the layers.
func (l *Label) Style() graphics.TextStyle { return l.style }

// SetFont sets the font on all layers.
func (l *Label) SetFont(font graphics.Font) {
	l.style.Font = font
	l.applyStyle()
}

// SetTextColor sets the text color on all layers.
func (l *Label) SetTextColor(c graphics.Color) {
	l.style.Color = c
	l.applyStyle()
}

// SetTextAlignment sets the alignment on all layers.
func (l *Label) SetTextAlignment(align graphics.TextAlign) {
	l.style.Align = align
	l.applyStyle()
}

func (l *Label) applyStyle() {
	for _, layer := range l.layers() {
		layer.Style = l.style
	}
}

// Background returns the container color around the card.
func (l *Label) Background() graphics.Color { return l.background }

// SetBackground sets the container color.
func (l *Label) SetBackground(c graphics.Color) { l.background = c }

// CardColor returns the card face color behind each layer's text.
func (l *Label) CardColor() graphics.Color { return l.card }

// SetCardColor sets the card face color.
func (l *Label) SetCardColor(c graphics.Color) { l.card = c }

// Dispose stops the flip and releases the ticker.
func (l *Label) Dispose() {
	l.controller.Dispose()
}
