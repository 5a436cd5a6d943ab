// Package clockface composes three flip items (hour, minute, second) and the
// meridiem, weekday and date captions into a clock face.
//
// The face does not keep time. The embedding application calls
// [Face.SetTime] whenever its own timer fires, typically once per second,
// and calls [Face.Tick] once per display frame to advance running flips.
package clockface

import (
	"log/slog"
	"time"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/calendar"
	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/graphics"
)

// Caption names.
const (
	CaptionMeridiem = "meridiem"
	CaptionWeekday  = "weekday"
	CaptionDate     = "date"
)

// Caption is a static text line drawn inside one of the items.
type Caption struct {
	Name   string             `json:"name"`
	Text   string             `json:"text"`
	Hidden bool               `json:"hidden"`
	Host   flip.Field         `json:"host"`
	Frame  graphics.Rect      `json:"frame"`
	Style  graphics.TextStyle `json:"style"`
}

type config struct {
	calendar    calendar.Calendar
	twelveHour  bool
	showSeconds bool
	showWeekday bool
	showDate    bool
	flipOpts    []flip.Option
	scheduler   *animation.Scheduler
	logger      *slog.Logger
}

// Option configures a Face.
type Option func(*config)

// WithCalendar sets the zone and caption language used to decompose times.
func WithCalendar(cal calendar.Calendar) Option {
	return func(c *config) { c.calendar = cal }
}

// With12HourClock selects 12-hour display and shows the AM/PM caption.
func With12HourClock(on bool) Option {
	return func(c *config) { c.twelveHour = on }
}

// WithSecondsVisible shows or hides the seconds item. Visible by default.
func WithSecondsVisible(on bool) Option {
	return func(c *config) { c.showSeconds = on }
}

// WithWeekdayVisible shows or hides the weekday caption. Hidden by default.
func WithWeekdayVisible(on bool) Option {
	return func(c *config) { c.showWeekday = on }
}

// WithDateVisible shows or hides the date caption. Hidden by default.
func WithDateVisible(on bool) Option {
	return func(c *config) { c.showDate = on }
}

// WithDuration sets the flip length of every item.
func WithDuration(d time.Duration) Option {
	return func(c *config) { c.flipOpts = append(c.flipOpts, flip.WithDuration(d)) }
}

// WithCurve sets the flip easing of every item.
func WithCurve(curve func(float64) float64) Option {
	return func(c *config) { c.flipOpts = append(c.flipOpts, flip.WithCurve(curve)) }
}

// WithScheduler drives the face's flips from sched. By default each face
// owns a private scheduler advanced by Tick.
func WithScheduler(sched *animation.Scheduler) Option {
	return func(c *config) { c.scheduler = sched }
}

// WithLogger sets the logger used for state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Face is the composite clock widget. It is not safe for concurrent use;
// callers that tick and set time from different goroutines must serialize.
type Face struct {
	cal       calendar.Calendar
	scheduler *animation.Scheduler
	log       *slog.Logger

	hour   *flip.Item
	minute *flip.Item
	second *flip.Item

	meridiem *Caption
	weekday  *Caption
	date     *Caption

	twelveHour  bool
	showSeconds bool
	showWeekday bool
	showDate    bool

	size    graphics.Size
	time    time.Time
	comp    calendar.Components
	hasTime bool
}

// New builds a face with all items and captions in place.
func New(opts ...Option) *Face {
	cfg := config{
		calendar:    calendar.Default(),
		showSeconds: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scheduler == nil {
		cfg.scheduler = animation.NewScheduler()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default().With("system", "clockface")
	}

	flipOpts := append([]flip.Option{flip.WithScheduler(cfg.scheduler)}, cfg.flipOpts...)
	captionStyle := graphics.TextStyle{
		Font:  graphics.CaptionFont(),
		Color: graphics.ColorLightText,
		Align: graphics.TextAlignLeft,
	}

	f := &Face{
		cal:       cfg.calendar,
		scheduler: cfg.scheduler,
		log:       cfg.logger,
		hour:      flip.NewItem(flip.FieldHour, flipOpts...),
		minute:    flip.NewItem(flip.FieldMinute, flipOpts...),
		second:    flip.NewItem(flip.FieldSecond, flipOpts...),
		meridiem:  &Caption{Name: CaptionMeridiem, Host: flip.FieldHour, Style: captionStyle},
		weekday:   &Caption{Name: CaptionWeekday, Host: flip.FieldMinute, Style: captionStyle},
		date:      &Caption{Name: CaptionDate, Host: flip.FieldSecond, Style: captionStyle},
	}

	f.apply12Hour(cfg.twelveHour)
	f.SetSecondsVisible(cfg.showSeconds)
	f.SetWeekdayVisible(cfg.showWeekday)
	f.SetDateVisible(cfg.showDate)
	return f
}

// SetTime decomposes t with the face calendar and forwards the fields to
// the items. On failure the face is left untouched.
func (f *Face) SetTime(t time.Time) error {
	comp, err := f.cal.Decompose(t)
	if err != nil {
		ce := errors.New("clockface.SetTime", errors.KindPrecondition, err)
		errors.Report(ce)
		return ce
	}

	f.time = t
	f.comp = comp
	f.hasTime = true

	hour := comp.Hour
	if f.twelveHour {
		hour = calendar.To12Hour(hour)
	}
	f.hour.SetTime(hour)
	f.minute.SetTime(comp.Minute)
	f.second.SetTime(comp.Second)

	f.refreshMeridiem()
	f.refreshWeekday()
	f.refreshDate()
	return nil
}

// SetCalendar replaces the calendar. Captions are re-rendered from the last
// time; digits follow on the next SetTime.
func (f *Face) SetCalendar(cal calendar.Calendar) {
	f.cal = cal
	f.refreshWeekday()
	f.refreshDate()
}

// Calendar returns the face calendar.
func (f *Face) Calendar() calendar.Calendar { return f.cal }

// Set12HourClock switches between 12- and 24-hour display. Only the AM/PM
// caption changes immediately; the hour digit follows on the next SetTime.
func (f *Face) Set12HourClock(on bool) {
	if on == f.twelveHour {
		return
	}
	f.apply12Hour(on)
	f.log.Debug("hour format changed", "twelve_hour", on)
}

func (f *Face) apply12Hour(on bool) {
	f.twelveHour = on
	f.meridiem.Hidden = !on
	f.refreshMeridiem()
}

// Is12HourClock reports the hour format.
func (f *Face) Is12HourClock() bool { return f.twelveHour }

// SetSecondsVisible shows or hides the seconds item.
func (f *Face) SetSecondsVisible(on bool) {
	f.showSeconds = on
	f.second.SetHidden(!on)
}

// SecondsVisible reports whether the seconds item is shown.
func (f *Face) SecondsVisible() bool { return f.showSeconds }

// SetWeekdayVisible shows or hides the weekday caption.
func (f *Face) SetWeekdayVisible(on bool) {
	f.showWeekday = on
	f.weekday.Hidden = !on
	f.refreshWeekday()
}

// WeekdayVisible reports whether the weekday caption is shown.
func (f *Face) WeekdayVisible() bool { return f.showWeekday }

// SetDateVisible shows or hides the date caption.
func (f *Face) SetDateVisible(on bool) {
	f.showDate = on
	f.date.Hidden = !on
	f.refreshDate()
}

// DateVisible reports whether the date caption is shown.
func (f *Face) DateVisible() bool { return f.showDate }

func (f *Face) refreshMeridiem() {
	if !f.hasTime || !f.twelveHour {
		f.meridiem.Text = ""
		return
	}
	f.meridiem.Text = calendar.Meridiem(f.comp.Hour)
}

func (f *Face) refreshWeekday() {
	if !f.hasTime {
		return
	}
	f.weekday.Text = f.cal.WeekdayName(f.comp.Weekday)
}

func (f *Face) refreshDate() {
	if !f.hasTime {
		return
	}
	f.date.Text = f.cal.DateString(f.comp)
}

// SetFont sets the digit font on every item.
func (f *Face) SetFont(font graphics.Font) {
	for _, it := range f.Items() {
		it.Label().SetFont(font)
	}
}

// SetTextColor sets the digit color on every item.
func (f *Face) SetTextColor(c graphics.Color) {
	for _, it := range f.Items() {
		it.Label().SetTextColor(c)
	}
}

// SetTextAlignment sets the digit alignment on every item.
func (f *Face) SetTextAlignment(align graphics.TextAlign) {
	for _, it := range f.Items() {
		it.Label().SetTextAlignment(align)
	}
}

// SetCaptionStyle sets the style of all three captions.
func (f *Face) SetCaptionStyle(style graphics.TextStyle) {
	for _, c := range f.captions() {
		c.Style = style
	}
}

// Tick advances running flips by one frame. The embedding environment calls
// it from its display-refresh callback.
func (f *Face) Tick() {
	f.scheduler.Step()
}

// IsAnimating reports whether any item is mid-flip.
func (f *Face) IsAnimating() bool {
	for _, it := range f.Items() {
		if it.Label().IsAnimating() {
			return true
		}
	}
	return false
}

// Time returns the last time set, or the zero time.
func (f *Face) Time() time.Time { return f.time }

// Components returns the last decomposed time and whether SetTime has
// succeeded at least once.
func (f *Face) Components() (calendar.Components, bool) {
	return f.comp, f.hasTime
}

// Items returns the hour, minute and second items in that order.
func (f *Face) Items() []*flip.Item {
	return []*flip.Item{f.hour, f.minute, f.second}
}

// Item returns the item for field.
func (f *Face) Item(field flip.Field) *flip.Item {
	switch field {
	case flip.FieldHour:
		return f.hour
	case flip.FieldMinute:
		return f.minute
	default:
		return f.second
	}
}

func (f *Face) captions() []*Caption {
	return []*Caption{f.meridiem, f.weekday, f.date}
}

// Captions returns copies of the captions. A caption whose host item is
// hidden is reported hidden as well.
func (f *Face) Captions() []Caption {
	out := make([]Caption, 0, 3)
	for _, c := range f.captions() {
		cp := *c
		if f.Item(c.Host).Hidden() {
			cp.Hidden = true
		}
		out = append(out, cp)
	}
	return out
}

// Caption returns a copy of the named caption.
func (f *Face) Caption(name string) (Caption, bool) {
	for _, c := range f.Captions() {
		if c.Name == name {
			return c, true
		}
	}
	return Caption{}, false
}

// Dispose stops all flips.
func (f *Face) Dispose() {
	for _, it := range f.Items() {
		it.Dispose()
	}
}
